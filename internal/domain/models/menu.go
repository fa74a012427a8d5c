package models

// MenuItem is one entry in the declarative navigation configuration.
// A tree of MenuItems is immutable for the lifetime of a session;
// expand/collapse state is tracked separately, keyed by ID.
type MenuItem struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Path       string `json:"path" yaml:"path"`
	Permission string `json:"permission,omitempty" yaml:"permission,omitempty"`
	// Order is the sort key among siblings. It need not be contiguous;
	// ties keep their original sequence.
	Order int `json:"order" yaml:"order"`
	// DefaultExpanded marks sections that start open before the user has
	// toggled them.
	DefaultExpanded bool       `json:"defaultExpanded,omitempty" yaml:"defaultExpanded,omitempty"`
	SubItems        []MenuItem `json:"subItems,omitempty" yaml:"subItems,omitempty"`
}

// MenuStructure is the wire shape of the published navigation configuration.
type MenuStructure struct {
	MenuStructure []MenuItem `json:"menuStructure"`
}
