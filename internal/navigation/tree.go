package navigation

import (
	"sort"

	"tenderdesk/internal/domain/models"
)

// Expansion tracks per-item expand/collapse state keyed by item ID.
// Items never toggled default to collapsed unless the configuration
// marks them DefaultExpanded.
type Expansion map[string]bool

// Toggle flips the state for one item. Siblings and ancestors are not
// affected.
func (e Expansion) Toggle(id string) {
	e[id] = !e[id]
}

// DefaultExpansion seeds expansion state from the configuration's
// per-section defaults.
func DefaultExpansion(items []models.MenuItem) Expansion {
	exp := make(Expansion)
	seedDefaults(items, exp)
	return exp
}

func seedDefaults(items []models.MenuItem, exp Expansion) {
	for _, item := range items {
		if item.DefaultExpanded {
			exp[item.ID] = true
		}
		seedDefaults(item.SubItems, exp)
	}
}

// RenderNode is one renderable entry of the navigation tree.
type RenderNode struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Path     string       `json:"path"`
	Active   bool         `json:"active"`
	Expanded bool         `json:"expanded"`
	Children []RenderNode `json:"children,omitempty"`
}

// Tree turns a menu configuration into renderable nodes for a caller.
// The configuration is immutable; Build never mutates it.
type Tree struct {
	resolver *Resolver
	items    []models.MenuItem
}

// NewTree creates a tree over a validated menu configuration.
func NewTree(resolver *Resolver, items []models.MenuItem) *Tree {
	return &Tree{resolver: resolver, items: items}
}

// Build filters the configuration by the identity's permissions, sorts
// siblings by Order (stable, ties keep original sequence), marks the
// item whose path matches currentRoute and its ancestors as active, and
// resolves expansion state. When the current route matches a descendant
// of a collapsed item, that item is auto-expanded in exp so the active
// entry is never hidden; this is the only mutation Build performs.
// An empty configuration yields an empty, valid result.
func (t *Tree) Build(ident *models.Identity, currentRoute string, exp Expansion) []RenderNode {
	return t.buildLevel(t.items, ident, currentRoute, exp)
}

func (t *Tree) buildLevel(items []models.MenuItem, ident *models.Identity, currentRoute string, exp Expansion) []RenderNode {
	visible := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if t.resolver.HasMenuPermission(ident, item) {
			visible = append(visible, item)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	nodes := make([]RenderNode, 0, len(visible))
	for _, item := range visible {
		node := RenderNode{
			ID:       item.ID,
			Name:     item.Name,
			Path:     item.Path,
			Active:   item.Path != "" && item.Path == currentRoute,
			Children: t.buildLevel(item.SubItems, ident, currentRoute, exp),
		}

		for _, child := range node.Children {
			if child.Active {
				node.Active = true
				break
			}
		}

		node.Expanded = exp[item.ID]
		if node.Active && !node.Expanded && len(node.Children) > 0 {
			exp[item.ID] = true
			node.Expanded = true
		}

		nodes = append(nodes, node)
	}
	return nodes
}

// FindItem returns the configuration entry with the given ID, searching
// the whole tree.
func (t *Tree) FindItem(id string) (models.MenuItem, bool) {
	return findItem(t.items, id)
}

func findItem(items []models.MenuItem, id string) (models.MenuItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
		if found, ok := findItem(item.SubItems, id); ok {
			return found, true
		}
	}
	return models.MenuItem{}, false
}
