package navigation

import (
	"encoding/json"
	"fmt"
	"sync"

	_ "embed"

	"gopkg.in/yaml.v3"

	"tenderdesk/internal/domain"
	"tenderdesk/internal/domain/models"
)

//go:embed default_menu.yaml
var defaultMenuYAML []byte

// ParseMenuStructure decodes and sanitizes a published menu
// configuration. Entries without an ID are dropped rather than carried
// into rendering; duplicate IDs anywhere in the tree make the whole
// configuration invalid.
func ParseMenuStructure(raw []byte) ([]models.MenuItem, error) {
	var payload models.MenuStructure
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid menu structure: %v", domain.ErrValidation, err)
	}

	items := sanitizeItems(payload.MenuStructure)
	if err := checkUniqueIDs(items, make(map[string]struct{})); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return items, nil
}

func sanitizeItems(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		item.SubItems = sanitizeItems(item.SubItems)
		out = append(out, item)
	}
	return out
}

func checkUniqueIDs(items []models.MenuItem, seen map[string]struct{}) error {
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("duplicate menu item id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
		if err := checkUniqueIDs(item.SubItems, seen); err != nil {
			return err
		}
	}
	return nil
}

var loadDefaultMenu = sync.OnceValues(func() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := yaml.Unmarshal(defaultMenuYAML, &items); err != nil {
		return nil, fmt.Errorf("parse default menu: %w", err)
	}
	if err := checkUniqueIDs(items, make(map[string]struct{})); err != nil {
		return nil, fmt.Errorf("default menu: %w", err)
	}
	return items, nil
})

// DefaultMenu returns the hardcoded fallback navigation tree, used when
// no configuration has been published.
func DefaultMenu() ([]models.MenuItem, error) {
	return loadDefaultMenu()
}
