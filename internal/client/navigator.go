package client

import (
	"context"
	"errors"
	"net/http"

	"tenderdesk/internal/domain/models"
	"tenderdesk/internal/navigation"
)

// Navigator is the client-side navigation state: the menu configuration
// (remote or built-in default) plus per-session expansion state.
type Navigator struct {
	api      *Client
	resolver *navigation.Resolver
	tree     *navigation.Tree
	items    []models.MenuItem
	expanded navigation.Expansion
}

// NewNavigator creates a navigator with the given access policy. Call
// Load before building.
func NewNavigator(api *Client, policy navigation.Policy) *Navigator {
	return &Navigator{
		api:      api,
		resolver: navigation.NewResolver(policy),
	}
}

// Load fetches the published menu structure, falling back to the
// built-in default tree when none has been published (404).
func (n *Navigator) Load(ctx context.Context) error {
	var payload models.MenuStructure
	err := n.api.get(ctx, "/api/menu-structure", &payload)

	items := payload.MenuStructure
	if err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
			return err
		}
		if items, err = navigation.DefaultMenu(); err != nil {
			return err
		}
	}

	n.items = items
	n.tree = navigation.NewTree(n.resolver, items)
	n.expanded = navigation.DefaultExpansion(items)
	return nil
}

// Build renders the tree for the identity and current route. Expansion
// state persists across builds; a collapsed section containing the
// active route is auto-expanded.
func (n *Navigator) Build(ident *models.Identity, currentRoute string) []navigation.RenderNode {
	if n.tree == nil {
		return []navigation.RenderNode{}
	}
	return n.tree.Build(ident, currentRoute, n.expanded)
}

// Toggle flips the expansion state of one item.
func (n *Navigator) Toggle(id string) {
	if n.expanded == nil {
		n.expanded = make(navigation.Expansion)
	}
	n.expanded.Toggle(id)
}

// Select handles activating an item: selecting a parent (has sub-items)
// toggles its expansion and returns no path; selecting a leaf returns
// its path for the caller to navigate to.
func (n *Navigator) Select(id string) (path string, toggled bool) {
	if n.tree == nil {
		return "", false
	}
	item, ok := n.tree.FindItem(id)
	if !ok {
		return "", false
	}
	if len(item.SubItems) > 0 {
		n.Toggle(id)
		return "", true
	}
	return item.Path, false
}
