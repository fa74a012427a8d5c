package navigation

import (
	"slices"

	"tenderdesk/internal/domain/models"
)

// Resolver decides menu-item visibility for an identity. Resolution is
// total: it never returns an error and treats a nil identity as an
// anonymous caller who only sees unrestricted items.
type Resolver struct {
	policy Policy
}

// NewResolver creates a resolver with the given access policy.
func NewResolver(policy Policy) *Resolver {
	return &Resolver{policy: policy}
}

// HasMenuPermission reports whether the identity may see the item.
// Rules, in order: items without a permission requirement are visible to
// everyone; aggregate capabilities are granted when any capability of
// the group is held; the admin capability is granted by role or by the
// allow-list only; every other capability is a plain set-membership
// check.
func (r *Resolver) HasMenuPermission(ident *models.Identity, item models.MenuItem) bool {
	if item.Permission == "" {
		return true
	}

	if group, ok := r.policy.Aggregates[item.Permission]; ok {
		for _, capability := range group {
			if ident.HasPermission(capability) {
				return true
			}
		}
		return false
	}

	if item.Permission == PermissionAdmin {
		return r.IsAdmin(ident)
	}

	return ident.HasPermission(item.Permission)
}

// IsAdmin reports whether the identity holds the admin capability. The
// generic permission set is deliberately not consulted: an "admin"
// string appearing there grants nothing.
func (r *Resolver) IsAdmin(ident *models.Identity) bool {
	if ident == nil {
		return false
	}
	if ident.Role == r.policy.AdminRole {
		return true
	}
	return slices.Contains(r.policy.AdminUsers, ident.Username)
}
