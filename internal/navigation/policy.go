package navigation

// PermissionAdmin is the capability gating administration entries. It is
// resolved against the access policy (role or allow-list), never against
// the generic permission set.
const PermissionAdmin = "admin"

// Policy is the access configuration injected into the resolver. Keeping
// the admin role name, the username allow-list and the aggregate groups
// here (instead of literals inside the check) makes them replaceable and
// testable without touching resolution logic.
type Policy struct {
	// AdminRole is the role name granting the admin capability.
	AdminRole string
	// AdminUsers is an allow-list of usernames granted the admin
	// capability regardless of role.
	AdminUsers []string
	// Aggregates maps a capability name to a group of underlying
	// capabilities; holding any one of them grants the aggregate.
	Aggregates map[string][]string
}

// DefaultPolicy returns the shipped policy: "Admin" role, empty
// allow-list and the dashboard OR-group over the three dashboard types.
func DefaultPolicy() Policy {
	return Policy{
		AdminRole: "Admin",
		Aggregates: map[string][]string{
			"dashboard": {"dashboard", "salesDashboard", "financeDashboard"},
		},
	}
}
