package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims issued by the identity provider.
// Permissions is the resolved capability set for the user's role.
type Claims struct {
	jwt.RegisteredClaims
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Identity is the authenticated caller as seen by services and the
// navigation resolver. A nil *Identity means an anonymous caller.
type Identity struct {
	UserID      string
	Username    string
	Role        string
	Permissions []string
}

// Identity converts verified claims into the request identity.
func (c *Claims) Identity() *Identity {
	return &Identity{
		UserID:      c.Subject,
		Username:    c.Username,
		Role:        c.Role,
		Permissions: c.Permissions,
	}
}

// HasPermission reports whether the capability name is in the user's
// resolved permission set.
func (i *Identity) HasPermission(name string) bool {
	if i == nil {
		return false
	}
	for _, p := range i.Permissions {
		if p == name {
			return true
		}
	}
	return false
}
