// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// RoleName represents the type of role a user can hold in the system.
type RoleName string

const (
	// RoleUser indicates a regular account.
	RoleUser RoleName = "user"
	// RoleAdmin indicates an administrative account.
	RoleAdmin RoleName = "admin"
)

// String returns the string representation of the RoleName.
func (r RoleName) String() string {
	return string(r)
}

// IsValid checks if the RoleName is a known value.
func (r RoleName) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Role is a named role record. Users are linked to roles through the
// user_roles join table; the pair is unique and is only read by the core to
// build the AuthUser projection.
type Role struct {
	ID   uuid.UUID
	Name RoleName
}

// RoleNames is a slice of role name strings as carried in tokens.
type RoleNames []string

// Intersects reports whether any of the required names is present.
// An empty required set never passes.
func (rs RoleNames) Intersects(required []string) bool {
	for _, name := range required {
		if slices.Contains(rs, name) {
			return true
		}
	}

	return false
}
