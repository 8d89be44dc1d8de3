// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserPatch is a field-level partial update of a user record. Only non-nil
// fields are written, so concurrent unrelated patches to the same record do
// not clobber each other.
type UserPatch struct {
	Firstname     *string
	Lastname      *string
	Email         *string
	EmailVerified *bool
	// RefreshTokenHash uses sql.NullString so the caller can distinguish
	// "leave unchanged" (nil) from "clear the slot" (Valid == false).
	RefreshTokenHash *sql.NullString
}

// IsEmpty reports whether the patch carries no changes.
func (p UserPatch) IsEmpty() bool {
	return p.Firstname == nil && p.Lastname == nil && p.Email == nil &&
		p.EmailVerified == nil && p.RefreshTokenHash == nil
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, never on the concrete
// implementation. Emails are stored lower-cased; lookups fold case.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update applies a partial update to an existing user record.
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// MarkEmailVerified flips the email-verified flag for the given address.
	MarkEmailVerified(ctx context.Context, email string) error

	// GetRoles returns the roles linked to the user through the join table.
	GetRoles(ctx context.Context, userID uuid.UUID) ([]entity.Role, error)

	// CountAll returns the total number of user records.
	CountAll(ctx context.Context) (int64, error)
}
