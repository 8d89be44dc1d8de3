// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the persisted account record. It is owned by the user store and
// carries the credential material the rest of the system must never expose:
// the password hash and the hash of the currently active refresh token.
type User struct {
	ID               uuid.UUID // The unique identifier for the account.
	Email            string    // Login identifier. Always stored lower-cased; unique at the store.
	Firstname        string
	Lastname         string
	PasswordHash     string  // Argon2id hash of the login password.
	IsActive         bool    // Inactive accounts cannot sign in, refresh or reset passwords.
	EmailVerified    bool    // Set once the confirmation link has been followed.
	RefreshTokenHash *string // Hash of the single active refresh token; nil until first sign-in and after logout.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DisplayName is the name used when addressing the user in notifications.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.Firstname + " " + u.Lastname)
}

// AuthUser is the sanitized projection of a User that travels inside tokens
// and API responses. It is rebuilt from the store on every request and never
// carries secrets.
type AuthUser struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Firstname     string    `json:"firstname"`
	Lastname      string    `json:"lastname"`
	IsActive      bool      `json:"isActive"`
	EmailVerified bool      `json:"emailVerified"`
	Roles         []string  `json:"roles"`
}

// NewAuthUser builds the projection from a persisted user and its resolved
// role names.
func NewAuthUser(user *User, roles []Role) *AuthUser {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name.String())
	}

	return &AuthUser{
		ID:            user.ID,
		Email:         user.Email,
		Firstname:     user.Firstname,
		Lastname:      user.Lastname,
		IsActive:      user.IsActive,
		EmailVerified: user.EmailVerified,
		Roles:         names,
	}
}
