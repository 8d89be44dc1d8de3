// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	Email     string
	Firstname string
	Lastname  string
	Password  string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// ResetPasswordInput defines the data required to change a password while
// signed in. The old password must check out against the stored hash.
type ResetPasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// EmailUpdateInput defines the data required to request an email change.
type EmailUpdateInput struct {
	UserID   uuid.UUID
	Password string
	NewEmail string
}

// --- Output DTOs ---

// TokenPair bundles the access and refresh tokens minted for a session.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginOutput returns the generated tokens after a successful sign-in or
// refresh, along with the access token's lifetime in seconds and the user
// projection the tokens were minted for.
type LoginOutput struct {
	TokenPair
	ExpiresIn int64            `json:"expiresIn"`
	User      *entity.AuthUser `json:"user"`
}

// AuthUsecase defines the interface for session and credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// ValidateByPassword checks the email/password pair against the stored
	// credentials. It returns (nil, nil) when the user is absent, inactive
	// or the password does not match, so callers cannot distinguish the
	// reasons for a failed check.
	ValidateByPassword(ctx context.Context, email, password string) (*entity.AuthUser, error)

	// ValidateByID re-validates a principal by ID. Returns (nil, nil) when
	// the user is absent or inactive.
	ValidateByID(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error)

	// ValidateByEmail re-validates a principal by email. Returns (nil, nil)
	// when the user is absent or inactive.
	ValidateByEmail(ctx context.Context, email string) (*entity.AuthUser, error)

	// SignUp registers a new account and dispatches the confirmation mail.
	SignUp(ctx context.Context, input SignUpInput) (*entity.AuthUser, error)

	// SignIn mints a session token pair for a validated principal and
	// stores the hashed refresh token.
	SignIn(ctx context.Context, user *entity.AuthUser) (*LoginOutput, error)

	// Refresh rotates the session: the presented refresh token must match
	// the stored hash, then a fresh pair replaces it.
	Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (*LoginOutput, error)

	// LogOut clears the stored refresh token hash, ending the session.
	LogOut(ctx context.Context, userID uuid.UUID) error

	// ResetPassword changes the password after checking the old one.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// ChangePassword sets a new password without checking the old one.
	// Used by the forgot-password flow after token verification.
	ChangePassword(ctx context.Context, email, newPassword string) error

	// HandleEmailUpdate validates the password and the new address, then
	// dispatches a confirmation mail to the new address. Nothing is
	// persisted until the link is followed.
	HandleEmailUpdate(ctx context.Context, input EmailUpdateInput) error

	// CountUsers returns the total number of registered accounts.
	CountUsers(ctx context.Context) (int64, error)
}
