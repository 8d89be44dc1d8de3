package service

import (
	"time"

	"passage/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Purpose identifies the kind of token being signed or verified. Each purpose
// uses its own signing secret and lifetime, so a token minted for one purpose
// never verifies under another.
type Purpose string

const (
	PurposeAccess         Purpose = "access"
	PurposeRefresh        Purpose = "refresh"
	PurposeVerification   Purpose = "verification"
	PurposeForgotPassword Purpose = "forgotPassword"
	PurposeChangeEmail    Purpose = "changeEmail"
)

// String returns the purpose as a plain string.
func (p Purpose) String() string { return string(p) }

// IsValid reports whether the purpose is one of the known kinds.
func (p Purpose) IsValid() bool {
	switch p {
	case PurposeAccess, PurposeRefresh, PurposeVerification, PurposeForgotPassword, PurposeChangeEmail:
		return true
	}
	return false
}

// Claims defines the custom claims carried by tokens. Session tokens
// (access, refresh) carry the full user projection; workflow tokens carry
// the subject email, and change-email tokens additionally the new address.
type Claims struct {
	User     *entity.AuthUser `json:"user,omitempty"`
	Email    string           `json:"email,omitempty"`
	NewEmail string           `json:"newEmail,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies tokens for every purpose the engine issues.
// This abstracts the details of token creation from the use cases.
type TokenCodec interface {
	// Sign produces a signed token for the given purpose. The codec sets
	// the registered time claims from its configured lifetime.
	Sign(claims *Claims, purpose Purpose) (string, error)

	// Verify parses the token string, checks its signature against the
	// purpose's secret and enforces expiry.
	Verify(tokenString string, purpose Purpose) (*Claims, error)

	// TTL returns the configured lifetime for tokens of the given purpose.
	TTL(purpose Purpose) time.Duration
}
