package usecase

import (
	"context"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationUsecase defines the interface for the mailed-token workflows:
// email confirmation, forgot password and email change.
type VerificationUsecase interface {
	// SendConfirmation issues a verification token for the user and mails
	// the confirmation link.
	SendConfirmation(ctx context.Context, user *entity.User) error

	// ResendConfirmation re-sends the confirmation link for an address
	// that has not been verified yet.
	ResendConfirmation(ctx context.Context, email string) error

	// VerifyEmail consumes a verification token, marks the address
	// verified and returns the refreshed projection. Verifying twice is
	// idempotent.
	VerifyEmail(ctx context.Context, token string) (*entity.AuthUser, error)

	// ForgotPassword issues a forgot-password token and mails the reset
	// link to an existing, active account.
	ForgotPassword(ctx context.Context, email string) error

	// RequestEmailChange issues a change-email token and mails the
	// confirmation link to the proposed new address.
	RequestEmailChange(ctx context.Context, user *entity.User, newEmail string) error

	// CompleteEmailChange moves the account to the new address. Token
	// verification already happened at the authorization gate, which
	// attaches the decoded new address to the principal.
	CompleteEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error
}
