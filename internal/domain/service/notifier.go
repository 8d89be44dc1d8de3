package service

import (
	"context"
)

// Notifier defines the interface for delivering account lifecycle mail.
// Implementations receive a ready-made link with the workflow token already
// embedded; they are responsible only for delivery.
type Notifier interface {
	// SendConfirmation delivers the initial email verification link.
	SendConfirmation(ctx context.Context, toEmail, displayName, link string) error

	// SendForgotPassword delivers the password reset link.
	SendForgotPassword(ctx context.Context, toEmail, displayName, link string) error

	// SendChangeEmailConfirmation delivers the confirmation link for an
	// email change to the proposed new address.
	SendChangeEmailConfirmation(ctx context.Context, toEmail, displayName, link string) error
}
