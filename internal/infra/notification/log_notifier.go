package notification

import (
	"context"
	"log/slog"

	"passage/internal/domain/service"
)

// logNotifier writes mail to the log instead of delivering it.
// Useful in development and tests where no SMTP server is available.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier that logs instead of sending.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SendConfirmation(ctx context.Context, toEmail, displayName, link string) error {
	n.log(ctx, "email confirmation", toEmail, displayName, link)

	return nil
}

func (n *logNotifier) SendForgotPassword(ctx context.Context, toEmail, displayName, link string) error {
	n.log(ctx, "forgot password", toEmail, displayName, link)

	return nil
}

func (n *logNotifier) SendChangeEmailConfirmation(ctx context.Context, toEmail, displayName, link string) error {
	n.log(ctx, "change email confirmation", toEmail, displayName, link)

	return nil
}

func (n *logNotifier) log(ctx context.Context, kind, toEmail, displayName, link string) {
	n.logger.InfoContext(ctx, "[LogNotifier] Mail delivery skipped",
		slog.String("kind", kind),
		slog.String("to", toEmail),
		slog.String("name", displayName),
		slog.String("link", link),
	)
}
