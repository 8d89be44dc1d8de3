package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"passage/config"
	"passage/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpNotifier delivers lifecycle mail over plain SMTP with optional AUTH.
type smtpNotifier struct {
	cfg    *config.MailConfig
	logger *slog.Logger

	// send is swappable for tests.
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates a Notifier backed by net/smtp.
func NewSMTPNotifier(cfg *config.MailConfig, logger *slog.Logger) service.Notifier {
	return &smtpNotifier{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

func (n *smtpNotifier) SendConfirmation(ctx context.Context, toEmail, displayName, link string) error {
	body := fmt.Sprintf("Hi %s,\r\n\r\nPlease confirm your email address by following this link:\r\n%s\r\n",
		displayName, link)

	return n.deliver(ctx, toEmail, "Confirm your email", body)
}

func (n *smtpNotifier) SendForgotPassword(ctx context.Context, toEmail, displayName, link string) error {
	body := fmt.Sprintf("Hi %s,\r\n\r\nA password reset was requested for your account. Set a new password here:\r\n%s\r\n\r\nIf you did not request this, you can ignore this message.\r\n",
		displayName, link)

	return n.deliver(ctx, toEmail, "Reset your password", body)
}

func (n *smtpNotifier) SendChangeEmailConfirmation(ctx context.Context, toEmail, displayName, link string) error {
	body := fmt.Sprintf("Hi %s,\r\n\r\nConfirm your new email address by following this link:\r\n%s\r\n",
		displayName, link)

	return n.deliver(ctx, toEmail, "Confirm your new email", body)
}

func (n *smtpNotifier) deliver(ctx context.Context, toEmail, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	msg := buildMessage(n.cfg.From, toEmail, subject, body)

	if err := n.send(addr, auth, n.cfg.From, []string{toEmail}, msg); err != nil {
		n.logger.ErrorContext(ctx, "SMTP delivery failed",
			slog.String("to", toEmail),
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "smtp send")
	}

	n.logger.InfoContext(ctx, "Mail delivered",
		slog.String("to", toEmail),
		slog.String("subject", subject),
	)

	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return []byte(msg.String())
}
