package notification

import (
	"context"
	"log/slog"
	"net/smtp"
	"testing"

	"passage/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPNotifier_SendConfirmation(t *testing.T) {
	cfg := &config.MailConfig{
		Provider: "smtp",
		Host:     "mail.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "noreply@example.com",
	}

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	notifier := &smtpNotifier{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
		send: func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr = addr
			gotFrom = from
			gotTo = to
			gotMsg = msg

			return nil
		},
	}

	err := notifier.SendConfirmation(context.Background(), "smith@mail.com", "John Smith", "https://app.example.com/confirm?token=abc")
	require.NoError(t, err)

	assert.Equal(t, "mail.example.com:587", gotAddr)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"smith@mail.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Confirm your email")
	assert.Contains(t, string(gotMsg), "https://app.example.com/confirm?token=abc")
	assert.Contains(t, string(gotMsg), "Hi John Smith")
}

func TestNewNotifier_DefaultsToLog(t *testing.T) {
	cfg := &config.Config{}

	notifier, err := NewNotifier(NotifierParams{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	assert.NoError(t, notifier.SendForgotPassword(context.Background(), "smith@mail.com", "John Smith", "link"))
}

func TestNewNotifier_UnknownProvider(t *testing.T) {
	cfg := &config.Config{Mail: &config.MailConfig{Provider: "carrier-pigeon"}}

	_, err := NewNotifier(NotifierParams{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
	})
	assert.Error(t, err)
}
