// Package notification provides concrete mail delivery for account lifecycle flows.
package notification

import (
	"log/slog"

	"passage/config"
	"passage/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	mailProviderSMTP = "smtp"
	mailProviderLog  = "log"
)

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration. When mail is not
// configured, links are written to the log instead of delivered.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == mailProviderLog {
		logger.Info("Mail not configured, using log notifier")

		return NewLogNotifier(logger), nil
	}

	switch cfg.Provider {
	case mailProviderSMTP:
		if cfg.Host == "" || cfg.Port == 0 {
			return nil, errors.New("host and port are required for smtp provider")
		}
		if cfg.From == "" {
			return nil, errors.New("from address is required for smtp provider")
		}
		logger.Info("Using SMTP notifier",
			slog.String("host", cfg.Host),
			slog.Int("port", cfg.Port),
		)

		return NewSMTPNotifier(cfg, logger), nil

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
