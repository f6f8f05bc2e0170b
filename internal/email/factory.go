package email

import (
	"fmt"

	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/domain"
)

// NewEmailService creates and returns an email sender based on the configuration.
func NewEmailService(cfg *config.Config) (domain.EmailSender, error) {
	switch cfg.EmailProvider {
	case "log":
		return &LogSender{SenderAddress: cfg.EmailSender}, nil
	case "resend":
		if cfg.EmailAPIKey == "" {
			return nil, fmt.Errorf("email provider is 'resend' but RESEND_API_KEY is not set")
		}
		return NewResendSender(cfg.EmailAPIKey, cfg.EmailSender), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.EmailProvider)
	}
}
