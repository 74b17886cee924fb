package mailer

import (
	"fmt"
	"strings"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Config selects and configures a Sender.
type Config struct {
	Provider string        // resend (default), postmark or dev
	APIKey   string        // Resend API key, or Postmark server token
	Endpoint string        // Resend API base URL override
	Timeout  time.Duration // Resend HTTP client timeout, 0 for none

	PostmarkAccountToken string
	DevDir               string
}

// ValidProvider reports whether name is a supported provider. The empty
// string means the default.
func ValidProvider(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProviderResend, ProviderPostmark, ProviderDev:
		return true
	}
	return false
}

// New builds the Sender named by cfg.Provider.
func New(cfg Config) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderResend:
		s, err := NewResendSender(cfg.APIKey, cfg.Endpoint, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ProviderPostmark:
		s, err := NewPostmarkSender(cfg.APIKey, cfg.PostmarkAccountToken)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ProviderDev:
		if cfg.DevDir == "" {
			return nil, fmt.Errorf("%w: dev mailer directory is required", ErrInvalidConfig)
		}
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
