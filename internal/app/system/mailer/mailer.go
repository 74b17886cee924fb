// Package mailer sends transactional email through a pluggable provider.
//
// Callers build a provider-neutral Email and hand it to a Sender. The
// Resend sender is the default; Postmark and a development sender that
// writes messages to disk are available through Config.Provider.
//
// Errors are classified with sentinels so HTTP handlers can map them:
//   - ErrInvalidConfig: a sender could not be built from its configuration
//   - ErrInvalidParams: the Email failed validation before any network I/O
//   - ErrDeliveryFailed: the provider answered but refused the message;
//     the joined *APIError carries the status code and response body
//
// Any other error (DNS, TLS, connection reset, timeout) means the provider
// was never reached or never answered.
package mailer

import (
	"context"
	"fmt"
	"strings"
)

// Email is one outbound message.
type Email struct {
	From    string   // sender identity, e.g. "Issyx Website <noreply@issyx.com>"
	To      []string // recipients
	ReplyTo string   // optional
	Subject string
	HTML    string
	Text    string // optional plain-text alternative
}

// Sender delivers an Email.
type Sender interface {
	Send(ctx context.Context, msg Email) error
}

// Validate checks that msg has everything a provider needs.
func (msg Email) Validate() error {
	if strings.TrimSpace(msg.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidParams)
	}
	for _, to := range msg.To {
		if strings.TrimSpace(to) == "" {
			return fmt.Errorf("%w: recipient must not be blank", ErrInvalidParams)
		}
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(msg.HTML) == "" && strings.TrimSpace(msg.Text) == "" {
		return fmt.Errorf("%w: HTML or Text body is required", ErrInvalidParams)
	}
	return nil
}
