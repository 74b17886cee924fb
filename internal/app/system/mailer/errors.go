package mailer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("mailer: invalid config")
	ErrInvalidParams  = errors.New("mailer: invalid email params")
	ErrDeliveryFailed = errors.New("mailer: delivery failed")
)

// APIError is a non-success answer from an email provider.
type APIError struct {
	Provider   string
	StatusCode int    // HTTP status, 0 when the provider reports errors in-band
	Body       string // raw response body or provider message
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// deliveryError joins ErrDeliveryFailed with the provider's answer so both
// errors.Is and errors.As work on the result.
func deliveryError(apiErr *APIError) error {
	return errors.Join(ErrDeliveryFailed, apiErr)
}
