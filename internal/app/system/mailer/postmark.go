package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers through Postmark's transactional API.
type PostmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender builds a Postmark-backed sender. Only the server token
// is needed to send; the account token is optional.
func NewPostmarkSender(serverToken, accountToken string) (*PostmarkSender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: postmark server token is required", ErrInvalidConfig)
	}
	return &PostmarkSender{
		client: postmark.NewClient(serverToken, accountToken),
	}, nil
}

// Send submits msg once. Postmark reports refusals either as a transport
// level error or in-band through ErrorCode; both count as delivery failures.
func (s *PostmarkSender) Send(ctx context.Context, msg Email) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       strings.Join(msg.To, ","),
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
		Tag:      "contact-form",
	})
	if err != nil {
		return deliveryError(&APIError{Provider: "postmark", Body: err.Error()})
	}
	if resp.ErrorCode > 0 {
		return deliveryError(&APIError{
			Provider: "postmark",
			Body:     fmt.Sprintf("error %d: %s", resp.ErrorCode, resp.Message),
		})
	}
	return nil
}
