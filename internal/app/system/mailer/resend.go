package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// DefaultResendBaseURL is Resend's API root. The client appends "emails".
const DefaultResendBaseURL = "https://api.resend.com/"

// maxErrorBody caps how much of a failed response is kept for logging.
const maxErrorBody = 64 * 1024

// ResendSender sends through the Resend API.
// Zero value is not usable; use NewResendSender.
type ResendSender struct {
	httpClient *http.Client
	client     *resend.Client
}

// NewResendSender builds a sender authenticated with apiKey. An empty
// baseURL selects DefaultResendBaseURL; a zero timeout leaves requests
// bounded only by the caller's context.
func NewResendSender(apiKey, baseURL string, timeout time.Duration) (*ResendSender, error) {
	return newResendSender(apiKey, baseURL, &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	})
}

// NewResendSenderWithClient is NewResendSender with a caller-supplied
// HTTP client, for custom transports and tests. The client is copied.
func NewResendSenderWithClient(apiKey, baseURL string, client *http.Client) (*ResendSender, error) {
	if client == nil {
		client = &http.Client{}
	}
	c := *client
	return newResendSender(apiKey, baseURL, &c)
}

func newResendSender(apiKey, baseURL string, hc *http.Client) (*ResendSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: resend API key is required", ErrInvalidConfig)
	}
	if baseURL == "" {
		baseURL = DefaultResendBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: resend base URL: %w", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: resend base URL must be an absolute http(s) URL", ErrInvalidConfig)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	hc.Transport = &captureTransport{base: hc.Transport}
	client := resend.NewCustomClient(hc, apiKey)
	client.BaseURL = u

	return &ResendSender{httpClient: hc, client: client}, nil
}

// Send makes exactly one request to Resend. There is no retry; a non-2xx
// answer is returned as ErrDeliveryFailed joined with an *APIError holding
// the response body. Failures before a response arrives are returned
// as-is.
func (s *ResendSender) Send(ctx context.Context, msg Email) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp := &capturedResponse{}
	_, err := s.client.Emails.SendWithContext(context.WithValue(ctx, captureKey{}, resp), &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})

	switch {
	case resp.status == 0:
		if err != nil {
			return fmt.Errorf("resend: send request: %w", err)
		}
		return nil
	case resp.status < 200 || resp.status > 299:
		body := strings.TrimSpace(string(resp.body))
		if resp.readErr != nil {
			body = fmt.Sprintf("%s (body read failed: %v)", body, resp.readErr)
		}
		if body == "" && err != nil {
			body = err.Error()
		}
		return deliveryError(&APIError{
			Provider:   "resend",
			StatusCode: resp.status,
			Body:       body,
		})
	}
	// Accepted. The client may still fail to decode the response id; the
	// message is queued either way.
	return nil
}

// Close releases idle keep-alive connections.
func (s *ResendSender) Close() error {
	s.httpClient.CloseIdleConnections()
	return nil
}

type captureKey struct{}

// capturedResponse is what the provider actually answered, recorded
// below the resend client so status and raw body survive its error
// formatting.
type capturedResponse struct {
	status  int
	body    []byte
	readErr error
}

type captureTransport struct {
	base http.RoundTripper
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return resp, err
	}
	rec, ok := req.Context().Value(captureKey{}).(*capturedResponse)
	if !ok {
		return resp, nil
	}
	rec.status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rec.body, rec.readErr = io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(rec.body))
	}
	return resp, nil
}

func (t *captureTransport) CloseIdleConnections() {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	if c, ok := base.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
}
