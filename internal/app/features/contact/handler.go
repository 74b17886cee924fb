// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/issyx/issyxweb/internal/app/system/inputval"
	"github.com/issyx/issyxweb/internal/app/system/mailer"
	"go.uber.org/zap"
)

const (
	DefaultRecipient = "sales@issyx.com"
	DefaultFrom      = "Issyx Website <noreply@issyx.com>"
	DefaultSiteName  = "issyx.com"
)

// User-facing messages. Failures always point at the sales inbox so a
// visitor is never left without a way to reach us.
const (
	msgNotConfigured = "Email service not configured. Please email us directly at sales@issyx.com"
	msgMissingFields = "Missing required fields"
	msgInvalidEmail  = "Invalid email address"
	msgSendFailed    = "Failed to send message. Please email us directly at sales@issyx.com"
	msgInternal      = "Internal server error"
)

// maxBodyBytes bounds the request body; larger bodies fail to decode.
const maxBodyBytes = 64 << 10

// Config is what the handler needs from app configuration.
type Config struct {
	APIKey    string // email provider credential; empty means not configured
	Recipient string // inbox that receives notifications
	From      string // sender identity
	SiteName  string // shown in the notification heading and footer
}

type Handler struct {
	Cfg  Config
	Mail mailer.Sender
	Log  *zap.Logger

	validate *validator.Validate
	now      func() time.Time
}

// NewHandler fills in defaults for blank optional config values.
func NewHandler(cfg Config, mail mailer.Sender, logger *zap.Logger) *Handler {
	if cfg.Recipient == "" {
		cfg.Recipient = DefaultRecipient
	}
	if cfg.From == "" {
		cfg.From = DefaultFrom
	}
	if cfg.SiteName == "" {
		cfg.SiteName = DefaultSiteName
	}
	return &Handler{
		Cfg:      cfg,
		Mail:     mail,
		Log:      logger,
		validate: inputval.New(),
		now:      time.Now,
	}
}

// ServeSubmit handles POST /api/contact.
//
//	503 {"error": ...}   no provider credential configured (checked before the body is read)
//	400 {"error": ...}   missing required field or malformed email
//	502 {"error": ...}   provider refused the message
//	500 {"error": ...}   unreadable body or any other failure
//	200 {"success":true} notification accepted by the provider
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	log := h.Log.With(zap.String("submission_id", uuid.NewString()))

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("contact form panic", zap.Any("panic", rec), zap.Stack("stack"))
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
	}()

	if h.Cfg.APIKey == "" || h.Mail == nil {
		log.Error("contact form: mail API key is not configured")
		writeError(w, http.StatusServiceUnavailable, msgNotConfigured)
		return
	}

	sub, err := decodeSubmission(w, r)
	if err != nil {
		log.Error("contact form error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if err := h.validate.Struct(sub); err != nil {
		switch {
		case inputval.HasTag(err, "required"):
			writeError(w, http.StatusBadRequest, msgMissingFields)
		case inputval.HasTag(err, inputval.TagContactEmail):
			writeError(w, http.StatusBadRequest, msgInvalidEmail)
		default:
			log.Error("contact form error", zap.Error(err))
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	msg, err := ComposeNotification(sub, h.Cfg, h.now())
	if err != nil {
		log.Error("contact form error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	// Delivery is not tied to the visitor's connection: if they go away
	// mid-request the send still completes. There is no retry.
	if err := h.Mail.Send(context.WithoutCancel(r.Context()), msg); err != nil {
		var apiErr *mailer.APIError
		switch {
		case errors.As(err, &apiErr):
			log.Error("contact form: mail provider error",
				zap.String("provider", apiErr.Provider),
				zap.Int("status", apiErr.StatusCode),
				zap.String("body", apiErr.Body))
			writeError(w, http.StatusBadGateway, msgSendFailed)
		case errors.Is(err, mailer.ErrDeliveryFailed):
			log.Error("contact form: mail provider error", zap.Error(err))
			writeError(w, http.StatusBadGateway, msgSendFailed)
		default:
			log.Error("contact form error", zap.Error(err))
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	log.Info("contact form submitted", zap.String("company", sub.Company))
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// decodeSubmission reads the body as a JSON object and picks out the form
// fields by exact key. Keys differing only in case are ignored.
func decodeSubmission(w http.ResponseWriter, r *http.Request) (*Submission, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if fields == nil {
		return nil, errors.New("decode body: body is null")
	}

	sub := &Submission{}
	for key, dst := range sub.fieldsByKey() {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	return sub, nil
}
