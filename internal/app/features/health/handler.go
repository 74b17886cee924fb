package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler reports whether the contact form can deliver mail.
type Handler struct {
	MailConfigured bool
	Provider       string
	Log            *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(mailConfigured bool, provider string, logger *zap.Logger) *Handler {
	return &Handler{
		MailConfigured: mailConfigured,
		Provider:       provider,
		Log:            logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Mail     string `json:"mail"`
	Provider string `json:"provider,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Serve handles GET on the configured health path.
//
// When mail delivery is configured: 200 and
//
//	{ "status":"ok", "mail":"configured", "provider":"resend" }
//
// Otherwise: 503 and
//
//	{ "status":"degraded", "mail":"unconfigured", "message":"…" }
//
// The static site keeps working in the degraded state; only the contact
// form answers 503.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Mail:     "configured",
		Provider: h.Provider,
	}

	if !h.MailConfigured {
		h.Log.Warn("health-check: mail delivery not configured")
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "degraded"
		resp.Mail = "unconfigured"
		resp.Message = "Contact form email delivery is not configured"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
