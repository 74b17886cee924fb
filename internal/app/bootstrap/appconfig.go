// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/issyx/issyxweb/internal/app/system/mailer"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging and timeouts; everything the contact form and static
// site need lives here.
type AppConfig struct {
	// Email delivery
	MailProvider         string        // resend, postmark or dev
	MailAPIKey           string        // Resend API key or Postmark server token; empty disables the contact form (503)
	MailEndpoint         string        // Resend API base URL override
	MailFrom             string        // sender identity, e.g. "Issyx Website <noreply@issyx.com>"
	MailTimeout          time.Duration // outbound request timeout, 0 for none
	PostmarkAccountToken string        // optional, Postmark only
	MailDevDir           string        // where the dev provider writes messages

	// Contact form
	ContactEmail string // inbox receiving demo requests
	SiteName     string // shown in notification heading and footer

	// Static site
	SiteDir string // pre-built site served for every non-API path

	// Optional health endpoint; empty disables it so that every path except
	// the contact endpoint reaches the static site.
	HealthPath string
}

// mailerConfig projects the mail settings onto mailer.Config.
func (c AppConfig) mailerConfig() mailer.Config {
	return mailer.Config{
		Provider:             c.MailProvider,
		APIKey:               c.MailAPIKey,
		Endpoint:             c.MailEndpoint,
		Timeout:              c.MailTimeout,
		PostmarkAccountToken: c.PostmarkAccountToken,
		DevDir:               c.MailDevDir,
	}
}
