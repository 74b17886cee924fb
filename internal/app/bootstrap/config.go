// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	contactfeature "github.com/issyx/issyxweb/internal/app/features/contact"
	"github.com/issyx/issyxweb/internal/app/system/inputval"
	"github.com/issyx/issyxweb/internal/app/system/mailer"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mail_api_key, site_dir, etc.
//   - Environment variables: ISSYX_MAIL_API_KEY, ISSYX_SITE_DIR, etc.
//   - Command-line flags: --mail_api_key, --site_dir, etc.
var appConfigKeys = []config.AppKey{
	// Email delivery
	{Name: "mail_provider", Default: mailer.ProviderResend, Desc: "Email provider: 'resend', 'postmark' or 'dev'"},
	{Name: "mail_api_key", Default: "", Desc: "Resend API key or Postmark server token (contact form answers 503 when empty)"},
	{Name: "mail_endpoint", Default: mailer.DefaultResendBaseURL, Desc: "Resend API base URL"},
	{Name: "mail_from", Default: contactfeature.DefaultFrom, Desc: "Sender identity for notifications"},
	{Name: "mail_timeout", Default: "30s", Desc: "Outbound email request timeout (e.g., 30s, 1m; 0 disables)"},
	{Name: "postmark_account_token", Default: "", Desc: "Postmark account token (optional)"},
	{Name: "mail_dev_dir", Default: "./tmp/mail", Desc: "Output directory for the dev email provider"},

	// Contact form
	{Name: "contact_email", Default: contactfeature.DefaultRecipient, Desc: "Inbox that receives demo requests"},
	{Name: "site_name", Default: contactfeature.DefaultSiteName, Desc: "Site name shown in notifications"},

	// Static site
	{Name: "site_dir", Default: "dist", Desc: "Directory of the pre-built static site"},

	// Health
	{Name: "health_path", Default: "", Desc: "Mount path for the health endpoint (blank disables it)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, ISSYX_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ISSYX", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		// Email delivery
		MailProvider:         strings.ToLower(strings.TrimSpace(appValues.String("mail_provider"))),
		MailAPIKey:           strings.TrimSpace(appValues.String("mail_api_key")),
		MailEndpoint:         appValues.String("mail_endpoint"),
		MailFrom:             appValues.String("mail_from"),
		MailTimeout:          appValues.Duration("mail_timeout", 30*time.Second),
		PostmarkAccountToken: appValues.String("postmark_account_token"),
		MailDevDir:           appValues.String("mail_dev_dir"),

		// Contact form
		ContactEmail: strings.TrimSpace(appValues.String("contact_email")),
		SiteName:     appValues.String("site_name"),

		// Static site
		SiteDir: appValues.String("site_dir"),

		// Health
		HealthPath: strings.TrimSpace(appValues.String("health_path")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// A missing mail API key is not fatal: the site still serves pages and the
// contact endpoint answers 503 until an operator sets the key.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if !mailer.ValidProvider(appCfg.MailProvider) {
		return fmt.Errorf("unknown mail_provider %q (want resend, postmark or dev)", appCfg.MailProvider)
	}

	if appCfg.ContactEmail != "" && !inputval.IsContactEmail(appCfg.ContactEmail) {
		return fmt.Errorf("contact_email %q is not a valid email address", appCfg.ContactEmail)
	}

	if appCfg.MailTimeout < 0 {
		return fmt.Errorf("mail_timeout must not be negative, got %s", appCfg.MailTimeout)
	}

	if appCfg.SiteDir == "" {
		return fmt.Errorf("site_dir is required")
	}
	info, err := os.Stat(appCfg.SiteDir)
	if err != nil {
		logger.Error("static site directory unavailable", zap.String("site_dir", appCfg.SiteDir), zap.Error(err))
		return fmt.Errorf("site_dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("site_dir %q is not a directory", appCfg.SiteDir)
	}

	if appCfg.HealthPath != "" {
		if !strings.HasPrefix(appCfg.HealthPath, "/") || strings.HasSuffix(appCfg.HealthPath, "/") {
			return fmt.Errorf("health_path %q must be an absolute path below / without a trailing slash", appCfg.HealthPath)
		}
		if appCfg.HealthPath == contactfeature.Path || strings.HasPrefix(appCfg.HealthPath, contactfeature.Path+"/") {
			return fmt.Errorf("health_path %q collides with the contact endpoint", appCfg.HealthPath)
		}
	}

	if appCfg.MailAPIKey == "" {
		logger.Warn("mail_api_key is not set; contact form will answer 503",
			zap.String("mail_provider", appCfg.MailProvider))
	}

	return nil
}
