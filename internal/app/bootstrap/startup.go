// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after backends are built and before the HTTP handler is
// assembled. It logs the effective contact-form setup; the API key itself
// is never logged.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("contact form configuration",
		zap.String("mail_provider", providerName(appCfg.MailProvider)),
		zap.Bool("mail_configured", deps.Mail != nil),
		zap.String("contact_email", appCfg.ContactEmail),
		zap.Duration("mail_timeout", appCfg.MailTimeout),
		zap.String("site_dir", appCfg.SiteDir),
		zap.String("health_path", appCfg.HealthPath),
	)
	return nil
}
