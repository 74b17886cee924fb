// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dalemusser/waffle/config"
	"github.com/issyx/issyxweb/internal/app/system/mailer"
	"go.uber.org/zap"
)

// ConnectDB builds the outbound email sender. Nothing is dialled here;
// the first connection to the provider happens on the first submission.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if appCfg.MailAPIKey == "" {
		logger.Warn("email sender not built: no API key")
		return DBDeps{}, nil
	}

	sender, err := mailer.New(appCfg.mailerConfig())
	if err != nil {
		logger.Error("email sender init failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("email sender: %w", err)
	}

	logger.Info("email sender ready", zap.String("provider", providerName(appCfg.MailProvider)))
	return DBDeps{Mail: sender}, nil
}

// EnsureSchema prepares on-disk locations: the dev provider's output
// directory, and a check that the static site has an index page.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if providerName(appCfg.MailProvider) == mailer.ProviderDev && deps.Mail != nil {
		if err := os.MkdirAll(appCfg.MailDevDir, 0o755); err != nil {
			return fmt.Errorf("mail_dev_dir: %w", err)
		}
	}

	if _, err := os.Stat(filepath.Join(appCfg.SiteDir, "index.html")); err != nil {
		logger.Warn("static site has no index.html", zap.String("site_dir", appCfg.SiteDir))
	}
	return nil
}

func providerName(p string) string {
	if p == "" {
		return mailer.ProviderResend
	}
	return p
}
