// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown releases idle connections held by the email sender.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	closer, ok := deps.Mail.(interface{ Close() error })
	if !ok {
		return nil
	}
	logger.Info("closing email sender")
	if err := closer.Close(); err != nil {
		logger.Error("email sender close failed", zap.Error(err))
		return err
	}
	return nil
}
