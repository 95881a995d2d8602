// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down resources. All mock state is in-memory
// and discarded with the process, so there is nothing to disconnect.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("shutting down", zap.Int("projects", deps.Srv.Store().Len()))
	return nil
}
