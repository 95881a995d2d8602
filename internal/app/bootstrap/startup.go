// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after backend setup
// is complete, but before the HTTP handler is built. For the mock this
// means seeding the default project, if one is configured, so the
// frontend can bind immediately.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.DefaultProject != "" {
		deps.Srv.Store().GetOrCreate(appCfg.DefaultProject)
		logger.Info("seeded default project", zap.String("project_id", appCfg.DefaultProject))
	}
	return nil
}
