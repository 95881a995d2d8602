// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/echoboard/echoboard/internal/app/mock"
	"github.com/echoboard/echoboard/internal/app/system/ratelimit"
	"github.com/echoboard/echoboard/internal/app/system/ssotoken"
	"go.uber.org/zap"
)

// ConnectDB builds the app's back-end dependencies. There is no real
// database to dial; the engine and its state live in this process.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := []mock.Option{
		mock.WithLogger(logger.Named("mock")),
		mock.WithSigner(ssotoken.NewHMACSigner(appCfg.SSOSecret)),
	}
	if appCfg.LatencyEnabled {
		opts = append(opts, mock.WithLatency(appCfg.LatencyBase))
		logger.Info("latency simulation enabled", zap.Duration("base", appCfg.LatencyBase))
	}

	deps := DBDeps{
		Srv:     mock.NewServer(opts...),
		Limiter: ratelimit.New(appCfg.RateLimitBurst, appCfg.RateLimitWindow),
	}
	return deps, nil
}

// EnsureSchema sets up indexes or schema as needed. The in-memory
// store has neither, so this is a no-op.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
