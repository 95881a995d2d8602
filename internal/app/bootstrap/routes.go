// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/echoboard/echoboard/internal/app/features/adminapi"
	"github.com/echoboard/echoboard/internal/app/features/clientapi"
	"github.com/echoboard/echoboard/internal/app/features/health"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and any
// Startup hooks have completed. EchoBoard mounts three surfaces:
//
//	/health                        liveness plus store counters
//	/api/v1/project/{projectId}    end-user client API
//	/api/v1/admin                  dashboard operator API
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr := adminapi.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)

	r := chi.NewRouter()

	healthHandler := health.NewHandler(deps.Srv, logger)
	r.Mount("/health", health.Routes(healthHandler))

	clientHandler := clientapi.NewHandler(deps.Srv, deps.Limiter, logger)
	r.Mount("/api/v1/project/{projectId}", clientapi.Routes(clientHandler))

	adminHandler := adminapi.NewHandler(deps.Srv, sessionMgr, logger)
	r.Mount("/api/v1/admin", adminapi.Routes(adminHandler))

	return r, nil
}
