package mock

import (
	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectCreate installs the supplied config on the (lazily created)
// project and returns the stored versioned config.
func (s *Server) ProjectCreate(projectID string, config models.Config) (models.VersionedConfig, error) {
	p := s.project(projectID)
	p.Config.Config = config
	s.logger.Info("project created", zap.String("project_id", projectID))
	return respond(s, p.Config)
}

// ProjectDelete removes the whole project store. A later access starts
// from a fresh empty project.
func (s *Server) ProjectDelete(projectID string) error {
	s.store.Delete(projectID)
	s.logger.Info("project deleted", zap.String("project_id", projectID))
	s.waitLatency()
	return nil
}

// ConfigGet returns the project's versioned config, or 404 when the
// project does not exist yet.
func (s *Server) ConfigGet(projectID string) (models.VersionedConfig, error) {
	p, ok := s.store.Get(projectID)
	if !ok {
		return fail[models.VersionedConfig](s, apierror.NotFound("Project not found"))
	}
	return respond(s, p.Config)
}

// ConfigGetAll returns every project's config. Requires a logged-in
// dashboard account.
func (s *Server) ConfigGetAll() ([]models.VersionedConfig, error) {
	if !s.loggedIn {
		return fail[[]models.VersionedConfig](s, apierror.Forbidden("Not logged in"))
	}
	configs := make([]models.VersionedConfig, 0, s.store.Len())
	for _, p := range s.store.Projects() {
		configs = append(configs, p.Config)
	}
	return respond(s, configs)
}

// ConfigSet replaces the project config under optimistic concurrency:
// when versionLast is supplied and does not match the stored version,
// the call fails with 412 and nothing changes. On success a fresh
// random version token is minted.
func (s *Server) ConfigSet(projectID string, config models.Config, versionLast string) (models.VersionedConfig, error) {
	p := s.project(projectID)
	if versionLast != "" && p.Config.Version != versionLast {
		return fail[models.VersionedConfig](s, apierror.Conflict("Config changed since last reload"))
	}
	p.Config = models.VersionedConfig{Config: config, Version: uuid.NewString()}
	return respond(s, p.Config)
}
