// Package mock is an in-memory simulation of the EchoBoard backend API.
// It implements the same request/response contract as the real service,
// covering projects, users, ideas, comments, votes, funding,
// notifications, and the dashboard account, with no database and no
// network, for demos, offline development, and deterministic tests.
package mock

import (
	"time"

	"github.com/echoboard/echoboard/internal/app/store/projectstore"
	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/app/system/ssotoken"
	"github.com/echoboard/echoboard/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultBaseLatency is the simulated response delay base when latency
// simulation is enabled. Actual delay is uniform over [base, 2*base).
const DefaultBaseLatency = time.Second

// Server is the mock backend. Construct one per process or per test
// with NewServer and pass it by reference; there is no global instance.
//
// All handlers run to completion synchronously; the only asynchrony is
// the optional simulated latency applied before a result or error is
// handed back. Server is therefore not safe for concurrent use, by
// design: the simulated backend is a single logical thread.
type Server struct {
	store  *projectstore.Store
	signer ssotoken.Signer
	logger *zap.Logger

	// Mock dashboard session (server-side cookie data).
	loggedIn        bool
	account         *models.Account
	accountPassHash string

	hasLatency  bool
	baseLatency time.Duration

	now func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithSigner injects the SSO token capability. Defaults to an HMAC
// signer with a fixed demo secret.
func WithSigner(signer ssotoken.Signer) Option {
	return func(s *Server) { s.signer = signer }
}

// WithLatency enables latency simulation with the given base delay.
func WithLatency(base time.Duration) Option {
	return func(s *Server) {
		s.hasLatency = true
		s.baseLatency = base
	}
}

// WithClock overrides the time source, for tests that need distinct or
// controlled creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// DemoSSOSecret is the shared symmetric secret the default signer uses.
// Mock-only; real deployments inject an asymmetric Signer.
const DemoSSOSecret = "63195fc1-d8c0-4909-9039-e15ce3c96dce"

// NewServer builds an empty mock backend.
func NewServer(opts ...Option) *Server {
	s := &Server{
		store:       projectstore.New(),
		baseLatency: DefaultBaseLatency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.signer == nil {
		s.signer = ssotoken.NewHMACSigner(DemoSSOSecret)
	}
	return s
}

// SetLatency toggles latency simulation at runtime.
func (s *Server) SetLatency(enabled bool) { s.hasLatency = enabled }

// Store exposes the underlying store for test fixtures and the health
// endpoint. Production callers go through the service facades.
func (s *Server) Store() *projectstore.Store { return s.store }

// project returns the lazily created project store for the id.
func (s *Server) project(projectID string) *projectstore.Project {
	return s.store.GetOrCreate(projectID)
}

// loggedInUser resolves the project's bound user or fails with 403.
func (s *Server) loggedInUser(projectID string) (*models.User, error) {
	u := s.project(projectID).LoggedInUser()
	if u == nil {
		return nil, apierror.Forbidden("Not logged in")
	}
	return u, nil
}

// userWithBalance copies the user record and fills the display balance
// from the authoritative balances map.
func (s *Server) userWithBalance(p *projectstore.Project, u models.User) models.User {
	u.Balance = p.Balance(u.UserID)
	return u
}
