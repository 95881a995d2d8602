// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and CORS. AppConfig is where
// everything specific to the mock backend lives.
type AppConfig struct {
	// Session management configuration
	SessionKey    string // Secret key for signing the operator session cookie
	SessionName   string // Cookie name for the operator session
	SessionDomain string // Cookie domain (blank means current host)

	// SSO token configuration
	SSOSecret string // Shared HMAC secret for verifying SSO bind tokens

	// Latency simulation
	LatencyEnabled bool          // Simulate backend latency on every call
	LatencyBase    time.Duration // Base delay; actual delay is uniform over [base, 2*base)

	// Rate limiting for mutating client endpoints
	RateLimitBurst  int           // Requests allowed per window per client IP
	RateLimitWindow time.Duration // Window duration

	// DefaultProject, when set, is created empty at startup so the
	// frontend has a board to bind against without an operator login.
	DefaultProject string
}
