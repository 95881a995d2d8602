// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/echoboard/echoboard/internal/app/mock"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for EchoBoard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_name, latency_enabled, etc.
//   - Environment variables: ECHOBOARD_SESSION_NAME, ECHOBOARD_LATENCY_ENABLED, etc.
//   - Command-line flags: --session_name, --latency_enabled, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "echoboard-session", Desc: "Operator session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// SSO token verification
	{Name: "sso_secret", Default: mock.DemoSSOSecret, Desc: "Shared HMAC secret for SSO bind tokens"},

	// Latency simulation
	{Name: "latency_enabled", Default: false, Desc: "Simulate backend latency on every call"},
	{Name: "latency_base", Default: "1s", Desc: "Base simulated delay (actual delay is uniform over [base, 2*base))"},

	// Rate limiting
	{Name: "rate_limit_burst", Default: 10, Desc: "Mutating requests allowed per window per client IP"},
	{Name: "rate_limit_window", Default: "1m", Desc: "Rate limit window duration"},

	// Demo seeding
	{Name: "default_project", Default: "", Desc: "Project id to create empty at startup (blank disables)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ECHOBOARD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		SSOSecret: appValues.String("sso_secret"),

		LatencyEnabled: appValues.Bool("latency_enabled"),
		LatencyBase:    appValues.Duration("latency_base", mock.DefaultBaseLatency),

		RateLimitBurst:  appValues.Int("rate_limit_burst"),
		RateLimitWindow: appValues.Duration("rate_limit_window", time.Minute),

		DefaultProject: appValues.String("default_project"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must not be empty")
	}
	if appCfg.SSOSecret == "" {
		return fmt.Errorf("sso_secret must not be empty")
	}
	if appCfg.LatencyBase <= 0 {
		return fmt.Errorf("latency_base must be positive, got %s", appCfg.LatencyBase)
	}
	if appCfg.RateLimitBurst < 1 {
		return fmt.Errorf("rate_limit_burst must be at least 1, got %d", appCfg.RateLimitBurst)
	}
	if appCfg.RateLimitWindow <= 0 {
		return fmt.Errorf("rate_limit_window must be positive, got %s", appCfg.RateLimitWindow)
	}
	return nil
}
