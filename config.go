package onboard

import (
	"errors"
	"time"
)

// Config collects every tunable of the onboarding engine. A zero Config is
// not usable; start from the builder's defaults and override what you need.
type Config struct {
	API          APIConfig
	Session      SessionConfig
	Verification VerificationConfig
	Audit        AuditConfig
	Metrics      MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig configures the backend client.
type APIConfig struct {
	// BaseURL is the backend origin, without the /api path prefix.
	BaseURL string
	// Timeout bounds each request when no custom HTTP client is supplied.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig configures credential persistence.
type SessionConfig struct {
	// RedisPrefix namespaces the credential keys in redis.
	RedisPrefix string
	// RedisTTL bounds credential keys redis-side. Zero means no expiry;
	// the stored tokenExpiry value still governs session validity.
	RedisTTL time.Duration
	// FallbackLifetime is the session lifetime assumed when the issued
	// token carries no usable exp claim.
	FallbackLifetime time.Duration
}

/*
====================================
VERIFICATION CONFIG
====================================
*/

// VerificationConfig configures the post-verification handoff.
type VerificationConfig struct {
	// RedirectDelay is how long the host should display the success message
	// before following RedirectPath.
	RedirectDelay time.Duration
	// LoginPath is where a verified account is sent to sign in.
	LoginPath string
}

// AuditConfig configures the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig configures in-process counters.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		Session: SessionConfig{
			RedisPrefix:      "fc",
			RedisTTL:         0,
			FallbackLifetime: 24 * time.Hour,
		},
		Verification: VerificationConfig{
			RedirectDelay: 2 * time.Second,
			LoginPath:     "/login",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks internal consistency. The builder calls it before wiring.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("API Timeout must be > 0")
	}

	if c.Session.FallbackLifetime <= 0 {
		return errors.New("Session FallbackLifetime must be > 0")
	}
	if c.Session.RedisTTL < 0 {
		return errors.New("Session RedisTTL must be >= 0")
	}

	if c.Verification.RedirectDelay < 0 {
		return errors.New("Verification RedirectDelay must be >= 0")
	}
	if c.Verification.LoginPath == "" {
		return errors.New("Verification LoginPath is required")
	}

	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
