package onboard

import (
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/farmconnect/onboard/api"
	"github.com/farmconnect/onboard/session"
)

// Builder assembles an Engine. Each builder builds once.
type Builder struct {
	config     Config
	redis      *redis.Client
	store      session.Store
	httpClient *http.Client
	auditSink  AuditSink

	built bool
}

// New returns a builder seeded with default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the backend origin.
func (b *Builder) WithBaseURL(url string) *Builder {
	b.config.API.BaseURL = url
	return b
}

// WithRedis persists the credential in redis instead of process memory.
// Ignored when WithSessionStore supplies an explicit store.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithSessionStore injects a custom credential store.
func (b *Builder) WithSessionStore(store session.Store) *Builder {
	b.store = store
	return b
}

// WithHTTPClient overrides the backend HTTP client. Its transport is
// wrapped by the engine's interceptor chain.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithAuditSink receives workflow audit events. Enables audit dispatch.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled toggles in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the submit latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and wires the engine. Store precedence:
// explicit store, then redis, then process memory.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var store session.Store
	switch {
	case b.store != nil:
		store = b.store
	case b.redis != nil:
		store = session.NewRedisStore(b.redis, cfg.Session.RedisPrefix, cfg.Session.RedisTTL)
	default:
		store = session.NewMemoryStore()
	}

	engine := &Engine{
		config:   cfg,
		sessions: store,
	}
	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	client, err := api.NewClient(api.Config{
		BaseURL:        cfg.API.BaseURL,
		HTTPClient:     b.httpClient,
		Timeout:        cfg.API.Timeout,
		UserAgent:      cfg.API.UserAgent,
		TokenSource:    engine.sessionToken,
		OnUnauthorized: engine.evictSession,
	})
	if err != nil {
		engine.Close()
		return nil, err
	}
	engine.api = client

	b.built = true

	return engine, nil
}
