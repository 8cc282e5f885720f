package onboard

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/farmconnect/onboard/api"
	"github.com/farmconnect/onboard/session"
)

// Engine is the shared onboarding runtime: configuration, the backend
// client, the credential store, and observability. One Engine serves many
// Registration flows. Build it with [New].
type Engine struct {
	config   Config
	api      *api.Client
	sessions session.Store
	audit    *auditDispatcher
	metrics  *Metrics
}

// Close flushes and stops the audit dispatcher.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// API exposes the backend client for post-onboarding calls: products,
// orders, analytics, password reset.
func (e *Engine) API() *api.Client {
	return e.api
}

// AuditDropped reports how many audit events were discarded under
// backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) observeSubmitLatency(d time.Duration) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Observe(MetricSubmitLatency, d)
}

// Login authenticates against the backend and bootstraps the local session.
// Empty credentials are rejected without a network call. The returned result
// carries the role-dependent landing path. A credential that cannot be
// persisted fails the login even though the backend accepted it.
func (e *Engine) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if e == nil || e.api == nil {
		return nil, ErrEngineNotReady
	}
	if email == "" || password == "" {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, 0, ErrCredentialsRequired, nil)
		return nil, ErrCredentialsRequired
	}

	resp, err := e.api.Login(ctx, email, password)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, 0, err, nil)
		return nil, err
	}
	if resp.AccessToken == "" || resp.User == nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, 0, ErrMalformedResponse, nil)
		return nil, ErrMalformedResponse
	}

	if err := e.persistCredential(ctx, resp.AccessToken, resp.User); err != nil {
		e.metricInc(MetricSessionPersistFailed)
		e.emitAudit(ctx, auditEventSessionPersistFailed, false, email, 0, err, nil)
		return nil, err
	}

	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, email, 0, nil, nil)

	return &LoginResult{
		User:         resp.User,
		AccessToken:  resp.AccessToken,
		RedirectPath: redirectPathForRole(resp.User.Role),
	}, nil
}

// Logout clears the persisted credential. Logout of an absent session is
// not an error.
func (e *Engine) Logout(ctx context.Context) error {
	if e == nil || e.sessions == nil {
		return ErrEngineNotReady
	}

	err := e.sessions.Clear(ctx)
	if err == nil {
		e.metricInc(MetricLogout)
	}
	e.emitAudit(ctx, auditEventLogout, err == nil, "", 0, err, nil)
	return err
}

// RequestPasswordReset asks the backend to email a reset link.
func (e *Engine) RequestPasswordReset(ctx context.Context, email string) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}
	_, err := e.api.ForgotPassword(ctx, email)
	return err
}

// ResetPassword completes a password reset with the emailed token.
func (e *Engine) ResetPassword(ctx context.Context, token, newPassword string) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}
	_, err := e.api.ResetPassword(ctx, token, newPassword)
	return err
}

// CheckResetToken reports whether a reset token is still usable.
func (e *Engine) CheckResetToken(ctx context.Context, token string) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}
	_, err := e.api.CheckResetToken(ctx, token)
	return err
}

// evictSession runs on any 401 from the backend: the persisted credential
// is stale, so drop it. Best effort.
func (e *Engine) evictSession(ctx context.Context) {
	if e == nil || e.sessions == nil {
		return
	}
	if err := e.sessions.Clear(ctx); err != nil {
		log.Print("onboard: session eviction after 401 failed")
	}
	e.metricInc(MetricSessionEvicted)
	e.emitAudit(ctx, auditEventSessionEvicted, true, "", 0, nil, nil)
}

// sessionToken supplies the bearer token for outgoing requests. A missing
// key means "send unauthenticated"; store failures do too, rather than
// blocking the request.
func (e *Engine) sessionToken(ctx context.Context) (string, error) {
	token, err := e.sessions.Get(ctx, session.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, session.ErrKeyNotFound) {
			log.Print("onboard: token read for request failed")
		}
		return "", nil
	}
	return token, nil
}
