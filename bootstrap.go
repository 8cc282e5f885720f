package onboard

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/farmconnect/onboard/api"
	"github.com/farmconnect/onboard/session"
)

// Role-dependent landing paths. Part of the product contract.
const (
	redirectFarmer = "/farmer-dashboard"
	redirectBuyer  = "/buyer-dashboard"
	redirectHome   = "/"
)

func redirectPathForRole(role string) string {
	switch role {
	case string(RoleFarmer):
		return redirectFarmer
	case string(RoleBuyer):
		return redirectBuyer
	default:
		return redirectHome
	}
}

// persistCredential writes the issued credential into the session store:
// stale keys are cleared first, then token, serialized user, and expiry are
// written, and the token key is read back to confirm the write landed. A
// failed readback invalidates the whole attempt.
func (e *Engine) persistCredential(ctx context.Context, token string, user *api.User) error {
	store := e.sessions

	if err := store.Clear(ctx); err != nil {
		return errors.Join(ErrSessionPersistFailed, err)
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return errors.Join(ErrSessionPersistFailed, err)
	}

	expiry := e.credentialExpiry(token, time.Now())

	if err := store.Set(ctx, session.KeyAuthToken, token); err != nil {
		return errors.Join(ErrSessionPersistFailed, err)
	}
	if err := store.Set(ctx, session.KeyUser, string(userJSON)); err != nil {
		return errors.Join(ErrSessionPersistFailed, err)
	}
	if err := store.Set(ctx, session.KeyTokenExpiry, expiry.Format(time.RFC3339)); err != nil {
		return errors.Join(ErrSessionPersistFailed, err)
	}

	stored, err := store.Get(ctx, session.KeyAuthToken)
	if err != nil || stored != token {
		return ErrSessionPersistFailed
	}

	e.metricInc(MetricSessionPersisted)
	e.emitAudit(ctx, auditEventSessionPersisted, true, user.Email, 0, nil, nil)
	return nil
}

// credentialExpiry derives the session expiry from the token's exp claim.
// The parse is unverified: the client holds no signing key, and the expiry
// only schedules a local cleanup the backend enforces anyway. Tokens without
// a usable claim fall back to the configured fixed lifetime.
func (e *Engine) credentialExpiry(token string, now time.Time) time.Time {
	fallback := now.Add(e.config.Session.FallbackLifetime)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	if !exp.Time.After(now) {
		return fallback
	}
	return exp.Time
}

// CurrentUser reads the persisted credential, typically at host startup.
// A missing credential yields ErrSessionNotFound. A present but expired or
// malformed credential is cleared and reported as expired or absent.
func (e *Engine) CurrentUser(ctx context.Context) (*SessionCredential, error) {
	token, err := e.sessions.Get(ctx, session.KeyAuthToken)
	if err != nil {
		if errors.Is(err, session.ErrKeyNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	userJSON, err := e.sessions.Get(ctx, session.KeyUser)
	if err != nil {
		e.clearSession(ctx)
		return nil, ErrSessionNotFound
	}
	var user api.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		e.clearSession(ctx)
		return nil, ErrSessionNotFound
	}

	expiryRaw, err := e.sessions.Get(ctx, session.KeyTokenExpiry)
	if err != nil {
		e.clearSession(ctx)
		return nil, ErrSessionExpired
	}
	expiry, err := time.Parse(time.RFC3339, expiryRaw)
	if err != nil || !expiry.After(time.Now()) {
		e.clearSession(ctx)
		return nil, ErrSessionExpired
	}

	return &SessionCredential{
		Token:     token,
		User:      user,
		ExpiresAt: expiry,
	}, nil
}

// clearSession removes the credential keys, best effort.
func (e *Engine) clearSession(ctx context.Context) {
	if err := e.sessions.Clear(ctx); err != nil {
		log.Print("onboard: session clear failed")
	}
}
