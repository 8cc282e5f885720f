package onboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/farmconnect/onboard/api"
	"github.com/farmconnect/onboard/session"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newStoreOnlyEngine(t *testing.T, store session.Store) *Engine {
	t.Helper()
	engine, err := New().
		WithBaseURL("http://localhost:1").
		WithSessionStore(store).
		Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

func TestCredentialExpiryFromClaim(t *testing.T) {
	engine := newStoreOnlyEngine(t, session.NewMemoryStore())
	now := time.Now()

	exp := now.Add(45 * time.Minute).Truncate(time.Second)
	got := engine.credentialExpiry(signedToken(t, exp), now)
	if !got.Equal(exp) {
		t.Fatalf("expiry = %v, want %v", got, exp)
	}
}

func TestCredentialExpiryFallsBack(t *testing.T) {
	engine := newStoreOnlyEngine(t, session.NewMemoryStore())
	now := time.Now()
	fallback := now.Add(engine.config.Session.FallbackLifetime)

	cases := map[string]string{
		"opaque":  "not-a-jwt",
		"expired": signedToken(t, now.Add(-time.Hour)),
	}
	for name, token := range cases {
		if got := engine.credentialExpiry(token, now); !got.Equal(fallback) {
			t.Fatalf("%s: expiry = %v, want fallback %v", name, got, fallback)
		}
	}

	// A claimless JWT also falls back.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if got := engine.credentialExpiry(signed, now); !got.Equal(fallback) {
		t.Fatalf("claimless: expiry = %v, want fallback", got)
	}
}

func TestCurrentUserRoundtrip(t *testing.T) {
	store := session.NewMemoryStore()
	engine := newStoreOnlyEngine(t, store)
	ctx := context.Background()

	user := &api.User{ID: 7, Email: "ada@example.com", Role: "farmer"}
	token := signedToken(t, time.Now().Add(time.Hour))
	if err := engine.persistCredential(ctx, token, user); err != nil {
		t.Fatalf("persist: %v", err)
	}

	cred, err := engine.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if cred.Token != token {
		t.Fatalf("token = %q", cred.Token)
	}
	if cred.User.ID != 7 || cred.User.Email != "ada@example.com" {
		t.Fatalf("user = %+v", cred.User)
	}
	if !cred.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry = %v", cred.ExpiresAt)
	}
}

func TestCurrentUserMissing(t *testing.T) {
	engine := newStoreOnlyEngine(t, session.NewMemoryStore())

	_, err := engine.CurrentUser(context.Background())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestCurrentUserExpiredClearsStore(t *testing.T) {
	store := session.NewMemoryStore()
	engine := newStoreOnlyEngine(t, store)
	ctx := context.Background()

	_ = store.Set(ctx, session.KeyAuthToken, "tok")
	_ = store.Set(ctx, session.KeyUser, `{"id":7,"email":"a@b.co","role":"buyer"}`)
	_ = store.Set(ctx, session.KeyTokenExpiry, time.Now().Add(-time.Minute).Format(time.RFC3339))

	_, err := engine.CurrentUser(ctx)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if _, err := store.Get(ctx, session.KeyAuthToken); !errors.Is(err, session.ErrKeyNotFound) {
		t.Fatal("expired credential not cleared")
	}
}

func TestCurrentUserCorruptUserClearsStore(t *testing.T) {
	store := session.NewMemoryStore()
	engine := newStoreOnlyEngine(t, store)
	ctx := context.Background()

	_ = store.Set(ctx, session.KeyAuthToken, "tok")
	_ = store.Set(ctx, session.KeyUser, "{not json")
	_ = store.Set(ctx, session.KeyTokenExpiry, time.Now().Add(time.Hour).Format(time.RFC3339))

	_, err := engine.CurrentUser(ctx)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	if _, err := store.Get(ctx, session.KeyAuthToken); !errors.Is(err, session.ErrKeyNotFound) {
		t.Fatal("corrupt credential not cleared")
	}
}

// tokenDroppingStore swallows writes to the auth token key so the persist
// readback cannot succeed.
type tokenDroppingStore struct {
	*session.MemoryStore
}

func (s tokenDroppingStore) Set(ctx context.Context, key, value string) error {
	if key == session.KeyAuthToken {
		return nil
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestPersistCredentialReadbackFailure(t *testing.T) {
	store := tokenDroppingStore{session.NewMemoryStore()}
	engine := newStoreOnlyEngine(t, store)

	err := engine.persistCredential(context.Background(), "tok", &api.User{ID: 7, Email: "a@b.co"})
	if !errors.Is(err, ErrSessionPersistFailed) {
		t.Fatalf("err = %v, want ErrSessionPersistFailed", err)
	}
}

func TestRedirectPathForRole(t *testing.T) {
	cases := map[string]string{
		"farmer":  "/farmer-dashboard",
		"buyer":   "/buyer-dashboard",
		"admin":   "/",
		"":        "/",
		"unknown": "/",
	}
	for role, want := range cases {
		if got := redirectPathForRole(role); got != want {
			t.Fatalf("redirectPathForRole(%q) = %q, want %q", role, got, want)
		}
	}
}
