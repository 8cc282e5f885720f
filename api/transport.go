package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const defaultUserAgent = "farmconnect-onboard/1.0"

// transport is the client-side interceptor chain: bearer token injection,
// per-request IDs, and 401 session eviction.
type transport struct {
	base           http.RoundTripper
	tokenSource    TokenSource
	onUnauthorized func(ctx context.Context)
	userAgent      string
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	if t.tokenSource != nil {
		token, err := t.tokenSource(req.Context())
		if err == nil && token != "" {
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if id := requestIDFromContext(req.Context()); id != "" {
		out.Header.Set("X-Request-ID", id)
	} else {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}
	ua := t.userAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	out.Header.Set("User-Agent", ua)

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized(req.Context())
	}

	return resp, nil
}

type requestIDContextKey struct{}

// WithRequestID attaches a caller-chosen request ID to ctx. When absent, the
// transport generates a fresh UUID per request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}
