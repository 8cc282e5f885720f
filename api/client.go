package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNetwork wraps transport-level failures: DNS, connect, TLS, timeouts.
// Callers branch on it to show a generic connectivity message instead of a
// backend rejection.
var ErrNetwork = errors.New("api: network error")

// RemoteError is a non-2xx backend response. Detail carries the backend's
// "detail" field verbatim; it is shown to the user unchanged.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Detail)
}

// TokenSource supplies the bearer token for outgoing requests. An empty
// token with a nil error means "send unauthenticated".
type TokenSource func(ctx context.Context) (string, error)

// Config configures a Client.
type Config struct {
	// BaseURL is the backend origin, without the /api path prefix.
	BaseURL string
	// HTTPClient overrides the underlying client. Its transport is wrapped
	// by the auth/request-id chain.
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	// TokenSource supplies bearer tokens. Optional.
	TokenSource TokenSource
	// OnUnauthorized runs after any 401 response, before the error is
	// returned. Used to evict a stale persisted session. Optional.
	OnUnauthorized func(ctx context.Context)
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Client talks to the FarmConnect backend. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client from cfg. BaseURL is required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api: BaseURL required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	} else {
		cloned := *hc
		hc = &cloned
	}

	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = &transport{
		base:           base,
		tokenSource:    cfg.TokenSource,
		onUnauthorized: cfg.OnUnauthorized,
		userAgent:      cfg.UserAgent,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
	}, nil
}

// do issues one JSON request. body and out may be nil. Non-2xx responses
// become *RemoteError; transport failures become ErrNetwork wraps.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{
			StatusCode: resp.StatusCode,
			Detail:     detailFromBody(data, resp.StatusCode),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// detailFromBody extracts the backend's detail field, falling back to the
// HTTP status text when the body is not the expected shape.
func detailFromBody(data []byte, statusCode int) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return http.StatusText(statusCode)
}
