package session

import (
	"context"
	"errors"
)

// Credential storage keys. The names are part of the product contract and
// must match the web client's storage slots exactly.
const (
	KeyAuthToken   = "authToken"
	KeyUser        = "user"
	KeyTokenExpiry = "tokenExpiry"
)

var (
	// ErrKeyNotFound is returned by Get when the key holds no value.
	ErrKeyNotFound = errors.New("session: key not found")
	// ErrRedisUnavailable wraps transport failures of the redis-backed store.
	ErrRedisUnavailable = errors.New("session: redis unavailable")
)

// Store is the persisted credential store. Implementations must be safe for
// concurrent use. Writes are last-writer-wins; the workflow layer owns any
// read-after-write verification it needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear removes all credential keys. Missing keys are not an error.
	Clear(ctx context.Context) error
}

// credentialKeys lists every key Clear must cover.
var credentialKeys = []string{KeyAuthToken, KeyUser, KeyTokenExpiry}
