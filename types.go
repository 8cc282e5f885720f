package onboard

import (
	"time"

	"github.com/farmconnect/onboard/api"
)

// SessionCredential is the persisted authentication state as read back from
// the store.
type SessionCredential struct {
	Token     string
	User      api.User
	ExpiresAt time.Time
}

// LoginResult is a successful login: the issued credential plus the
// role-dependent landing path the host should navigate to.
type LoginResult struct {
	User         *api.User
	AccessToken  string
	RedirectPath string
}

// VerificationResult is a successful email verification. SessionStored
// reports whether the backend included a credential that was persisted.
// The host should show Message, wait RedirectDelay, then follow
// RedirectPath.
type VerificationResult struct {
	Message       string
	SessionStored bool
	RedirectPath  string
	RedirectDelay time.Duration
}
