package onboard

import "errors"

var (
	// ErrEngineNotReady is returned when a workflow operation runs before
	// the engine finished initialization through [Builder.Build].
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrStepBlocked is returned by Next and the submit operations when the
	// current step's validation produced a non-empty error map.
	ErrStepBlocked = errors.New("step validation failed")
	// ErrNoPreviousStep is returned by Back on the first step.
	ErrNoPreviousStep = errors.New("no previous step")
	// ErrRegistrationComplete is returned once the workflow reached its
	// terminal state; a completed registration cannot be resubmitted.
	ErrRegistrationComplete = errors.New("registration already completed")
	// ErrAwaitingVerification is returned by Next and Back once the workflow
	// sits on the verification step; data steps are no longer reachable.
	ErrAwaitingVerification = errors.New("awaiting email verification")
	// ErrNoPendingVerification is returned when a verification operation
	// runs before a registration was submitted.
	ErrNoPendingVerification = errors.New("no registration pending verification")
	// ErrVerificationCodeRequired is returned when the verification code is
	// empty at submission time.
	ErrVerificationCodeRequired = errors.New("verification code required")
	// ErrVerificationCodeLength is returned when the verification code is
	// shorter than the required six digits.
	ErrVerificationCodeLength = errors.New("verification code must be 6 digits")
	// ErrCredentialsRequired is returned by Login when email or password is
	// empty; the remote endpoint is not called.
	ErrCredentialsRequired = errors.New("email and password are required")
	// ErrMalformedResponse is returned when a 2xx auth response is missing
	// the access token or the user object.
	ErrMalformedResponse = errors.New("response missing token or user data")
	// ErrSessionPersistFailed is returned when the credential store write
	// could not be verified. The flow treats this as fatal: the caller must
	// report authentication failure even though the remote call succeeded.
	ErrSessionPersistFailed = errors.New("failed to store authentication data")
	// ErrSessionNotFound is returned by CurrentUser when no credential is
	// persisted.
	ErrSessionNotFound = errors.New("no persisted session")
	// ErrSessionExpired is returned by CurrentUser when the persisted
	// credential's stored expiry has passed; the stale keys are cleared.
	ErrSessionExpired = errors.New("persisted session expired")
)
