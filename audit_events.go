package onboard

import (
	"context"
	"errors"
	"time"

	"github.com/farmconnect/onboard/api"
	"github.com/farmconnect/onboard/session"
)

const (
	auditEventStepAdvance              = "step_advance"
	auditEventStepBlocked              = "step_blocked"
	auditEventStepBack                 = "step_back"
	auditEventRegistrationSubmit       = "registration_submit"
	auditEventRegistrationRejected     = "registration_rejected"
	auditEventRegistrationNetworkError = "registration_network_error"
	auditEventVerificationConfirm      = "verification_confirm"
	auditEventVerificationRejected     = "verification_rejected"
	auditEventVerificationResend       = "verification_resend"
	auditEventLoginSuccess             = "login_success"
	auditEventLoginFailure             = "login_failure"
	auditEventLogout                   = "logout"
	auditEventSessionPersisted         = "session_persisted"
	auditEventSessionPersistFailed     = "session_persist_failed"
	auditEventSessionEvicted           = "session_evicted_unauthorized"
)

// AuditErrorCode is the stable error label carried by audit events.
type AuditErrorCode string

const (
	auditErrValidation     AuditErrorCode = "validation_failed"
	auditErrRemoteRejected AuditErrorCode = "remote_rejected"
	auditErrNetwork        AuditErrorCode = "network_error"
	auditErrCodeInvalid    AuditErrorCode = "verification_code_invalid"
	auditErrCredentials    AuditErrorCode = "credentials_missing"
	auditErrMalformed      AuditErrorCode = "malformed_response"
	auditErrPersistFailed  AuditErrorCode = "session_persist_failed"
	auditErrStoreFailed    AuditErrorCode = "store_unavailable"
	auditErrNotPending     AuditErrorCode = "no_pending_verification"
	auditErrInternal       AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	email string,
	step int,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Email:     email,
		Step:      step,
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	var remote *api.RemoteError

	switch {
	case errors.Is(err, ErrStepBlocked):
		return auditErrValidation
	case errors.Is(err, ErrVerificationCodeRequired),
		errors.Is(err, ErrVerificationCodeLength):
		return auditErrCodeInvalid
	case errors.Is(err, ErrCredentialsRequired):
		return auditErrCredentials
	case errors.Is(err, ErrMalformedResponse):
		return auditErrMalformed
	case errors.Is(err, ErrSessionPersistFailed):
		return auditErrPersistFailed
	case errors.Is(err, ErrNoPendingVerification):
		return auditErrNotPending
	case errors.As(err, &remote):
		return auditErrRemoteRejected
	case errors.Is(err, api.ErrNetwork):
		return auditErrNetwork
	case errors.Is(err, session.ErrRedisUnavailable):
		return auditErrStoreFailed
	default:
		return auditErrInternal
	}
}
