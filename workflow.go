package onboard

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/farmconnect/onboard/api"
)

// Registration is one user's pass through the wizard. Methods serialize
// internally, and overlapping duplicate submissions, the double-click case,
// coalesce into a single backend call through the singleflight group.
type Registration struct {
	engine *Engine

	mu     sync.Mutex
	form   RegistrationForm
	plan   []StepDescriptor
	index  int
	errors ErrorMap

	pendingEmail string
	code         string
	notice       string
	done         bool

	submits singleflight.Group
}

// NewRegistration starts an empty registration flow.
func (e *Engine) NewRegistration() *Registration {
	form := newRegistrationForm()
	return &Registration{
		engine: e,
		form:   form,
		plan:   stepPlan(&form),
		errors: ErrorMap{},
	}
}

// Step returns the current step descriptor.
func (r *Registration) Step() StepDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan[r.index]
}

// Plan returns a copy of the current step plan.
func (r *Registration) Plan() []StepDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]StepDescriptor, len(r.plan))
	copy(out, r.plan)
	return out
}

// Errors returns a copy of the current validation error map.
func (r *Registration) Errors() ErrorMap {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(ErrorMap, len(r.errors))
	for k, v := range r.errors {
		out[k] = v
	}
	return out
}

// FieldError returns the validation message for one field, if any.
func (r *Registration) FieldError(field Field) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.errors[field]
	return msg, ok
}

// Form returns a copy of the accumulated form data.
func (r *Registration) Form() RegistrationForm {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.form
}

// PendingEmail is the address awaiting verification, empty before submit.
func (r *Registration) PendingEmail() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pendingEmail
}

// Code is the staged verification code after keystroke filtering.
func (r *Registration) Code() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

// Notice is the last informational message from the backend: the
// registration confirmation or a resend acknowledgement.
func (r *Registration) Notice() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notice
}

// Done reports whether the flow reached its terminal verified state.
func (r *Registration) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// SetField stores one field value and clears that field's validation error.
// Phone input is normalized to the +234 digit format on every write. The
// role, account type, and terms fields route to their dedicated setters so
// a host driving the form generically never loses a write.
func (r *Registration) SetField(field Field, value string) {
	switch field {
	case FieldRole:
		r.SetRole(Role(value))
		return
	case FieldUserType:
		r.SetUserType(UserType(value))
		return
	case FieldTermsAgreed:
		agreed, err := strconv.ParseBool(value)
		r.SetTermsAgreed(err == nil && agreed)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.form.setValue(field, value)
	delete(r.errors, field)
}

// SetRole selects the account role. Changing role discards any role-specific
// details already entered and recomputes the step plan.
func (r *Registration) SetRole(role Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.form.Role != role {
		r.form.Role = role
		r.form.clearFarmerFields()
		r.form.clearBusinessFields()
	}
	delete(r.errors, FieldRole)
	r.plan = stepPlan(&r.form)
}

// SetUserType selects individual or business. Switching away from business
// discards entered business details and recomputes the step plan.
func (r *Registration) SetUserType(userType UserType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.form.UserType != userType {
		r.form.UserType = userType
		r.form.clearBusinessFields()
	}
	delete(r.errors, FieldUserType)
	r.plan = stepPlan(&r.form)
}

// SetTermsAgreed records the terms checkbox.
func (r *Registration) SetTermsAgreed(agreed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.form.TermsAgreed = agreed
	delete(r.errors, FieldTermsAgreed)
}

// SetCode stages verification code input, applying the keystroke filter.
func (r *Registration) SetCode(raw string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.code = NormalizeCode(raw)
}

// Next validates the current step and advances. When the step after the
// current one is the verification step, passing validation submits the
// registration instead of merely advancing; an individual buyer therefore
// goes straight from basic info to a submitted registration.
func (r *Registration) Next(ctx context.Context) error {
	r.mu.Lock()

	if r.done {
		r.mu.Unlock()
		return ErrRegistrationComplete
	}
	cur := r.plan[r.index]
	if cur.Kind == StepVerify {
		r.mu.Unlock()
		return ErrAwaitingVerification
	}

	blocked := r.gateLocked(ctx, cur)
	if blocked {
		r.mu.Unlock()
		return ErrStepBlocked
	}

	if r.plan[r.index+1].Kind == StepVerify {
		r.mu.Unlock()
		return r.SubmitRegistration(ctx)
	}

	r.index++
	next := r.plan[r.index]
	email := r.form.Email
	r.mu.Unlock()

	r.engine.metricInc(MetricStepAdvance)
	r.engine.emitAudit(ctx, auditEventStepAdvance, true, email, next.Number, nil, nil)
	return nil
}

// Back returns to the previous data step and clears the error map. Going
// back is impossible from the first step and from the verification step.
func (r *Registration) Back(ctx context.Context) error {
	r.mu.Lock()

	if r.done {
		r.mu.Unlock()
		return ErrRegistrationComplete
	}
	if r.plan[r.index].Kind == StepVerify {
		r.mu.Unlock()
		return ErrAwaitingVerification
	}
	if r.index == 0 {
		r.mu.Unlock()
		return ErrNoPreviousStep
	}

	r.index--
	r.errors = ErrorMap{}
	prev := r.plan[r.index]
	email := r.form.Email
	r.mu.Unlock()

	r.engine.metricInc(MetricStepBack)
	r.engine.emitAudit(ctx, auditEventStepBack, true, email, prev.Number, nil, nil)
	return nil
}

// gateLocked runs the step gate and records the fresh error map. The caller
// holds r.mu.
func (r *Registration) gateLocked(ctx context.Context, cur StepDescriptor) bool {
	blocked, errs := validateStep(cur.Kind, &r.form)
	r.errors = errs
	if !blocked {
		return false
	}

	email := r.form.Email
	r.engine.metricInc(MetricStepBlocked)
	r.engine.emitAudit(ctx, auditEventStepBlocked, false, email, cur.Number, ErrStepBlocked, func() map[string]string {
		return map[string]string{
			"kind":   cur.Kind.String(),
			"fields": strconv.Itoa(len(errs)),
		}
	})
	return true
}

// SubmitRegistration validates the current step and posts the registration.
// On success the flow jumps to the verification step and the submitted email
// becomes the pending address. The backend's rejection detail is returned
// verbatim; nothing is retried.
func (r *Registration) SubmitRegistration(ctx context.Context) error {
	r.mu.Lock()

	if r.done {
		r.mu.Unlock()
		return ErrRegistrationComplete
	}
	cur := r.plan[r.index]
	if cur.Kind == StepVerify {
		r.mu.Unlock()
		return ErrAwaitingVerification
	}
	if r.gateLocked(ctx, cur) {
		r.mu.Unlock()
		return ErrStepBlocked
	}

	req := buildRegisterRequest(&r.form)
	email := r.form.Email
	r.mu.Unlock()

	start := time.Now()
	v, err, _ := r.submits.Do("register", func() (any, error) {
		return r.engine.api.Register(ctx, req)
	})
	r.engine.observeSubmitLatency(time.Since(start))

	if err != nil {
		var remote *api.RemoteError
		if errors.As(err, &remote) {
			r.engine.metricInc(MetricRegistrationRejected)
			r.engine.emitAudit(ctx, auditEventRegistrationRejected, false, email, cur.Number, err, func() map[string]string {
				return map[string]string{
					"status": strconv.Itoa(remote.StatusCode),
				}
			})
			return err
		}
		r.engine.metricInc(MetricRegistrationNetworkError)
		r.engine.emitAudit(ctx, auditEventRegistrationNetworkError, false, email, cur.Number, err, nil)
		return err
	}

	resp := v.(*api.RegisterResponse)

	r.mu.Lock()
	r.notice = resp.Message
	r.pendingEmail = email
	r.errors = ErrorMap{}
	r.index = len(r.plan) - 1
	verifyNumber := r.plan[r.index].Number
	r.mu.Unlock()

	r.engine.metricInc(MetricRegistrationSubmit)
	r.engine.emitAudit(ctx, auditEventRegistrationSubmit, true, email, verifyNumber, nil, nil)
	return nil
}

// SubmitVerification confirms the emailed code for the pending address.
// A credential included in the reply is persisted before the result is
// returned; a persist failure is fatal for the attempt even though the
// backend accepted the code.
func (r *Registration) SubmitVerification(ctx context.Context, code string) (*VerificationResult, error) {
	r.mu.Lock()

	if r.done {
		r.mu.Unlock()
		return nil, ErrRegistrationComplete
	}
	if r.pendingEmail == "" {
		r.mu.Unlock()
		return nil, ErrNoPendingVerification
	}
	email := r.pendingEmail
	step := r.plan[len(r.plan)-1].Number
	r.mu.Unlock()

	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrVerificationCodeRequired
	}
	if len(code) != verificationCodeLength {
		return nil, ErrVerificationCodeLength
	}

	v, err, _ := r.submits.Do("verify", func() (any, error) {
		return r.engine.api.Verify(ctx, api.VerifyRequest{
			Email:            email,
			VerificationCode: code,
		})
	})
	if err != nil {
		r.engine.metricInc(MetricVerificationFailure)
		r.engine.emitAudit(ctx, auditEventVerificationRejected, false, email, step, err, nil)
		return nil, err
	}

	resp := v.(*api.VerifyResponse)
	stored := false
	if resp.AccessToken != "" && resp.User != nil {
		if perr := r.engine.persistCredential(ctx, resp.AccessToken, resp.User); perr != nil {
			r.engine.metricInc(MetricVerificationFailure)
			r.engine.emitAudit(ctx, auditEventVerificationRejected, false, email, step, perr, nil)
			return nil, perr
		}
		stored = true
	}

	r.mu.Lock()
	r.done = true
	r.mu.Unlock()

	r.engine.metricInc(MetricVerificationSuccess)
	r.engine.emitAudit(ctx, auditEventVerificationConfirm, true, email, step, nil, nil)

	return &VerificationResult{
		Message:       resp.Message,
		SessionStored: stored,
		RedirectPath:  r.engine.config.Verification.LoginPath,
		RedirectDelay: r.engine.config.Verification.RedirectDelay,
	}, nil
}

// ResendCode asks the backend to email a fresh code for the pending
// address. There is no client-side limit; the backend throttles.
func (r *Registration) ResendCode(ctx context.Context) error {
	r.mu.Lock()

	if r.done {
		r.mu.Unlock()
		return ErrRegistrationComplete
	}
	if r.pendingEmail == "" {
		r.mu.Unlock()
		return ErrNoPendingVerification
	}
	email := r.pendingEmail
	step := r.plan[len(r.plan)-1].Number
	r.mu.Unlock()

	v, err, _ := r.submits.Do("resend", func() (any, error) {
		return r.engine.api.ResendVerification(ctx, email)
	})
	if err != nil {
		r.engine.emitAudit(ctx, auditEventVerificationResend, false, email, step, err, nil)
		return err
	}

	r.mu.Lock()
	r.notice = v.(*api.MessageResponse).Message
	r.mu.Unlock()

	r.engine.metricInc(MetricVerificationResend)
	r.engine.emitAudit(ctx, auditEventVerificationResend, true, email, step, nil, nil)
	return nil
}

// buildRegisterRequest maps the form onto the wire payload. Role-specific
// optionals that were never collected marshal as explicit nulls.
func buildRegisterRequest(form *RegistrationForm) api.RegisterRequest {
	return api.RegisterRequest{
		Email:           form.Email,
		Username:        form.Username,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Role:            string(form.Role),
		UserType:        string(form.UserType),
		Phone:           form.Phone,
		Address:         form.Address,
		City:            form.City,
		State:           form.State,
		Country:         form.Country,
		FarmName:        optionalString(form.FarmName),
		FarmSize:        optionalString(form.FarmSize),
		FarmType:        optionalString(form.FarmType),
		YearsFarming:    optionalInt(form.YearsFarming),
		BusinessName:    optionalString(form.BusinessName),
		BusinessType:    optionalString(form.BusinessType),
		BusinessRegNum:  optionalString(form.BusinessRegNum),
		TermsAgreed:     form.TermsAgreed,
	}
}

func optionalString(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func optionalInt(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
