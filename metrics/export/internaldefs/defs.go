// Package internaldefs carries the shared metric naming tables used by the
// exporters. It exists so exporter packages agree on names without
// duplicating them.
package internaldefs

import (
	onboard "github.com/farmconnect/onboard"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   onboard.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram.
type HistogramDef struct {
	ID   onboard.MetricID
	Name string
	Help string
}

// CounterDefs lists every counter in export order.
var CounterDefs = []CounterDef{
	{onboard.MetricStepAdvance, "onboard_step_advance_total", "Wizard steps passed."},
	{onboard.MetricStepBlocked, "onboard_step_blocked_total", "Step advances blocked by validation."},
	{onboard.MetricStepBack, "onboard_step_back_total", "Wizard steps navigated backwards."},
	{onboard.MetricRegistrationSubmit, "onboard_registration_submit_total", "Registrations accepted by the backend."},
	{onboard.MetricRegistrationRejected, "onboard_registration_rejected_total", "Registrations rejected by the backend."},
	{onboard.MetricRegistrationNetworkError, "onboard_registration_network_error_total", "Registration submissions lost to transport failures."},
	{onboard.MetricVerificationSuccess, "onboard_verification_success_total", "Verification codes accepted."},
	{onboard.MetricVerificationFailure, "onboard_verification_failure_total", "Verification attempts rejected or failed."},
	{onboard.MetricVerificationResend, "onboard_verification_resend_total", "Verification code resends requested."},
	{onboard.MetricLoginSuccess, "onboard_login_success_total", "Successful logins."},
	{onboard.MetricLoginFailure, "onboard_login_failure_total", "Failed logins."},
	{onboard.MetricLogout, "onboard_logout_total", "Logouts."},
	{onboard.MetricSessionPersisted, "onboard_session_persisted_total", "Credentials persisted and verified."},
	{onboard.MetricSessionPersistFailed, "onboard_session_persist_failed_total", "Credential persistence failures."},
	{onboard.MetricSessionEvicted, "onboard_session_evicted_total", "Sessions evicted after a 401 response."},
}

// HistogramDefs lists every histogram in export order.
var HistogramDefs = []HistogramDef{
	{onboard.MetricSubmitLatency, "onboard_submit_latency_ms", "Registration submit latency in milliseconds."},
}

// HistogramBounds are the upper bounds of the 8 fixed buckets, as
// Prometheus le label values.
var HistogramBounds = [8]string{"5", "10", "25", "50", "100", "250", "500", "+Inf"}

// NormalizeBuckets pads or truncates a snapshot's bucket slice to the fixed
// bucket count.
func NormalizeBuckets(in []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(in); i++ {
		out[i] = in[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form the
// Prometheus histogram type requires.
func CumulativeBuckets(in [8]uint64) [8]uint64 {
	var out [8]uint64
	var total uint64
	for i, v := range in {
		total += v
		out[i] = total
	}
	return out
}
