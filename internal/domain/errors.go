package domain

// FailureKind classifies collaborator failures surfaced to the user. Every
// external failure is converted to one of these at the call site, logged,
// and spoken; none of them terminates the listening loop or the process.
type FailureKind string

const (
	FailureCaptureTimeout      FailureKind = "capture_timeout"
	FailureCaptureUnrecognized FailureKind = "capture_unrecognized"
	FailureLookupUnavailable   FailureKind = "lookup_unavailable"
	FailureActionDenied        FailureKind = "action_denied"
	FailureActionFailed        FailureKind = "action_failed"
	FailureResourceUnavailable FailureKind = "resource_unavailable"
)
