package service

// Login and registration result labels.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultConflict = "conflict"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// MetricsRecorder counts security-relevant outcomes.
type MetricsRecorder interface {
	RecordLogin(result string)
	RecordRegistration(result string)
	RecordPasswordChange(kind string)
	RecordAuthorizationDenial(operation string)
}
