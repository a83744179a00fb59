package domain

import "errors"

// Backend and panel errors
var (
	// Identity service errors
	ErrProjectNotFound = errors.New("project not found")
	ErrDomainNotFound  = errors.New("domain not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrRoleNotFound    = errors.New("role not found")
	ErrDefaultRole     = errors.New("default role could not be resolved")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidSession  = errors.New("invalid session")

	// Quota errors
	ErrQuotaBelowUsage = errors.New("quota limit below current usage")

	// General errors
	ErrServiceUnavailable = errors.New("backend service unavailable")
	ErrConflict           = errors.New("resource conflict")
)

// BackendError wraps a failure from one of the remote services with the
// service name, so views can report which backend misbehaved.
type BackendError struct {
	Service string
	Op      string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return e.Service + ": " + e.Op + ": " + e.Cause.Error()
	}
	return e.Service + ": " + e.Op
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// NewBackendError creates a backend error for one remote call.
func NewBackendError(service, op string, cause error) *BackendError {
	return &BackendError{Service: service, Op: op, Cause: cause}
}
