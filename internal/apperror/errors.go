// Package apperror defines the error kinds the HTTP layer maps to status codes.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed caller input. It maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError reports a failed call to an external API. It maps to 502.
// Detail carries the upstream's raw error text; Raw carries a decoded payload
// that was syntactically valid but unusable.
type UpstreamError struct {
	Service string
	Message string
	Status  int
	Detail  string
	Raw     any
	Err     error
}

func (e *UpstreamError) Error() string {
	msg := e.Service + ": " + e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// AsUpstream returns the UpstreamError wrapped in err, if any.
func AsUpstream(err error) (*UpstreamError, bool) {
	var u *UpstreamError
	if errors.As(err, &u) {
		return u, true
	}
	return nil, false
}
