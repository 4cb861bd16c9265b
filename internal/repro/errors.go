package repro

import (
	"errors"
	"fmt"
)

var (
	errProvision = errors.New("table provisioning failed")
	errFixture   = errors.New("fixture could not be loaded")
	errLoad      = errors.New("bulk load failed")
	errRead      = errors.New("read failed")
)

// Error tags the failure of one repro step with the step's sentinel.
type Error struct {
	err     error  // the step sentinel
	context string // what the step was doing
	cause   error  // the underlying failure, may be nil
}

func (e *Error) Error() string {
	msg := e.err.Error()
	if e.context != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.context)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.cause}
}

func newError(sentinel, cause error, format string, args ...any) *Error {
	return &Error{
		err:     sentinel,
		context: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}
