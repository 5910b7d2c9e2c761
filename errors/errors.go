package errors

import (
	"fmt"
)

// InvariantError reports a violated construction contract, such as a query
// built without its required identifying argument. Constructors use it as a
// panic value: a contract violation aborts the calling code path rather than
// being returned for handling.
type InvariantError struct {
	Message string

	// Cause is the underlying error, if the violation wrapped one.
	Cause error
}

// Invariantf formats an invariant violation. Like fmt.Errorf, it wraps the
// last argument if it is an error, keeping it visible to errors.Is and
// errors.As.
func Invariantf(format string, a ...interface{}) *InvariantError {
	var cause error
	if n := len(a); n > 0 {
		if v, ok := a[n-1].(error); ok {
			cause = v
		}
	}

	return &InvariantError{
		Message: fmt.Sprintf(format, a...),
		Cause:   cause,
	}
}

func (err *InvariantError) Error() string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("relayql: %s", err.Message)
}

func (err *InvariantError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Cause
}

var _ error = &InvariantError{}
