// Package pointer drives the system pointer through a platform input handle.
package pointer

import "fmt"

// Kind classifies a pointer driver failure.
type Kind string

const (
	// InitFailed means the platform input handle could not be acquired.
	InitFailed Kind = "InitFailed"
	// MoveFailed means the platform rejected an absolute move.
	MoveFailed Kind = "MoveFailed"
	// ClickFailed means a press+release click was rejected.
	ClickFailed Kind = "ClickFailed"
	// PressFailed means a button press was rejected.
	PressFailed Kind = "PressFailed"
	// ReleaseFailed means a button release was rejected.
	ReleaseFailed Kind = "ReleaseFailed"
	// QueryFailed means the platform could not report the pointer location.
	QueryFailed Kind = "QueryFailed"
)

// Error lets a Kind be used as an errors.Is target.
func (k Kind) Error() string {
	return string(k)
}

// DriverError reports a failed pointer primitive.
type DriverError struct {
	Kind Kind
	Op   string
	Err  error
}

// Error returns a descriptive message.
func (e *DriverError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("pointer %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("pointer %s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the platform cause.
func (e *DriverError) Unwrap() error {
	return e.Err
}

// Is matches a Kind target.
func (e *DriverError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, op string, err error) *DriverError {
	return &DriverError{Kind: kind, Op: op, Err: err}
}
