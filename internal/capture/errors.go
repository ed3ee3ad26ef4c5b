// Package capture grabs screen regions as base64-encoded PNG images.
package capture

import "fmt"

// Kind classifies a capture failure.
type Kind string

const (
	// InvalidArea means the requested region has non-positive width or height.
	InvalidArea Kind = "InvalidArea"
	// ToolFailed means the screenshot process could not start or exited non-zero.
	ToolFailed Kind = "ToolFailed"
	// ReadFailed means the screenshot file could not be read back.
	ReadFailed Kind = "ReadFailed"
)

// Error lets a Kind be used as an errors.Is target.
func (k Kind) Error() string {
	return string(k)
}

// CaptureError reports a failed capture.
type CaptureError struct {
	Kind Kind
	Err  error
}

// Error returns a descriptive message.
func (e *CaptureError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("capture: %s", e.Kind)
	}
	return fmt.Sprintf("capture: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CaptureError) Unwrap() error {
	return e.Err
}

// Is matches a Kind target.
func (e *CaptureError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}
