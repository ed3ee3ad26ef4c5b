// Package clipboard reads text from the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/atotto/clipboard"
)

// Kind classifies a clipboard failure.
type Kind string

const (
	// AccessDenied means the clipboard could not be opened or read.
	AccessDenied Kind = "AccessDenied"
	// NotText means the clipboard holds no text.
	NotText Kind = "NotText"
)

// Error lets a Kind be used as an errors.Is target.
func (k Kind) Error() string {
	return string(k)
}

// Error reports a failed clipboard read.
type Error struct {
	Kind Kind
	Err  error
}

// Error returns a descriptive message.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("clipboard: %s", e.Kind)
	}
	return fmt.Sprintf("clipboard: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a Kind target.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Reader snapshots the clipboard's text content.
type Reader struct {
	read func() (string, error)
}

// NewReader returns a reader backed by the system clipboard.
func NewReader() *Reader {
	return &Reader{read: systemRead}
}

// ReadText returns the current clipboard text unchanged.
func (r *Reader) ReadText() (string, error) {
	read := r.read
	if read == nil {
		read = systemRead
	}
	text, err := read()
	if err != nil {
		return "", &Error{Kind: classify(err), Err: err}
	}
	if text == "" {
		return "", &Error{Kind: NotText}
	}
	return text, nil
}

// errNoText reports a clipboard that holds no text format.
var errNoText = errors.New("clipboard holds no text")

// systemRead reads via the platform clipboard helper.
func systemRead() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("clipboard is not supported on this platform")
	}
	if !textAvailable() {
		return "", errNoText
	}
	return clipboard.ReadAll()
}

// classify separates "nothing textual to read" from real access failures.
// A zero Errno comes from a Windows API that failed without setting an error,
// and a paste helper exiting non-zero means it found no text target.
func classify(err error) Kind {
	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, errNoText):
		return NotText
	case errors.Is(err, syscall.Errno(0)):
		return NotText
	case errors.As(err, &exitErr):
		return NotText
	default:
		return AccessDenied
	}
}
