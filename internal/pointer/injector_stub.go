//go:build !windows && !(cgo && (darwin || linux))

// Package pointer drives the system pointer through a platform input handle.
package pointer

import "errors"

// ErrUnsupported indicates pointer injection is not available in this build.
var ErrUnsupported = errors.New("pointer injection requires windows or a cgo build on darwin/linux")

// NewInjector reports that no input handle can be acquired.
func NewInjector() (Injector, error) {
	return nil, ErrUnsupported
}
