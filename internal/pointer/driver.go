// Package pointer drives the system pointer through a platform input handle.
package pointer

import (
	"errors"
	"io"

	"github.com/frudas24/deskpilot/internal/geom"
)

// Driver issues pointer primitives, acquiring a fresh handle for every call.
//
// The pointer is a process-wide OS resource. Driver holds no lock; callers
// that need ordering must wait for each call to return before issuing the next.
type Driver struct {
	open Opener
}

// NewDriver returns a driver backed by the given opener.
func NewDriver(open Opener) *Driver {
	return &Driver{open: open}
}

// NewSystemDriver returns a driver backed by the platform injector.
func NewSystemDriver() *Driver {
	return NewDriver(NewInjector)
}

// MoveAbsolute places the pointer at an absolute screen coordinate.
func (d *Driver) MoveAbsolute(x, y int) error {
	return d.with("move", MoveFailed, func(inj Injector) error {
		return inj.MoveAbs(x, y)
	})
}

// Click presses and releases a button at the current location.
func (d *Driver) Click(b Button) error {
	return d.with("click", ClickFailed, func(inj Injector) error {
		return inj.Click(b)
	})
}

// Press holds a button down.
func (d *Driver) Press(b Button) error {
	return d.with("press", PressFailed, func(inj Injector) error {
		return inj.Down(b)
	})
}

// Release lets a held button go.
func (d *Driver) Release(b Button) error {
	return d.with("release", ReleaseFailed, func(inj Injector) error {
		return inj.Up(b)
	})
}

// CurrentLocation reports the pointer's absolute position.
func (d *Driver) CurrentLocation() (geom.Position, error) {
	var pos geom.Position
	err := d.with("location", QueryFailed, func(inj Injector) error {
		x, y, err := inj.Location()
		if err != nil {
			return err
		}
		pos = geom.Position{X: x, Y: y}
		return nil
	})
	return pos, err
}

// with acquires a handle, runs fn, and releases the handle when it is closable.
func (d *Driver) with(op string, kind Kind, fn func(Injector) error) error {
	if d == nil || d.open == nil {
		return newError(InitFailed, op, errors.New("no input handle opener configured"))
	}
	inj, err := d.open()
	if err != nil {
		return newError(InitFailed, op, err)
	}
	if inj == nil {
		return newError(InitFailed, op, errors.New("opener returned no input handle"))
	}
	if c, ok := inj.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	if err := fn(inj); err != nil {
		return newError(kind, op, err)
	}
	return nil
}
