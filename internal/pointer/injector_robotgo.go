//go:build cgo && (darwin || linux)

// Package pointer drives the system pointer through a platform input handle.
package pointer

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// robotInjector injects mouse input through robotgo's CoreGraphics/X11 bindings.
type robotInjector struct{}

// NewInjector returns a robotgo-backed input handle.
func NewInjector() (Injector, error) {
	return &robotInjector{}, nil
}

// MoveAbs moves the cursor to an absolute screen coordinate.
func (r *robotInjector) MoveAbs(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// Down presses a mouse button.
func (r *robotInjector) Down(b Button) error {
	name, err := robotButton(b)
	if err != nil {
		return err
	}
	return robotgo.Toggle(name, "down")
}

// Up releases a mouse button.
func (r *robotInjector) Up(b Button) error {
	name, err := robotButton(b)
	if err != nil {
		return err
	}
	return robotgo.Toggle(name, "up")
}

// Click presses and releases a mouse button.
func (r *robotInjector) Click(b Button) error {
	name, err := robotButton(b)
	if err != nil {
		return err
	}
	robotgo.Click(name, false)
	return nil
}

// Location returns the current cursor position.
func (r *robotInjector) Location() (int, int, error) {
	x, y := robotgo.Location()
	return x, y, nil
}

// robotButton maps a Button to robotgo's button name.
func robotButton(b Button) (string, error) {
	switch b {
	case ButtonLeft:
		return "left", nil
	case ButtonRight:
		return "right", nil
	case ButtonMiddle:
		return "center", nil
	default:
		return "", fmt.Errorf("unsupported button %q", b)
	}
}
