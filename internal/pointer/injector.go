// Package pointer drives the system pointer through a platform input handle.
package pointer

import (
	"fmt"
	"strings"
)

// Button identifies a mouse button.
type Button string

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = "left"
	// ButtonRight is the secondary button.
	ButtonRight Button = "right"
	// ButtonMiddle is the wheel button.
	ButtonMiddle Button = "middle"
)

// ParseButton maps a user-supplied name to a Button, defaulting to left.
func ParseButton(name string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle", "center":
		return ButtonMiddle, nil
	default:
		return "", fmt.Errorf("unknown mouse button %q", name)
	}
}

// Injector is a platform input handle acquired for a single driver call.
type Injector interface {
	MoveAbs(x, y int) error
	Down(b Button) error
	Up(b Button) error
	Click(b Button) error
	Location() (x, y int, err error)
}

// Opener acquires a fresh platform input handle.
type Opener func() (Injector, error)

// scaleAbsolute maps a screen coordinate inside the virtual desktop
// (origin vx,vy and size vw x vh) onto the 0..65535 absolute input range.
func scaleAbsolute(x, y, vx, vy, vw, vh int) (int32, int32) {
	if vw <= 1 {
		vw = 2
	}
	if vh <= 1 {
		vh = 2
	}
	dx := (int64(x) - int64(vx)) * 65535 / int64(vw-1)
	dy := (int64(y) - int64(vy)) * 65535 / int64(vh-1)
	return int32(dx), int32(dy)
}
