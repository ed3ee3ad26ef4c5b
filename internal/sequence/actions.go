// Package sequence composes pointer primitives into timed board gestures.
package sequence

import (
	"time"

	"github.com/frudas24/deskpilot/internal/timing"
)

// ActionType identifies the kind of step in a gesture plan.
type ActionType string

const (
	// ActMove moves the mouse cursor.
	ActMove ActionType = "move"
	// ActLeftDown presses the left mouse button.
	ActLeftDown ActionType = "left_down"
	// ActLeftUp releases the left mouse button.
	ActLeftUp ActionType = "left_up"
	// ActClick clicks the left button at the current position.
	ActClick ActionType = "click"
	// ActWait pauses for a settle interval.
	ActWait ActionType = "wait"
)

// Action describes one step of a gesture plan.
type Action struct {
	Type ActionType
	X    int
	Y    int
	Step timing.Step
	Wait time.Duration
}

// wait builds a settle step from the profile.
func wait(p timing.Profile, step timing.Step) Action {
	return Action{Type: ActWait, Step: step, Wait: p.Get(step)}
}
