// Package sequence composes pointer primitives into timed board gestures.
package sequence

import (
	"fmt"
	"strings"
)

// GestureMode selects how a piece move is performed on the target board.
type GestureMode string

const (
	// ModeDrag presses on the source square, drags through a midpoint, and releases on the target.
	ModeDrag GestureMode = "drag"
	// ModeTwoClick clicks the source square, then the target square.
	ModeTwoClick GestureMode = "two_click"
)

// ParseMode normalizes a gesture mode name. Empty input selects drag.
func ParseMode(value string) (GestureMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "drag":
		return ModeDrag, nil
	case "two_click", "two-click", "twoclick", "click":
		return ModeTwoClick, nil
	default:
		return "", fmt.Errorf("unknown gesture mode %q", value)
	}
}
