// Package monitor describes display geometry and enumeration.
package monitor

import (
	"errors"

	"github.com/kbinani/screenshot"
)

// ErrNoDisplays indicates the platform reported no active displays.
var ErrNoDisplays = errors.New("no active displays detected")

// ListDisplays returns the active displays. Index 1 is the primary display.
func ListDisplays() ([]Display, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, ErrNoDisplays
	}
	list := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		list = append(list, Display{
			Index:   i + 1,
			X:       b.Min.X,
			Y:       b.Min.Y,
			W:       b.Dx(),
			H:       b.Dy(),
			Primary: i == 0,
		})
	}
	return list, nil
}
