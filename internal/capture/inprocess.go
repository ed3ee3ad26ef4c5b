// Package capture grabs screen regions as base64-encoded PNG images.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/kbinani/screenshot"

	"github.com/frudas24/deskpilot/internal/geom"
	"github.com/frudas24/deskpilot/internal/monitor"
)

// InProcessBackend captures with the platform screen APIs instead of a subprocess.
type InProcessBackend struct {
	// Display is the 1-based display used for full-screen grabs; 0 selects the primary.
	Display int
	// grab is swapped in tests.
	grab func(r image.Rectangle) (*image.RGBA, error)
	// displays is swapped in tests.
	displays func() ([]monitor.Display, error)
}

// NewInProcessBackend returns a backend for the given display index.
func NewInProcessBackend(display int) *InProcessBackend {
	return &InProcessBackend{
		Display:  display,
		grab:     screenshot.CaptureRect,
		displays: monitor.ListDisplays,
	}
}

// Capture writes a PNG of area (or the selected display when area is nil) to outPath.
func (b *InProcessBackend) Capture(area *geom.BoardArea, outPath string) error {
	var rect image.Rectangle
	if area != nil {
		rect = area.Rect()
	} else {
		d, err := b.display()
		if err != nil {
			return err
		}
		rect = d.Area().Rect()
	}

	img, err := b.grab(rect)
	if err != nil {
		return fmt.Errorf("grab %v: %w", rect, err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// Name identifies the backend in logs.
func (b *InProcessBackend) Name() string {
	return "inprocess"
}

// display resolves the configured display.
func (b *InProcessBackend) display() (monitor.Display, error) {
	list, err := b.displays()
	if err != nil {
		return monitor.Display{}, err
	}
	if b.Display > 0 {
		d, ok := monitor.GetByIndex(list, b.Display)
		if !ok {
			return monitor.Display{}, fmt.Errorf("display %d not found", b.Display)
		}
		return d, nil
	}
	d, ok := monitor.Primary(list)
	if !ok {
		return monitor.Display{}, monitor.ErrNoDisplays
	}
	return d, nil
}
