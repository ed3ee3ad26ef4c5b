// Package capture grabs screen regions as base64-encoded PNG images.
package capture

import (
	"fmt"

	"github.com/frudas24/deskpilot/internal/geom"
)

// DefaultToolPath is the macOS screenshot utility.
const DefaultToolPath = "screencapture"

// BuildRegionArgs returns screencapture args for a silent region grab.
func BuildRegionArgs(area geom.BoardArea, outPath string) []string {
	region := fmt.Sprintf("%d,%d,%d,%d", area.TopLeft.X, area.TopLeft.Y, area.Width(), area.Height())
	return []string{"-x", "-R", region, outPath}
}

// BuildFullArgs returns screencapture args for a silent full-screen grab.
func BuildFullArgs(outPath string) []string {
	return []string{"-x", outPath}
}
