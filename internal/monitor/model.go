// Package monitor describes display geometry and enumeration.
package monitor

import "github.com/frudas24/deskpilot/internal/geom"

// Display describes an active display and its bounds in virtual-desktop coordinates.
type Display struct {
	Index   int  `json:"index"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	W       int  `json:"w"`
	H       int  `json:"h"`
	Primary bool `json:"primary"`
}

// Area returns the display bounds as a board area.
func (d Display) Area() geom.BoardArea {
	return geom.BoardArea{
		TopLeft:     geom.Position{X: d.X, Y: d.Y},
		BottomRight: geom.Position{X: d.X + d.W, Y: d.Y + d.H},
	}
}

// GetByIndex returns the display matching the 1-based index.
func GetByIndex(list []Display, idx int) (Display, bool) {
	for _, d := range list {
		if d.Index == idx {
			return d, true
		}
	}
	return Display{}, false
}

// Primary returns the primary display, or the first one listed.
func Primary(list []Display) (Display, bool) {
	for _, d := range list {
		if d.Primary {
			return d, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return Display{}, false
}
