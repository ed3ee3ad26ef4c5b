// Package calib persists the on-screen board location chosen by the operator.
package calib

import "github.com/frudas24/deskpilot/internal/geom"

// Rect is a rectangle drawn by a user: an origin plus a size that may be negative
// when the drag went up or left.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Calib stores the calibrated board and the display it was picked on.
type Calib struct {
	Display int            `json:"display"`
	Board   geom.BoardArea `json:"board"`
}

// HasBoard reports whether a usable board area is stored.
func (c Calib) HasBoard() bool {
	return c.Board.Validate() == nil
}

// Normalize returns a rectangle with non-negative width/height.
func Normalize(r Rect) Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Area converts a drawn rectangle into a board area.
func (r Rect) Area() geom.BoardArea {
	r = Normalize(r)
	return geom.BoardArea{
		TopLeft:     geom.Position{X: r.X, Y: r.Y},
		BottomRight: geom.Position{X: r.X + r.W, Y: r.Y + r.H},
	}
}
