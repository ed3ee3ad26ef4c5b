// Package geom describes screen coordinates and board rectangles.
package geom

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidArea indicates a board area with non-positive width or height.
var ErrInvalidArea = errors.New("invalid board area dimensions")

// Position is an absolute screen coordinate with a top-left origin.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// MoveCommand holds the endpoints of a piece move.
type MoveCommand struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Midpoint returns the waypoint halfway between From and To using truncating division.
func (m MoveCommand) Midpoint() Position {
	return Position{
		X: (m.From.X + m.To.X) / 2,
		Y: (m.From.Y + m.To.Y) / 2,
	}
}

// BoardArea is an axis-aligned rectangle given by two corners.
type BoardArea struct {
	TopLeft     Position `json:"topLeft"`
	BottomRight Position `json:"bottomRight"`
}

// Width returns the derived horizontal extent.
func (a BoardArea) Width() int {
	return a.BottomRight.X - a.TopLeft.X
}

// Height returns the derived vertical extent.
func (a BoardArea) Height() int {
	return a.BottomRight.Y - a.TopLeft.Y
}

// Validate returns ErrInvalidArea unless both derived dimensions are positive.
func (a BoardArea) Validate() error {
	if a.Width() <= 0 || a.Height() <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidArea, a.Width(), a.Height())
	}
	return nil
}

// IsZero reports whether the area was never set.
func (a BoardArea) IsZero() bool {
	return a == BoardArea{}
}

// Rect converts the area to an image rectangle.
func (a BoardArea) Rect() image.Rectangle {
	return image.Rect(a.TopLeft.X, a.TopLeft.Y, a.BottomRight.X, a.BottomRight.Y)
}

// AreaFromRect builds a board area from an image rectangle.
func AreaFromRect(r image.Rectangle) BoardArea {
	return BoardArea{
		TopLeft:     Position{X: r.Min.X, Y: r.Min.Y},
		BottomRight: Position{X: r.Max.X, Y: r.Max.Y},
	}
}

// Contains reports whether a point is inside the area (edges inclusive).
func (a BoardArea) Contains(p Position) bool {
	if a.Validate() != nil {
		return false
	}
	return p.X >= a.TopLeft.X && p.X <= a.BottomRight.X && p.Y >= a.TopLeft.Y && p.Y <= a.BottomRight.Y
}
