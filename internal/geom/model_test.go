package geom

import (
	"errors"
	"image"
	"testing"
)

// TestMidpoint_Truncates verifies the midpoint uses truncating integer division.
func TestMidpoint_Truncates(t *testing.T) {
	m := MoveCommand{From: Position{X: 1, Y: 10}, To: Position{X: 4, Y: 15}}
	got := m.Midpoint()
	want := Position{X: 2, Y: 12}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// TestMidpoint_NegativeTruncatesTowardZero verifies negative sums truncate toward zero.
func TestMidpoint_NegativeTruncatesTowardZero(t *testing.T) {
	m := MoveCommand{From: Position{X: -3, Y: 0}, To: Position{X: 0, Y: -1}}
	got := m.Midpoint()
	want := Position{X: -1, Y: 0}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// TestMidpoint_SamePoint verifies a degenerate move keeps the same point.
func TestMidpoint_SamePoint(t *testing.T) {
	p := Position{X: 500, Y: 300}
	if got := (MoveCommand{From: p, To: p}).Midpoint(); got != p {
		t.Fatalf("expected %+v, got %+v", p, got)
	}
}

// TestBoardArea_Dimensions verifies width and height are derived from the corners.
func TestBoardArea_Dimensions(t *testing.T) {
	a := BoardArea{TopLeft: Position{X: 10, Y: 20}, BottomRight: Position{X: 110, Y: 70}}
	if a.Width() != 100 || a.Height() != 50 {
		t.Fatalf("expected 100x50, got %dx%d", a.Width(), a.Height())
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("expected valid area, got %v", err)
	}
}

// TestBoardArea_InvalidDimensions verifies zero and negative sizes are rejected.
func TestBoardArea_InvalidDimensions(t *testing.T) {
	cases := []BoardArea{
		{TopLeft: Position{X: 10, Y: 10}, BottomRight: Position{X: 10, Y: 50}},
		{TopLeft: Position{X: 10, Y: 10}, BottomRight: Position{X: 50, Y: 10}},
		{TopLeft: Position{X: 50, Y: 50}, BottomRight: Position{X: 10, Y: 10}},
		{},
	}
	for _, a := range cases {
		if err := a.Validate(); !errors.Is(err, ErrInvalidArea) {
			t.Fatalf("expected ErrInvalidArea for %+v, got %v", a, err)
		}
	}
}

// TestBoardArea_RectRoundTrip verifies conversion to and from image rectangles.
func TestBoardArea_RectRoundTrip(t *testing.T) {
	r := image.Rect(5, 6, 50, 60)
	a := AreaFromRect(r)
	if a.Rect() != r {
		t.Fatalf("expected %v, got %v", r, a.Rect())
	}
}

// TestBoardArea_Contains verifies edge-inclusive containment.
func TestBoardArea_Contains(t *testing.T) {
	a := BoardArea{TopLeft: Position{X: 10, Y: 20}, BottomRight: Position{X: 15, Y: 24}}
	if !a.Contains(Position{X: 10, Y: 20}) || !a.Contains(Position{X: 15, Y: 24}) {
		t.Fatalf("expected edges to be inside")
	}
	if a.Contains(Position{X: 9, Y: 20}) || a.Contains(Position{X: 16, Y: 25}) {
		t.Fatalf("expected point to be outside")
	}
}
