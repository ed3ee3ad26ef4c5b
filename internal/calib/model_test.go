package calib

import (
	"testing"

	"github.com/frudas24/deskpilot/internal/geom"
)

// TestNormalizeRect_Positive verifies Normalize keeps positive sizes intact.
func TestNormalizeRect_Positive(t *testing.T) {
	in := Rect{X: 1, Y: 2, W: 3, H: 4}
	out := Normalize(in)
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

// TestNormalizeRect_NegativeDims verifies Normalize flips negative sizes.
func TestNormalizeRect_NegativeDims(t *testing.T) {
	in := Rect{X: 10, Y: 20, W: -5, H: -6}
	out := Normalize(in)
	want := Rect{X: 5, Y: 14, W: 5, H: 6}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
}

// TestRectArea verifies a drawn rectangle maps onto board corners.
func TestRectArea(t *testing.T) {
	got := Rect{X: 900, Y: 900, W: -800, H: -800}.Area()
	want := geom.BoardArea{TopLeft: geom.Position{X: 100, Y: 100}, BottomRight: geom.Position{X: 900, Y: 900}}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// TestHasBoard verifies only a positive-size board counts as calibrated.
func TestHasBoard(t *testing.T) {
	if (Calib{}).HasBoard() {
		t.Fatalf("expected zero calib to have no board")
	}
	c := Calib{Board: Rect{X: 0, Y: 0, W: 8, H: 8}.Area()}
	if !c.HasBoard() {
		t.Fatalf("expected board to be usable")
	}
}
