package topo

import (
	"errors"
	"testing"
)

// TestExtractFilledSquare runs the whole pipeline on a filled square and
// checks the returned loop is a single model-space boundary.
func TestExtractFilledSquare(t *testing.T) {
	cv := newTestCanvas(t, 10, 10, 1)
	iron := cv.Material("iron")

	square := Polygon{
		Points: []Point{Pt(2, 2), Pt(2, 7), Pt(7, 7), Pt(7, 2)},
		Closed: true,
	}
	if err := cv.Draw(square, iron); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := cv.FloodFill(Pt(4, 4), iron); err != nil {
		t.Fatalf("FloodFill: %v", err)
	}

	loops, err := cv.Extract(iron, WithInfluence(3), WithMinDist(0), WithWindow(0))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("loops = %d, want 1", len(loops))
	}

	loop := loops[0]
	if len(loop) < 4 {
		t.Fatalf("loop has %d points, want at least the square corners", len(loop))
	}
	// Model-space output: every point lies on the square's outline band.
	for _, p := range loop {
		if p.X < 1.5 || p.X > 7.5 || p.Y < 1.5 || p.Y > 7.5 {
			t.Errorf("loop point %v outside the square region", p)
		}
	}
	if loop[0] != loop[len(loop)-1] {
		t.Errorf("loop not closed: %v .. %v", loop[0], loop[len(loop)-1])
	}
}

// TestExtractModelSpaceRoundTrip verifies the output is converted back
// through the canvas scale and shift.
func TestExtractModelSpaceRoundTrip(t *testing.T) {
	cv, err := NewCanvas(20, 20, "air", 5)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	iron := cv.Material("iron")

	if err := cv.Draw(Circle{Center: Pt(0, 0), Radius: 6}, iron); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := cv.FloodFill(Pt(0, 0), iron); err != nil {
		t.Fatalf("FloodFill: %v", err)
	}

	loops, err := cv.Extract(iron, WithInfluence(4), WithMinDist(0), WithWindow(0))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("loops = %d, want 1", len(loops))
	}

	// Every boundary point of a filled disc of radius 6 sits close to
	// that radius from the center, in model units.
	for _, p := range loops[0] {
		d := p.Distance(Pt(0, 0))
		if d < 5 || d > 7 {
			t.Errorf("loop point %v at distance %v from center, want about 6", p, d)
		}
	}
}

// TestExtractUnknownMaterial verifies extracting a material with no
// boundary fails with ErrEmptyInput.
func TestExtractUnknownMaterial(t *testing.T) {
	cv := newTestCanvas(t, 10, 10, 1)
	ghost := cv.Material("ghost")

	if _, err := cv.Extract(ghost); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Extract error = %v, want ErrEmptyInput", err)
	}
}

// TestExtractWithParams verifies a loaded Params set can drive the
// extraction tunables.
func TestExtractWithParams(t *testing.T) {
	cv := newTestCanvas(t, 10, 10, 1)
	iron := cv.Material("iron")
	square := Polygon{
		Points: []Point{Pt(2, 2), Pt(2, 7), Pt(7, 7), Pt(7, 2)},
		Closed: true,
	}
	if err := cv.Draw(square, iron); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	p := DefaultParams()
	p.InfluenceRadius = 3
	p.MinDist = 0
	p.Window = 0

	loops, err := cv.Extract(iron, WithParams(p))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(loops) != 1 {
		t.Errorf("loops = %d, want 1", len(loops))
	}
}
