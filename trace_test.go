package topo

import (
	"math"
	"testing"
)

// TestBoundaryRowMajorOrder verifies boundary points come out in
// ascending row-major order, which is what keeps tracing deterministic.
func TestBoundaryRowMajorOrder(t *testing.T) {
	cv := newTestCanvas(t, 10, 10, 1)
	iron := cv.Material("iron")
	square := Polygon{
		Points: []Point{Pt(2, 2), Pt(2, 7), Pt(7, 7), Pt(7, 2)},
		Closed: true,
	}
	if err := cv.Draw(square, iron); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	points := cv.Boundary(iron)
	if len(points) == 0 {
		t.Fatal("no boundary points")
	}
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X <= prev.X) {
			t.Fatalf("points[%d]=%v not after points[%d]=%v in row-major order", i, cur, i-1, prev)
		}
	}
}

// TestTraceSquareRing verifies a single square outline traces into
// exactly one closed island covering every boundary point.
func TestTraceSquareRing(t *testing.T) {
	cv := newTestCanvas(t, 10, 10, 1)
	iron := cv.Material("iron")
	square := Polygon{
		Points: []Point{Pt(2, 2), Pt(2, 7), Pt(7, 7), Pt(7, 2)},
		Closed: true,
	}
	if err := cv.Draw(square, iron); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	points := cv.Boundary(iron)
	if want := 20; len(points) != want {
		t.Fatalf("boundary points = %d, want %d", len(points), want)
	}

	islands := Trace(points, 3)
	if len(islands) != 1 {
		t.Fatalf("islands = %d, want 1", len(islands))
	}
	loop := islands[0]
	if loop[0] != loop[len(loop)-1] {
		t.Errorf("island not closed: starts %v, ends %v", loop[0], loop[len(loop)-1])
	}
	// Every boundary point is visited once, plus the closing repeat.
	if len(loop) != len(points)+1 {
		t.Errorf("island length = %d, want %d", len(loop), len(points)+1)
	}
}

// TestTraceSeparatedClusters verifies two far-apart outlines become two
// islands.
func TestTraceSeparatedClusters(t *testing.T) {
	cv := newTestCanvas(t, 30, 30, 1)
	iron := cv.Material("iron")
	for _, sq := range [][]Point{
		{Pt(2, 2), Pt(2, 7), Pt(7, 7), Pt(7, 2)},
		{Pt(20, 20), Pt(20, 25), Pt(25, 25), Pt(25, 20)},
	} {
		if err := cv.Draw(Polygon{Points: sq, Closed: true}, iron); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}

	islands := Trace(cv.Boundary(iron), 3)
	if len(islands) != 2 {
		t.Fatalf("islands = %d, want 2", len(islands))
	}
	for i, isl := range islands {
		if isl[0] != isl[len(isl)-1] {
			t.Errorf("island %d not closed", i)
		}
	}
}

// TestTraceEmptyInput verifies tracing nothing yields nothing.
func TestTraceEmptyInput(t *testing.T) {
	if islands := Trace(nil, 5); islands != nil {
		t.Errorf("Trace(nil) = %v, want nil", islands)
	}
}

// TestTraceOverlappingCircles rasterizes two overlapping circle outlines
// with different materials and traces each: both must come back as a
// single closed island. The second circle overwrites the first where
// they cross, so the first ring carries two small gaps the influence
// radius has to bridge. A dense rounded-sample outline of grid radius r
// visits about 8r cells.
func TestTraceOverlappingCircles(t *testing.T) {
	cv, err := NewCanvas(60, 60, "air", 4)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	m1 := cv.Material("iron")
	m2 := cv.Material("copper")

	// Radius 10, centers 15 apart.
	if err := cv.Draw(Circle{Center: Pt(-7.5, 0), Radius: 10}, m1); err != nil {
		t.Fatalf("Draw circle 1: %v", err)
	}
	if err := cv.Draw(Circle{Center: Pt(7.5, 0), Radius: 10}, m2); err != nil {
		t.Fatalf("Draw circle 2: %v", err)
	}

	outline := 8 * 10.0 * float64(cv.Scale())
	for _, tc := range []struct {
		name string
		m    Material
	}{
		{"iron", m1},
		{"copper", m2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			points := cv.Boundary(tc.m)
			if got := float64(len(points)); math.Abs(got-outline) > 0.05*outline {
				t.Errorf("boundary points = %v, want %v within 5%%", got, outline)
			}

			islands := Trace(points, 5)
			if len(islands) != 1 {
				t.Fatalf("islands = %d, want 1", len(islands))
			}
			loop := islands[0]
			if loop[0] != loop[len(loop)-1] {
				t.Errorf("island not closed")
			}
			// The greedy walk may strand a few points, never more
			// than a sliver of the ring.
			if float64(len(loop)) < 0.95*float64(len(points)) {
				t.Errorf("ordered loop covers %d of %d boundary points", len(loop), len(points))
			}
		})
	}
}
