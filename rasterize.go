package topo

import (
	"fmt"
	"math"
)

// defaultArcSegments is the polyline resolution used for arc
// rasterization unless overridden with WithArcSegments.
const defaultArcSegments = 500

// drawLine rasterizes the straight segment between two model-space
// points using integer Bresenham stepping over grid cells. Both
// endpoint cells are always written, for every slope octant.
func (c *Canvas) drawLine(p0, p1 Point, m Material) {
	a := c.Locate(p0)
	b := c.Locate(p1)

	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	for {
		c.write(a, m)
		if a == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.X += sx
		}
		if e2 <= dx {
			err += dx
			a.Y += sy
		}
	}
}

// drawArc rasterizes a circular arc between two model-space points as a
// polyline of c.arcSegments steps. The arc is reconstructed from its
// chord and signed sweep angle in degrees: positive sweep places the
// center so the arc bows counter-clockwise from the chord. A zero sweep
// produces no cells; a zero-length chord with a nonzero sweep is
// degenerate and fails with ErrInvalidShape.
func (c *Canvas) drawArc(p0, p1 Point, sweepDeg float64, m Material) error {
	if sweepDeg == 0 {
		return nil
	}
	chord := p0.Distance(p1)
	if chord == 0 {
		return fmt.Errorf("%w: arc with zero-length chord at (%v, %v)", ErrInvalidShape, p0.X, p0.Y)
	}

	sweep := sweepDeg * math.Pi / 180
	r := chord / (2 * math.Sin(math.Abs(sweep)/2))

	// Perpendicular offset from the chord midpoint to the arc center.
	h2 := r*r - (chord/2)*(chord/2)
	if h2 < 0 {
		h2 = 0 // rounding noise near sweep == 180
	}
	h := math.Sqrt(h2)

	dir := p1.Sub(p0).Div(chord)
	normal := Pt(-dir.Y, dir.X)
	if sweep < 0 {
		normal = normal.Mul(-1)
	}
	center := p0.Lerp(p1, 0.5).Add(normal.Mul(h))

	start := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	n := c.arcSegments
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		c.Set(center.Add(Pt(r*math.Cos(a), r*math.Sin(a))), m)
	}
	return nil
}

// write stores a material by grid address, skipping cells outside the
// grid with a warning, matching the Set policy.
func (c *Canvas) write(cl Cell, m Material) {
	if !c.Contains(cl) {
		Logger().Warn("topo: skipped out-of-bounds write",
			"cell_x", cl.X, "cell_y", cl.Y, "material", int(m))
		return
	}
	c.setCell(cl, m)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
