package topo

import (
	"fmt"
	"math"
)

// Shape is a 2D figure that can be rasterized onto a Canvas. It is a
// closed set of variants: Polygon, Circle, AnnulusCircle, AnnulusSector,
// and Hybrid. Shapes are immutable value objects; the engine never
// mutates a shape, and all coordinates are model-space.
type Shape interface {
	isShape()
}

// Polygon is an ordered sequence of vertices joined by straight edges.
// When Closed is set, an edge from the last vertex back to the first is
// rasterized as well.
type Polygon struct {
	Points []Point
	Closed bool
}

func (Polygon) isShape() {}

// Circle is a full circle outline.
type Circle struct {
	Center Point
	Radius float64
}

func (Circle) isShape() {}

// AnnulusCircle is two concentric circle outlines. An Inner radius of
// zero degenerates to a single circle.
type AnnulusCircle struct {
	Center Point
	Inner  float64
	Outer  float64
}

func (AnnulusCircle) isShape() {}

// AnnulusSector is a ring segment: two concentric arcs spanning Sweep
// degrees from Start, joined by two radial edges. An Inner radius of
// zero collapses the inner arc onto the center point.
type AnnulusSector struct {
	Center Point
	Inner  float64
	Outer  float64
	Start  float64 // degrees
	Sweep  float64 // degrees, positive counter-clockwise
}

func (AnnulusSector) isShape() {}

// Hybrid is an ordered sequence of line and arc edges rasterized
// verbatim.
type Hybrid struct {
	Edges []Edge
}

func (Hybrid) isShape() {}

// Edge is a single segment of a Hybrid shape: a Line or an Arc.
type Edge interface {
	isEdge()
}

// Line is a straight edge between two points.
type Line struct {
	From, To Point
}

func (Line) isEdge() {}

// Arc is a circular arc between two points, described by the signed
// sweep angle it subtends. Positive sweep bows counter-clockwise. The
// chord/sweep construction places the arc center perpendicular to the
// chord, which is only well defined for sweep magnitudes below 180
// degrees; composite shapes decompose larger arcs accordingly, as
// Circle does with four 90 degree pieces.
type Arc struct {
	From, To Point
	Sweep    float64 // degrees
}

func (Arc) isEdge() {}

// Draw rasterizes a shape onto the canvas, tagging every produced cell
// with the material. Composite shapes decompose into line and arc
// primitives; unknown variants and degenerate geometry fail with
// ErrInvalidShape. Re-drawing the same shape is idempotent, so a failed
// composite never leaves the canvas in a state a retry cannot repair.
func (c *Canvas) Draw(s Shape, m Material) error {
	switch v := s.(type) {
	case Polygon:
		return c.drawPolygon(v, m)
	case Circle:
		return c.drawCircle(v.Center, v.Radius, m)
	case AnnulusCircle:
		if v.Outer <= 0 {
			return fmt.Errorf("%w: annulus outer radius %v", ErrInvalidShape, v.Outer)
		}
		if v.Inner > 0 {
			if err := c.drawCircle(v.Center, v.Inner, m); err != nil {
				return err
			}
		}
		return c.drawCircle(v.Center, v.Outer, m)
	case AnnulusSector:
		return c.drawSector(v, m)
	case Hybrid:
		return c.drawEdges(v.Edges, m)
	default:
		return fmt.Errorf("%w: unknown shape variant %T", ErrInvalidShape, s)
	}
}

func (c *Canvas) drawPolygon(p Polygon, m Material) error {
	if len(p.Points) < 2 {
		return fmt.Errorf("%w: polygon needs at least 2 points, got %d", ErrInvalidShape, len(p.Points))
	}
	for i := 1; i < len(p.Points); i++ {
		c.drawLine(p.Points[i-1], p.Points[i], m)
	}
	if p.Closed {
		c.drawLine(p.Points[len(p.Points)-1], p.Points[0], m)
	}
	return nil
}

func (c *Canvas) drawCircle(center Point, r float64, m Material) error {
	if r <= 0 {
		return fmt.Errorf("%w: circle radius %v", ErrInvalidShape, r)
	}
	// Four 90 degree arcs through the cardinal points.
	return c.drawEdges(arcEdges(center, r, 0, 360), m)
}

// arcEdges decomposes a circular arc around center into Arc edges of at
// most 90 degrees each, which keeps every piece inside the range the
// chord/sweep construction handles.
func arcEdges(center Point, r, startDeg, sweepDeg float64) []Edge {
	n := int(math.Ceil(math.Abs(sweepDeg) / 90))
	if n < 1 {
		n = 1
	}
	step := sweepDeg / float64(n)

	at := func(deg float64) Point {
		a := deg * math.Pi / 180
		return center.Add(Pt(r*math.Cos(a), r*math.Sin(a)))
	}
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Arc{
			From:  at(startDeg + step*float64(i)),
			To:    at(startDeg + step*float64(i+1)),
			Sweep: step,
		})
	}
	return edges
}

func (c *Canvas) drawSector(s AnnulusSector, m Material) error {
	if s.Outer <= 0 || s.Inner < 0 || s.Inner >= s.Outer {
		return fmt.Errorf("%w: annulus sector radii inner=%v outer=%v", ErrInvalidShape, s.Inner, s.Outer)
	}
	if s.Sweep == 0 {
		return fmt.Errorf("%w: annulus sector with zero sweep", ErrInvalidShape)
	}
	a0 := s.Start * math.Pi / 180
	a1 := (s.Start + s.Sweep) * math.Pi / 180
	at := func(r, a float64) Point {
		return s.Center.Add(Pt(r*math.Cos(a), r*math.Sin(a)))
	}
	in0, in1 := at(s.Inner, a0), at(s.Inner, a1)
	out0, out1 := at(s.Outer, a0), at(s.Outer, a1)

	// The arcs go through arcEdges so sweeps above 90 degrees stay
	// within the range the chord/sweep construction handles.
	edges := []Edge{Line{From: in0, To: out0}}
	edges = append(edges, arcEdges(s.Center, s.Outer, s.Start, s.Sweep)...)
	edges = append(edges, Line{From: out1, To: in1})
	if s.Inner > 0 {
		edges = append(edges, arcEdges(s.Center, s.Inner, s.Start+s.Sweep, -s.Sweep)...)
	}
	return c.drawEdges(edges, m)
}

func (c *Canvas) drawEdges(edges []Edge, m Material) error {
	for _, e := range edges {
		switch v := e.(type) {
		case Line:
			c.drawLine(v.From, v.To, m)
		case Arc:
			if err := c.drawArc(v.From, v.To, v.Sweep, m); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unknown edge variant %T", ErrInvalidShape, e)
		}
	}
	return nil
}
