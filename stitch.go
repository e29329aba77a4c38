package topo

import "math"

// RemoveShared drops every point of path a that lies within threshold
// Euclidean distance of any point of path b, preserving the relative
// order of the survivors. It is the first half of stitching two adjacent
// boundaries: the shared border is removed from one of them before the
// open ends are bridged onto the other.
func RemoveShared(a, b []Point, threshold float64) []Point {
	out := make([]Point, 0, len(a))
	for _, p := range a {
		if !withinAny(p, b, threshold) {
			out = append(out, p)
		}
	}
	return out
}

// withinAny reports whether p lies within threshold of any point of b.
func withinAny(p Point, b []Point, threshold float64) bool {
	for _, q := range b {
		if p.Distance(q) <= threshold {
			return true
		}
	}
	return false
}

// Stitch reconnects a trimmed path onto a neighboring boundary: the
// points of b nearest to each open end of a are injected as bridge
// points, and the combined path is re-ordered with the greedy walk used
// by Trace. The farRadius must be large enough to span the gap the
// shared-border removal left, or the walk stops short; it is typically a
// few times the influence radius used for tracing.
//
// Returns a unchanged together with ErrNoBridge when b is empty, and
// ErrEmptyInput when a is empty.
func Stitch(a, b []Point, farRadius float64) ([]Point, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return a, ErrNoBridge
	}

	head := nearestPoint(b, a[0])
	tail := nearestPoint(b, a[len(a)-1])

	combined := make([]Point, 0, len(a)+2)
	combined = append(combined, head)
	combined = append(combined, a...)
	combined = append(combined, tail)
	return orderPath(combined, farRadius), nil
}

// nearestPoint returns the point of b closest to p, lowest index on ties.
func nearestPoint(b []Point, p Point) Point {
	best := b[0]
	bestDist := math.Inf(1)
	for _, q := range b {
		if d := p.Distance(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}
