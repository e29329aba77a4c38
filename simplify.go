package topo

// Simplify removes near-duplicate points from an ordered path. The first
// point is always kept; every following point is kept only if its
// Euclidean distance from the last kept point is at least minDist.
// Simplify(path, 0) returns a copy of the path unchanged, and the result
// is never longer than the input.
func Simplify(path []Point, minDist float64) []Point {
	if len(path) == 0 {
		return nil
	}
	out := make([]Point, 0, len(path))
	out = append(out, path[0])
	last := path[0]
	for _, p := range path[1:] {
		if last.Distance(p) < minDist {
			continue
		}
		out = append(out, p)
		last = p
	}
	return out
}

// Smooth applies a centered moving-average pass to an ordered path: each
// point is replaced by the arithmetic mean of the window around it,
// clamped to the path bounds. The output always has the same length as
// the input; a window below 2 or an empty path passes through unchanged.
func Smooth(path []Point, window int) []Point {
	if window < 2 || len(path) == 0 {
		return path
	}
	half := window / 2
	out := make([]Point, len(path))
	for i := range path {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(path)-1 {
			hi = len(path) - 1
		}
		var sum Point
		for _, p := range path[lo : hi+1] {
			sum = sum.Add(p)
		}
		out[i] = sum.Div(float64(hi - lo + 1))
	}
	return out
}
