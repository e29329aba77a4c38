package topo

import "math"

// Boundary collects every cell of material m that touches a cell of a
// different material (4-connected), as grid-space points in ascending
// row-major order. Neighbors beyond the grid edge are ignored, so a
// region flush against the canvas border contributes no boundary there.
//
// The row-major order is what makes the downstream clustering and
// ordering passes deterministic: all ties resolve toward the lowest grid
// index.
func (c *Canvas) Boundary(m Material) []Point {
	var points []Point
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if c.cells[y*c.width+x] != m {
				continue
			}
			if c.edgeCell(x, y, m) {
				points = append(points, Pt(float64(x), float64(y)))
			}
		}
	}
	return points
}

// edgeCell reports whether any in-grid 4-neighbor of (x, y) holds a
// material other than m.
func (c *Canvas) edgeCell(x, y int, m Material) bool {
	if x > 0 && c.cells[y*c.width+x-1] != m {
		return true
	}
	if x < c.width-1 && c.cells[y*c.width+x+1] != m {
		return true
	}
	if y > 0 && c.cells[(y-1)*c.width+x] != m {
		return true
	}
	if y < c.height-1 && c.cells[(y+1)*c.width+x] != m {
		return true
	}
	return false
}

// Trace partitions a boundary point set into connected clusters
// ("islands") and orders each one into a polyline.
//
// Clustering repeatedly seeds a new island at the remaining point with
// the most neighbors within the square influence radius, then grows it
// with a frontier stack that claims every remaining point within the
// radius of a frontier point. Ordering then walks each island greedily,
// always stepping to the Euclidean-nearest unvisited point within the
// radius; when no point is in range the walk stops, which can leave a
// disconnected remainder of the island unvisited. Finally the walk is
// closed by repeating its first point when it ended elsewhere.
//
// The greedy walk is a heuristic, not a shortest-path solver: an
// influence radius mismatched to the point density can truncate or
// self-cross a loop. Tune influence against the canvas scale; boundary
// cells are one grid unit apart, so radii around 10-20 are practical.
func Trace(points []Point, influence float64) [][]Point {
	claimed := make([]bool, len(points))
	left := len(points)

	var islands [][]Point
	for left > 0 {
		seed := densestPoint(points, claimed, influence)

		// Grow the island from the seed with an explicit frontier.
		island := []int{seed}
		claimed[seed] = true
		frontier := []int{seed}
		for len(frontier) > 0 {
			f := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			for i := range points {
				if claimed[i] || !near(points[f], points[i], influence) {
					continue
				}
				claimed[i] = true
				island = append(island, i)
				frontier = append(frontier, i)
			}
		}
		left -= len(island)

		pts := make([]Point, len(island))
		for i, idx := range island {
			pts[i] = points[idx]
		}
		ordered := orderPath(pts, influence)
		if len(ordered) > 1 && ordered[len(ordered)-1] != ordered[0] {
			ordered = append(ordered, ordered[0])
		}
		islands = append(islands, ordered)
	}

	Logger().Debug("topo: traced islands", "points", len(points), "islands", len(islands))
	return islands
}

// densestPoint returns the unclaimed point with the most unclaimed
// neighbors within the square radius, lowest index on ties.
func densestPoint(points []Point, claimed []bool, radius float64) int {
	best, bestCount := -1, -1
	for i := range points {
		if claimed[i] {
			continue
		}
		count := 0
		for j := range points {
			if j == i || claimed[j] {
				continue
			}
			if near(points[i], points[j], radius) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = i, count
		}
	}
	return best
}

// orderPath walks the points greedily from the first one, appending the
// Euclidean-nearest unvisited point within the square radius until none
// remains in range. Ties resolve toward the lowest index.
func orderPath(points []Point, radius float64) []Point {
	if len(points) == 0 {
		return nil
	}
	visited := make([]bool, len(points))
	visited[0] = true
	path := make([]Point, 0, len(points))
	path = append(path, points[0])
	last := points[0]

	for {
		best := -1
		bestDist := math.Inf(1)
		for i, p := range points {
			if visited[i] || !near(last, p, radius) {
				continue
			}
			if d := last.Distance(p); d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			return path
		}
		visited[best] = true
		last = points[best]
		path = append(path, last)
	}
}

// near is the square neighborhood test used for clustering and ordering.
func near(a, b Point, radius float64) bool {
	return math.Abs(a.X-b.X) <= radius && math.Abs(a.Y-b.Y) <= radius
}
