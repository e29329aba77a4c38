package topo

// FloodFill assigns material m to every cell reachable from the seed
// without crossing a cell of a different material than the seed's. The
// fill is 4-connected and runs on an explicit stack, so its memory use
// is bounded by the canvas size rather than call depth.
//
// Filling a cell that already holds m is a no-op, which makes the
// operation idempotent. The seed must lie strictly inside a region
// bounded by rasterized cells of a different material; the fill does not
// validate enclosure and leaks through any gap in the boundary, so
// making boundaries gap-free (see WithArcSegments) is the caller's
// responsibility.
//
// Returns ErrOutOfBounds if the seed falls outside the grid.
func (c *Canvas) FloodFill(seed Point, m Material) error {
	start := c.Locate(seed)
	if !c.Contains(start) {
		return ErrOutOfBounds
	}

	orig := c.At(start)
	if orig == m {
		return nil
	}

	stack := []Cell{start}
	for len(stack) > 0 {
		cl := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !c.Contains(cl) || c.At(cl) != orig {
			continue
		}
		c.setCell(cl, m)

		stack = append(stack,
			Cell{X: cl.X + 1, Y: cl.Y},
			Cell{X: cl.X - 1, Y: cl.Y},
			Cell{X: cl.X, Y: cl.Y + 1},
			Cell{X: cl.X, Y: cl.Y - 1},
		)
	}
	return nil
}
