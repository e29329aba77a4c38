package topo

// Extract runs the full boundary pipeline for one material: collect its
// boundary cells, cluster and order them into islands, simplify and
// smooth each island, and convert the result back to model space. It
// returns one ordered loop per island, ready to be resubmitted as a
// Polygon to a downstream vector consumer.
//
// Returns ErrEmptyInput when the material has no boundary cells, which
// includes materials never drawn on the canvas.
func (c *Canvas) Extract(m Material, opts ...Option) ([][]Point, error) {
	o := defaultExtractOptions()
	for _, opt := range opts {
		opt(&o)
	}

	boundary := c.Boundary(m)
	if len(boundary) == 0 {
		return nil, ErrEmptyInput
	}

	islands := Trace(boundary, o.influence)
	loops := make([][]Point, 0, len(islands))
	for _, island := range islands {
		path := Simplify(island, o.minDist)
		path = Smooth(path, o.window)
		loop := make([]Point, len(path))
		for i, p := range path {
			loop[i] = c.Model(p)
		}
		loops = append(loops, loop)
	}

	Logger().Debug("topo: extracted boundaries",
		"material", int(m), "name", c.MaterialName(m),
		"boundary_cells", len(boundary), "loops", len(loops))
	return loops, nil
}
