package topo

// Option tunes a boundary extraction. Use functional options to override
// the practical defaults.
//
// Example:
//
//	// Default tuning
//	loops, err := canvas.Extract(iron)
//
//	// Coarser output for a dense grid
//	loops, err := canvas.Extract(iron,
//	    topo.WithInfluence(20),
//	    topo.WithMinDist(4),
//	)
type Option func(*extractOptions)

// extractOptions holds the tunables of one extraction run.
type extractOptions struct {
	influence float64
	minDist   float64
	window    int
}

// defaultExtractOptions returns the default extraction tuning.
func defaultExtractOptions() extractOptions {
	p := DefaultParams()
	return extractOptions{
		influence: p.InfluenceRadius,
		minDist:   p.MinDist,
		window:    p.Window,
	}
}

// WithInfluence sets the square neighborhood radius, in grid units, used
// to cluster boundary points into islands and to pick the next point
// when ordering a path.
func WithInfluence(radius float64) Option {
	return func(o *extractOptions) {
		o.influence = radius
	}
}

// WithMinDist sets the minimum spacing, in grid units, between
// consecutive points kept by the simplification pass. Zero keeps every
// traced point.
func WithMinDist(d float64) Option {
	return func(o *extractOptions) {
		o.minDist = d
	}
}

// WithWindow sets the moving-average window of the smoothing pass.
// Values below 2 disable smoothing.
func WithWindow(w int) Option {
	return func(o *extractOptions) {
		o.window = w
	}
}

// WithParams applies a whole Params set at once, typically one loaded
// from a YAML file. Individual options given after it still win.
func WithParams(p Params) Option {
	return func(o *extractOptions) {
		o.influence = p.InfluenceRadius
		o.minDist = p.MinDist
		o.window = p.Window
	}
}
