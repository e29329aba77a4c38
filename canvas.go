package topo

import "fmt"

// Canvas is a rectangular grid of material ids onto which shapes are
// rasterized. The grid is scale times finer than the logical size given
// at construction, and a shift offset centers it so that negative
// model-space coordinates map to valid cells.
//
// Model-space coordinates convert to grid cells by rounding to the
// nearest grid coordinate: grid = round(model*scale) + shift. The same
// rule applies everywhere a model coordinate becomes a cell index.
//
// A Canvas exclusively owns its grid buffer and is not safe for
// concurrent mutation; callers needing parallelism should partition work
// across canvases rather than share one.
type Canvas struct {
	width  int // grid width in cells
	height int // grid height in cells
	scale  int
	shift  Cell
	cells  []Material

	// Material registry, first-use order. names[0] is the ambient.
	names []string
	index map[string]Material

	arcSegments int
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	shift       *Cell
	arcSegments int
}

// WithShift overrides the centering offset applied when converting
// model-space coordinates to grid cells. The default places the model
// origin at the center of the grid; WithShift(0, 0) puts it at the
// top-left corner instead, so only non-negative model coordinates are
// addressable.
func WithShift(x, y int) CanvasOption {
	return func(o *canvasOptions) {
		o.shift = &Cell{X: x, Y: y}
	}
}

// WithArcSegments sets the number of polyline segments an arc is
// decomposed into when rasterized. The default is 500; higher values
// cost time, lower values leave gaps on large arcs that flood fill can
// leak through.
func WithArcSegments(n int) CanvasOption {
	return func(o *canvasOptions) {
		if n > 0 {
			o.arcSegments = n
		}
	}
}

// NewCanvas creates a canvas covering a logical width × height area at
// the given scale, so the grid holds width*scale × height*scale cells.
// Every cell starts as the ambient material, which is registered with
// id 0. Returns an error if width, height, or scale is not positive.
func NewCanvas(width, height int, ambient string, scale int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("topo: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("topo: invalid scale %d (must be > 0)", scale)
	}

	options := canvasOptions{arcSegments: defaultArcSegments}
	for _, opt := range opts {
		opt(&options)
	}

	gw, gh := width*scale, height*scale
	shift := Cell{X: gw / 2, Y: gh / 2}
	if options.shift != nil {
		shift = *options.shift
	}

	c := &Canvas{
		width:       gw,
		height:      gh,
		scale:       scale,
		shift:       shift,
		cells:       make([]Material, gw*gh),
		names:       []string{ambient},
		index:       map[string]Material{ambient: Ambient},
		arcSegments: options.arcSegments,
	}
	return c, nil
}

// Width returns the grid width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the grid height in cells.
func (c *Canvas) Height() int { return c.height }

// Scale returns the model-to-grid scale factor.
func (c *Canvas) Scale() int { return c.scale }

// Shift returns the centering offset added after scaling.
func (c *Canvas) Shift() Cell { return c.shift }

// Locate converts a model-space point to the grid cell it falls in,
// rounding to the nearest grid coordinate. The result may lie outside
// the grid; see Contains.
func (c *Canvas) Locate(p Point) Cell {
	return Cell{
		X: iround(p.X*float64(c.scale)) + c.shift.X,
		Y: iround(p.Y*float64(c.scale)) + c.shift.Y,
	}
}

// Model converts a grid-space point back to model space, inverting the
// scale and shift applied by Locate.
func (c *Canvas) Model(p Point) Point {
	return Point{
		X: (p.X - float64(c.shift.X)) / float64(c.scale),
		Y: (p.Y - float64(c.shift.Y)) / float64(c.scale),
	}
}

// Contains reports whether the cell lies inside the grid.
func (c *Canvas) Contains(cl Cell) bool {
	return cl.X >= 0 && cl.X < c.width && cl.Y >= 0 && cl.Y < c.height
}

// At returns the material of a cell. Cells outside the grid read as the
// ambient material.
func (c *Canvas) At(cl Cell) Material {
	if !c.Contains(cl) {
		return Ambient
	}
	return c.cells[cl.Y*c.width+cl.X]
}

// Set writes one cell after converting the model-space point to grid
// coordinates. Writes outside the grid are skipped and reported through
// the package logger at warn level; they are not an error, so composite
// shapes may be clipped against the canvas edge.
func (c *Canvas) Set(p Point, m Material) {
	cl := c.Locate(p)
	if !c.Contains(cl) {
		Logger().Warn("topo: skipped out-of-bounds write",
			"x", p.X, "y", p.Y, "cell_x", cl.X, "cell_y", cl.Y, "material", int(m))
		return
	}
	c.cells[cl.Y*c.width+cl.X] = m
}

// setCell writes one cell by grid address. Callers check bounds.
func (c *Canvas) setCell(cl Cell, m Material) {
	c.cells[cl.Y*c.width+cl.X] = m
}

// iround rounds to the nearest integer, halves away from zero.
func iround(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
