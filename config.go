package topo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Params bundles the numeric tunables of the whole pipeline so they can
// be kept in a configuration file next to the model description instead
// of being scattered across call sites. Zero values in a file fall back
// to nothing: load starts from DefaultParams, so omitted keys keep their
// defaults.
type Params struct {
	// Scale is the grid refinement factor passed to NewCanvas.
	Scale int `yaml:"scale"`
	// InfluenceRadius drives island clustering and path ordering, in
	// grid units.
	InfluenceRadius float64 `yaml:"influence_radius"`
	// MinDist is the simplification spacing, in grid units.
	MinDist float64 `yaml:"min_dist"`
	// Window is the moving-average smoothing window.
	Window int `yaml:"window"`
	// Threshold is the shared-border removal distance for stitching,
	// in grid units.
	Threshold float64 `yaml:"threshold"`
	// FarRadius is the ordering radius used to bridge stitched paths,
	// in grid units.
	FarRadius float64 `yaml:"far_radius"`
	// ArcSegments is the polyline resolution of arc rasterization.
	ArcSegments int `yaml:"arc_segments"`
}

// DefaultParams returns the practical defaults the pipeline was tuned
// with: moderate clustering radius, light simplification, a small
// smoothing window.
func DefaultParams() Params {
	return Params{
		Scale:           10,
		InfluenceRadius: 15,
		MinDist:         2,
		Window:          3,
		Threshold:       3,
		FarRadius:       45,
		ArcSegments:     defaultArcSegments,
	}
}

// LoadParams reads YAML from r on top of DefaultParams. Unknown keys are
// rejected so typos in a tuning file surface instead of silently keeping
// a default.
func LoadParams(r io.Reader) (Params, error) {
	p := DefaultParams()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return Params{}, fmt.Errorf("topo: parsing params: %w", err)
	}
	return p, nil
}

// LoadParamsFile reads a YAML tuning file on top of DefaultParams.
func LoadParamsFile(path string) (Params, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Params{}, fmt.Errorf("topo: opening params file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadParams(f)
}
