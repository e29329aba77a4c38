package topo

import "errors"

// Sentinel errors returned by the engine. Callers test for them with
// errors.Is; wrapped errors carry the offending detail.
var (
	// ErrInvalidShape reports a shape or edge the rasterizer cannot
	// decompose, such as an arc with a zero-length chord.
	ErrInvalidShape = errors.New("topo: invalid shape")

	// ErrOutOfBounds reports a model-space coordinate that falls outside
	// the canvas grid where the operation cannot proceed without it,
	// e.g. a flood-fill seed.
	ErrOutOfBounds = errors.New("topo: point outside canvas")

	// ErrEmptyInput reports an empty point set where at least one point
	// is required, e.g. extracting boundaries of an undrawn material.
	ErrEmptyInput = errors.New("topo: empty point set")

	// ErrNoBridge reports a stitch against an empty reference path; the
	// trimmed path is returned unmodified alongside it.
	ErrNoBridge = errors.New("topo: no bridge target")
)
