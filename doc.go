// Package topo reconstructs vector boundaries from rasterized 2D
// geometry.
//
// # Overview
//
// topo rasterizes abstract shapes onto an integer grid of material ids,
// flood-fills enclosed regions, traces the raster back into ordered
// boundary loops per material, smooths them, and can stitch adjacent
// loops into a single interface path. The output is plain ordered point
// lists in the caller's model coordinates, ready for any downstream
// vector consumer such as a FEM geometry importer.
//
// # Quick Start
//
//	cv, err := topo.NewCanvas(100, 100, "air", 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	iron := cv.Material("iron")
//	if err := cv.Draw(topo.Circle{Center: topo.Pt(0, 0), Radius: 20}, iron); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cv.FloodFill(topo.Pt(0, 0), iron); err != nil {
//	    log.Fatal(err)
//	}
//
//	loops, err := cv.Extract(iron)
//
// # Coordinate System
//
// Callers work in model space: real-valued coordinates in their own
// length units, origin at the canvas center by default (see WithShift).
// The grid is scale times finer than the logical canvas size, and model
// coordinates convert to cells by rounding to the nearest grid
// coordinate. Extracted loops are converted back to model space before
// they are returned.
//
// # Determinism
//
// Every pass is single-threaded, synchronous, and free of randomness.
// Boundary points are collected in row-major order and all greedy
// selections break ties toward the lowest grid index, so identical
// inputs always produce identical loops.
//
// # Limitations
//
// The island ordering and stitching walks are greedy nearest-neighbor
// heuristics, not shortest-path solvers: a poorly chosen influence
// radius can truncate or self-cross a loop. The engine does not offset
// polygons and does not guarantee non-self-intersecting output for
// adversarial inputs.
package topo
