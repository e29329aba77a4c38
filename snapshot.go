package topo

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/colornames"
)

// snapshotPalette maps material ids to display colors, in id order with
// the ambient material first. Ids beyond the palette wrap around, which
// keeps the mapping deterministic for any number of materials.
var snapshotPalette = color.Palette{
	colornames.White, // ambient
	colornames.Black,
	colornames.Red,
	colornames.Royalblue,
	colornames.Forestgreen,
	colornames.Orange,
	colornames.Purple,
	colornames.Gold,
	colornames.Teal,
	colornames.Crimson,
	colornames.Slategray,
	colornames.Olive,
}

// Image renders the material grid as a paletted image, one pixel per
// cell, with a fixed color per material id. Intended for visual
// debugging of rasterization and fill results.
func (c *Canvas) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.width, c.height), snapshotPalette)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			m := int(c.cells[y*c.width+x])
			img.SetColorIndex(x, y, uint8(m%len(snapshotPalette)))
		}
	}
	return img
}

// EncodePNG writes the grid snapshot as PNG to the given writer.
// This is useful for streaming, network output, or custom storage.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// SavePNG saves the grid snapshot to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, c.Image())
}
