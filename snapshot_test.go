package topo

import (
	"bytes"
	"image/png"
	"testing"
)

// TestCanvasImage verifies the snapshot has one pixel per cell and a
// stable material-to-color mapping.
func TestCanvasImage(t *testing.T) {
	cv := newTestCanvas(t, 10, 8, 1)
	iron := cv.Material("iron")
	cv.Set(Pt(3, 4), iron)

	img := cv.Image()
	b := img.Bounds()
	if b.Dx() != cv.Width() || b.Dy() != cv.Height() {
		t.Fatalf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), cv.Width(), cv.Height())
	}

	if got := img.ColorIndexAt(3, 4); got != uint8(iron) {
		t.Errorf("iron cell color index = %d, want %d", got, iron)
	}
	if got := img.ColorIndexAt(0, 0); got != uint8(Ambient) {
		t.Errorf("ambient cell color index = %d, want %d", got, Ambient)
	}
}

// TestCanvasImagePaletteWraps verifies ids beyond the palette still map
// deterministically.
func TestCanvasImagePaletteWraps(t *testing.T) {
	cv := newTestCanvas(t, 4, 4, 1)
	var m Material
	for i := 0; i < len(snapshotPalette)+2; i++ {
		m = cv.Material(string(rune('a' + i)))
	}
	cv.Set(Pt(1, 1), m)

	img := cv.Image()
	want := uint8(int(m) % len(snapshotPalette))
	if got := img.ColorIndexAt(1, 1); got != want {
		t.Errorf("wrapped color index = %d, want %d", got, want)
	}
}

// TestCanvasEncodePNG verifies the snapshot round-trips through the PNG
// encoder.
func TestCanvasEncodePNG(t *testing.T) {
	cv := newTestCanvas(t, 16, 12, 1)
	iron := cv.Material("iron")
	if err := cv.Draw(Polygon{Points: []Point{Pt(2, 2), Pt(12, 2), Pt(12, 9)}, Closed: true}, iron); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("decoded size = %dx%d, want 16x12", b.Dx(), b.Dy())
	}
}
