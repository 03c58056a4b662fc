package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ImageTexture is a decoded RGB image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample looks up the nearest pixel for (u, v) in [0, 1) without filtering.
// u selects the column and v the row, with v=0 at the top of the image.
func (t *ImageTexture) Sample(u, v float64) core.Color {
	x := int(float64(t.Width) * u)
	y := int(float64(t.Height) * v)

	// u or v of exactly 1 (the seam and the south pole) land one past the edge
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}
