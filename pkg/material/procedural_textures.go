package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			color := color2
			if (checkX+checkY)%2 == 0 {
				color = color1
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom).
// Wrapped on a sphere it shades from the north pole to the south pole.
func NewGradientTexture(width, height int, color1, color2 core.Color) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}
