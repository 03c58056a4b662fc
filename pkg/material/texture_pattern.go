package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// TexturePattern wraps an image around a unit sphere
type TexturePattern struct {
	patternTransform
	Texture *ImageTexture
}

// NewTexturePattern creates a spherical texture pattern
func NewTexturePattern(texture *ImageTexture) *TexturePattern {
	return &TexturePattern{patternTransform: identityTransform(), Texture: texture}
}

// SphericalUV maps a point on the unit sphere to texture coordinates:
// u is the azimuth around y, v the polar angle from +y.
func SphericalUV(point core.Tuple) (u, v float64) {
	theta := math.Acos(max(-1, min(1, point.Y)))
	phi := math.Atan2(point.Z, point.X)
	u = (phi + math.Pi) / (2 * math.Pi)
	v = theta / math.Pi
	return u, v
}

// PatternAt samples the texture at the point's spherical coordinates
func (t *TexturePattern) PatternAt(point core.Tuple) core.Color {
	u, v := SphericalUV(point)
	return t.Texture.Sample(u, v)
}
