package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong reflection coefficients and surface pattern
type Material struct {
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	Pattern   Pattern
}

// DefaultMaterial returns a new white material. Every call allocates its own
// pattern, so changing one material never affects another.
func DefaultMaterial() *Material {
	return &Material{
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
		Pattern:   NewSolidPattern(core.White()),
	}
}

// NewColoredMaterial returns the default material with a solid color
func NewColoredMaterial(color core.Color) *Material {
	m := DefaultMaterial()
	m.Pattern = NewSolidPattern(color)
	return m
}

// ColorAt samples the pattern at a world point on the given object.
// A material without a pattern is white.
func (m *Material) ColorAt(obj ObjectSpace, worldPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return core.White()
	}
	return PatternAtShape(m.Pattern, obj, worldPoint)
}

// Equals compares the reflection coefficients within core.Epsilon
func (m *Material) Equals(other *Material) bool {
	return core.FloatEquals(m.Ambient, other.Ambient) &&
		core.FloatEquals(m.Diffuse, other.Diffuse) &&
		core.FloatEquals(m.Specular, other.Specular) &&
		core.FloatEquals(m.Shininess, other.Shininess)
}
