package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an infinitely small light with no size and uniform intensity
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light at position with the given intensity
func NewPointLight(position core.Tuple, intensity core.Color) *PointLight {
	return &PointLight{
		Position:  position,
		Intensity: intensity,
	}
}

// Towards returns the unit direction from point to the light and the distance
// between them
func (l *PointLight) Towards(point core.Tuple) (core.Tuple, float64) {
	v := l.Position.Subtract(point)
	return v.Normalize(), v.Magnitude()
}

// Equals compares position and intensity within core.Epsilon
func (l *PointLight) Equals(other *PointLight) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.Position.Equals(other.Position) && l.Intensity.Equals(other.Intensity)
}
