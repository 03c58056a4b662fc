package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Plane is the infinite xz plane (y = 0) in object space
type Plane struct{}

// NewPlane creates a plane object
func NewPlane() *Object {
	return NewObject(Plane{})
}

// Name returns the primitive name
func (Plane) Name() string {
	return "plane"
}

// LocalIntersect returns the single crossing of y = 0. Parallel and coplanar
// rays miss.
func (Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is +y everywhere
func (Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
