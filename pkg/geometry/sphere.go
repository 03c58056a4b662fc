package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the object-space origin
type Sphere struct{}

// NewSphere creates a unit sphere object
func NewSphere() *Object {
	return NewObject(Sphere{})
}

// Name returns the primitive name
func (Sphere) Name() string {
	return "sphere"
}

// LocalIntersect solves a*t^2 + b*t + c = 0 for the unit sphere.
// Both roots are returned, or none when the ray misses.
func (Sphere) LocalIntersect(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// LocalNormalAt is the vector from the center to the point
func (Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.NewVector(point.X, point.Y, point.Z)
}
