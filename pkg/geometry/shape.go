package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Primitive is the object-space part of a shape: a ray/surface solver and a
// surface normal, both in the shape's own coordinate frame.
type Primitive interface {
	// LocalIntersect returns the t values where an object-space ray meets the
	// surface, in no particular order.
	LocalIntersect(ray core.Ray) []float64
	// LocalNormalAt returns the object-space normal at an object-space point
	LocalNormalAt(point core.Tuple) core.Tuple
	Name() string
}

// Object places a primitive in the world with a transform and a material.
// All world/object space conversion happens here so every primitive gets it
// the same way.
type Object struct {
	primitive        Primitive
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         *material.Material
}

// NewObject wraps a primitive with the identity transform and a default material
func NewObject(primitive Primitive) *Object {
	return &Object{
		primitive:        primitive,
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.DefaultMaterial(),
	}
}

// Primitive returns the wrapped primitive
func (o *Object) Primitive() Primitive {
	return o.primitive
}

// Transform returns the object-to-world transform
func (o *Object) Transform() core.Matrix {
	return o.transform
}

// SetTransform replaces the transform. Singular matrices are rejected and
// leave the object unchanged.
func (o *Object) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("%s transform: %w", o.primitive.Name(), err)
	}
	o.transform = m
	o.inverse = inverse
	o.inverseTranspose = inverse.Transpose()
	return nil
}

// Material returns the object's material
func (o *Object) Material() *material.Material {
	return o.material
}

// SetMaterial replaces the object's material
func (o *Object) SetMaterial(m *material.Material) {
	o.material = m
}

// WorldToObject maps a world-space point into object space
func (o *Object) WorldToObject(point core.Tuple) core.Tuple {
	return o.inverse.MultiplyTuple(point)
}

// Intersect transforms a world-space ray into object space and returns the
// primitive's intersections tagged with this object
func (o *Object) Intersect(ray core.Ray) Intersections {
	local := ray.Transform(o.inverse)
	ts := o.primitive.LocalIntersect(local)
	if len(ts) == 0 {
		return nil
	}

	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: o}
	}
	return xs
}

// NormalAt returns the unit world-space normal at a world-space point.
// Normals go back to world space through the inverse transpose, which keeps
// them perpendicular under non-uniform scaling.
func (o *Object) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectPoint := o.inverse.MultiplyTuple(worldPoint)
	objectNormal := o.primitive.LocalNormalAt(objectPoint)
	worldNormal := o.inverseTranspose.MultiplyTuple(objectNormal)
	return worldNormal.Normalize()
}
