package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// World is an ordered collection of objects lit by a single point light.
// It is built once and must not be modified while rendering.
type World struct {
	Objects []*geometry.Object
	Light   *lights.PointLight
}

// NewWorld creates an empty world with no objects and no light
func NewWorld() *World {
	return &World{Objects: make([]*geometry.Object, 0)}
}

// DefaultWorld creates the two-sphere reference world: an outer colored sphere
// and an inner sphere of half the size, lit from the upper left.
func DefaultWorld() *World {
	m := material.NewColoredMaterial(core.NewColor(0.8, 1.0, 0.6))
	m.Diffuse = 0.7
	m.Specular = 0.2

	b := newWorldBuilder()
	b.add(geometry.NewSphere(), m)
	b.add(geometry.NewSphere(), nil, core.Scaling(0.5, 0.5, 0.5))
	w, err := b.build()
	if err != nil {
		// Constant transforms; a failure here is a programming error
		panic(err)
	}

	w.SetLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))
	return w
}

// AddObject appends an object to the world
func (w *World) AddObject(obj *geometry.Object) {
	w.Objects = append(w.Objects, obj)
}

// SetLight replaces the world's light source
func (w *World) SetLight(light *lights.PointLight) {
	w.Light = light
}

// Validate reports whether the world can be rendered
func (w *World) Validate() error {
	if w.Light == nil {
		return ErrNoLight
	}
	return nil
}

// Intersect returns every intersection of the ray with the world, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt returns the shaded color seen along the ray, or black on a miss
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black()
	}
	return w.ShadeHit(geometry.PrepareComputations(hit, ray))
}

// ShadeHit lights a prepared hit, accounting for shadows
func (w *World) ShadeHit(comps geometry.Computations) core.Color {
	if w.Light == nil {
		return core.Black()
	}
	shadowed := w.IsShadowed(comps.OverPoint)
	return geometry.Lighting(w.Light, comps, shadowed)
}

// IsShadowed reports whether an object sits strictly between point and the
// light. Callers pass the over point of a hit, not the surface point.
func (w *World) IsShadowed(point core.Tuple) bool {
	if w.Light == nil {
		return false
	}

	direction, distance := w.Light.Towards(point)
	hit, ok := w.Intersect(core.NewRay(point, direction)).Hit()
	return ok && hit.T < distance
}
