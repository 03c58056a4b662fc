package geometry

import (
	"cmp"
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersection is a single ray/object crossing at parameter T
type Intersection struct {
	T      float64
	Object *Object
}

// NewIntersection creates an intersection
func NewIntersection(t float64, obj *Object) Intersection {
	return Intersection{T: t, Object: obj}
}

// Intersections is a list of ray/object crossings
type Intersections []Intersection

// Sort orders the intersections by ascending t in place
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Hit returns the intersection with the smallest strictly positive t.
// The list does not need to be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// Computations holds the shading inputs derived from a resolved hit
type Computations struct {
	T      float64
	Object *Object
	Point  core.Tuple
	// OverPoint is Point nudged along the normal, used as the shadow ray origin
	OverPoint core.Tuple
	Eyev      core.Tuple
	Normalv   core.Tuple
	Inside    bool
}

// PrepareComputations derives the hit point, eye and normal vectors for an
// intersection. A normal facing away from the eye is flipped and Inside set.
func PrepareComputations(hit Intersection, ray core.Ray) Computations {
	point := ray.Position(hit.T)
	comps := Computations{
		T:       hit.T,
		Object:  hit.Object,
		Point:   point,
		Eyev:    ray.Direction.Negate(),
		Normalv: hit.Object.NormalAt(point),
	}

	if comps.Normalv.Dot(comps.Eyev) < 0 {
		comps.Inside = true
		comps.Normalv = comps.Normalv.Negate()
	}

	comps.OverPoint = point.Add(comps.Normalv.Multiply(core.Epsilon))
	return comps
}
