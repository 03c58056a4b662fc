package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Pattern provides spatially varying color for a material.
// PatternAt receives a point already mapped into pattern space.
type Pattern interface {
	PatternAt(point core.Tuple) core.Color
	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix) error
}

// ObjectSpace maps world-space points into a shape's object space
type ObjectSpace interface {
	WorldToObject(point core.Tuple) core.Tuple
}
