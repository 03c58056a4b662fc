package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// patternTransform holds a pattern's transform and its cached inverse
type patternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

func identityTransform() patternTransform {
	return patternTransform{transform: core.Identity(), inverse: core.Identity()}
}

// Transform returns the pattern transform
func (p *patternTransform) Transform() core.Matrix {
	return p.transform
}

// InverseTransform returns the cached inverse of the pattern transform
func (p *patternTransform) InverseTransform() core.Matrix {
	return p.inverse
}

// SetTransform replaces the transform. Singular matrices are rejected.
func (p *patternTransform) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inverse
	return nil
}

// PatternAtShape maps a world point into the shape's object space, then into
// pattern space, and samples the pattern there.
func PatternAtShape(p Pattern, obj ObjectSpace, worldPoint core.Tuple) core.Color {
	objectPoint := obj.WorldToObject(worldPoint)
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.PatternAt(patternPoint)
}

// SolidPattern returns the same color everywhere
type SolidPattern struct {
	patternTransform
	Color core.Color
}

// NewSolidPattern creates a constant-color pattern
func NewSolidPattern(color core.Color) *SolidPattern {
	return &SolidPattern{patternTransform: identityTransform(), Color: color}
}

// PatternAt ignores the point
func (s *SolidPattern) PatternAt(point core.Tuple) core.Color {
	return s.Color
}

// StripePattern alternates between two colors along x with unit-wide stripes
type StripePattern struct {
	patternTransform
	A, B core.Color
}

// NewStripePattern creates a stripe pattern starting with a at x=0
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{patternTransform: identityTransform(), A: a, B: b}
}

// PatternAt returns A when floor(x) is even, B otherwise. The parity test
// stays in float64, so no coordinate is converted to an integer.
func (s *StripePattern) PatternAt(point core.Tuple) core.Color {
	// math.Mod keeps the sign of x, so odd negatives give -1 and even ones -0
	if math.Mod(math.Floor(point.X), 2) == 0 {
		return s.A
	}
	return s.B
}
