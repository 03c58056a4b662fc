package material

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = core.White()
	black = core.Black()
)

func TestStripePattern(t *testing.T) {
	p := NewStripePattern(white, black)
	assert.Equal(t, white, p.A)
	assert.Equal(t, black, p.B)

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Color
	}{
		{"constant in y", core.NewPoint(0, 1, 0), white},
		{"constant in y far", core.NewPoint(0, 2, 0), white},
		{"constant in z", core.NewPoint(0, 0, 1), white},
		{"constant in z far", core.NewPoint(0, 0, 2), white},
		{"x=0", core.NewPoint(0, 0, 0), white},
		{"x=0.9", core.NewPoint(0.9, 0, 0), white},
		{"x=1", core.NewPoint(1, 0, 0), black},
		{"x=-0.1", core.NewPoint(-0.1, 0, 0), black},
		{"x=-1", core.NewPoint(-1, 0, 0), black},
		{"x=-1.1", core.NewPoint(-1.1, 0, 0), white},
		{"x=-2", core.NewPoint(-2, 0, 0), white},
		{"x=3.5", core.NewPoint(3.5, 0, 0), black},
		// Beyond the int64 range every float64 is an even integer
		{"x=1e19", core.NewPoint(1e19, 0, 0), white},
		{"x=-3e19", core.NewPoint(-3e19, 0, 0), white},
		{"x=1e300", core.NewPoint(1e300, 0, 0), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.PatternAt(tt.point))
		})
	}
}

func TestSolidPattern(t *testing.T) {
	c := core.NewColor(0.2, 0.4, 0.6)
	p := NewSolidPattern(c)
	assert.Equal(t, c, p.PatternAt(core.NewPoint(100, -3, 7)))
	assert.True(t, core.Identity().Equals(p.Transform()))
}

func TestPatternAtShape(t *testing.T) {
	tests := []struct {
		name             string
		objectTransform  core.Matrix
		patternTransform core.Matrix
		point            core.Tuple
		expected         core.Color
	}{
		{
			name:             "object transform",
			objectTransform:  core.Scaling(2, 2, 2),
			patternTransform: core.Identity(),
			point:            core.NewPoint(1.5, 0, 0),
			expected:         white,
		},
		{
			name:             "pattern transform",
			objectTransform:  core.Identity(),
			patternTransform: core.Scaling(2, 2, 2),
			point:            core.NewPoint(1.5, 0, 0),
			expected:         white,
		},
		{
			name:             "object and pattern transform",
			objectTransform:  core.Scaling(2, 2, 2),
			patternTransform: core.Translation(0.5, 0, 0),
			point:            core.NewPoint(2.5, 0, 0),
			expected:         white,
		},
		{
			name:             "untransformed",
			objectTransform:  core.Identity(),
			patternTransform: core.Identity(),
			point:            core.NewPoint(1.5, 0, 0),
			expected:         black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewStripePattern(white, black)
			require.NoError(t, p.SetTransform(tt.patternTransform))
			got := PatternAtShape(p, newSpace(t, tt.objectTransform), tt.point)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPattern_RejectsSingularTransform(t *testing.T) {
	p := NewStripePattern(white, black)
	err := p.SetTransform(core.Scaling(0, 1, 1))
	require.ErrorIs(t, err, core.ErrNotInvertible)
	assert.True(t, core.Identity().Equals(p.Transform()), "failed SetTransform must keep the old transform")
}

func TestSphericalUV(t *testing.T) {
	tests := []struct {
		point core.Tuple
		u, v  float64
	}{
		{core.NewPoint(0, 0, 1), 0.75, 0.5},
		{core.NewPoint(0, 0, -1), 0.25, 0.5},
		{core.NewPoint(1, 0, 0), 0.5, 0.5},
		{core.NewPoint(0, 1, 0), 0.5, 0.0},
		{core.NewPoint(0, -1, 0), 0.5, 1.0},
		// Slightly off the sphere must not produce NaN
		{core.NewPoint(0, 1.0000001, 0), 0.5, 0.0},
	}

	for _, tt := range tests {
		u, v := SphericalUV(tt.point)
		assert.InDelta(t, tt.u, u, core.Epsilon, "u for %v", tt.point)
		assert.InDelta(t, tt.v, v, core.Epsilon, "v for %v", tt.point)
	}
}

func TestImageTexture_Sample(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	green := core.NewColor(0, 1, 0)
	blue := core.NewColor(0, 0, 1)
	// Layout:
	//   white red
	//   green blue
	tex := NewImageTexture(2, 2, []core.Color{white, red, green, blue})

	assert.Equal(t, white, tex.Sample(0.1, 0.1))
	assert.Equal(t, red, tex.Sample(0.9, 0.1))
	assert.Equal(t, green, tex.Sample(0.1, 0.9))
	assert.Equal(t, blue, tex.Sample(0.9, 0.9))

	// The seam and the south pole clamp to the last column and row
	assert.Equal(t, blue, tex.Sample(1.0, 1.0))
}

func TestTexturePattern(t *testing.T) {
	// 4 columns around the equator, 2 rows from north to south
	tex := NewCheckerboardTexture(4, 2, 1, white, black)
	p := NewTexturePattern(tex)

	// (0,0,1): u=0.75, v=0.5 -> column 3, row 1 -> (3+1)%2 == 0 -> white
	assert.Equal(t, white, p.PatternAt(core.NewPoint(0, 0, 1)))
	// (0,0,-1): u=0.25, v=0.5 -> column 1, row 1 -> white
	assert.Equal(t, white, p.PatternAt(core.NewPoint(0, 0, -1)))
	// (1,0,0): u=0.5, v=0.5 -> column 2, row 1 -> black
	assert.Equal(t, black, p.PatternAt(core.NewPoint(1, 0, 0)))
	// Near the north pole: row 0, u=0.5 -> column 2 -> white
	assert.Equal(t, white, p.PatternAt(core.NewPoint(0.1, 0.99, 0).Normalize()))
}

func TestGradientTexture(t *testing.T) {
	tex := NewGradientTexture(1, 3, white, black)
	assert.True(t, white.Equals(tex.Pixels[0]))
	assert.True(t, core.NewColor(0.5, 0.5, 0.5).Equals(tex.Pixels[1]))
	assert.True(t, black.Equals(tex.Pixels[2]))
}
