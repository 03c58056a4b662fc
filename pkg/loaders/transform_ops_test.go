package loaders

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransformOp(t *testing.T) {
	tests := []struct {
		op       string
		expected core.Matrix
	}{
		{"identity", core.Identity()},
		{"translate 1 -2 3.5", core.Translation(1, -2, 3.5)},
		{"scale 2", core.Scaling(2, 2, 2)},
		{"scale 1 0.5 1", core.Scaling(1, 0.5, 1)},
		{"rotate-x 90deg", core.RotationX(math.Pi / 2)},
		{"rotate-y 0.5", core.RotationY(0.5)},
		{"ROTATE-Z -45deg", core.RotationZ(-math.Pi / 4)},
		{"shear 1 0 0 0 0 1", core.Shearing(1, 0, 0, 0, 0, 1)},
		{"  translate   0 1   0 ", core.Translation(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := ParseTransformOp(tt.op)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equals(got), "got\n%v", got)
		})
	}
}

func TestParseTransformOp_Invalid(t *testing.T) {
	for _, op := range []string{
		"",
		"translate 1 2",
		"translate a b c",
		"scale 1 2",
		"rotate-x",
		"rotate-y ninety",
		"shear 1 2 3",
		"spin 90deg",
		"identity 1",
		`translate "1 2 3`,
	} {
		t.Run(op, func(t *testing.T) {
			_, err := ParseTransformOp(op)
			assert.ErrorIs(t, err, ErrInvalidTransformOp)
		})
	}
}

func TestParseTransform_Order(t *testing.T) {
	// Scale first, then move: the translation is not scaled
	m, err := ParseTransform([]string{"scale 2", "translate 1 0 0"})
	require.NoError(t, err)
	got := m.MultiplyTuple(core.NewPoint(1, 0, 0))
	assert.True(t, core.NewPoint(3, 0, 0).Equals(got), "got %v", got)

	empty, err := ParseTransform(nil)
	require.NoError(t, err)
	assert.True(t, core.Identity().Equals(empty))

	_, err = ParseTransform([]string{"scale 2", "bogus"})
	assert.ErrorIs(t, err, ErrInvalidTransformOp)
}
