package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradientWorld colors each ray by its direction so pixel placement is observable
type gradientWorld struct {
	err error
}

func (w gradientWorld) ColorAt(ray core.Ray) core.Color {
	return core.NewColor(ray.Direction.X, ray.Direction.Y, 0)
}

func (w gradientWorld) Validate() error {
	return w.err
}

func TestCamera_New(t *testing.T) {
	c, err := NewCamera(160, 120, math.Pi/2)
	require.NoError(t, err)

	assert.Equal(t, 160, c.HSize())
	assert.Equal(t, 120, c.VSize())
	assert.Equal(t, math.Pi/2, c.FieldOfView())
	assert.True(t, core.Identity().Equals(c.Transform()))
}

func TestCamera_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
		fov          float64
	}{
		{"zero width", 0, 10, math.Pi / 2},
		{"negative height", 10, -1, math.Pi / 2},
		{"zero fov", 10, 10, 0},
		{"fov of pi", 10, 10, math.Pi},
		{"nan fov", 10, 10, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCamera(tt.hsize, tt.vsize, tt.fov)
			assert.ErrorIs(t, err, ErrInvalidCamera)
		})
	}
}

func TestCamera_PixelSize(t *testing.T) {
	horizontal, err := NewCamera(200, 125, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, horizontal.PixelSize(), core.Epsilon)
	assert.InDelta(t, 1.0, horizontal.HalfWidth(), core.Epsilon)
	assert.InDelta(t, 0.625, horizontal.HalfHeight(), core.Epsilon)

	vertical, err := NewCamera(125, 200, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, vertical.PixelSize(), core.Epsilon)
	assert.InDelta(t, 0.625, vertical.HalfWidth(), core.Epsilon)
	assert.InDelta(t, 1.0, vertical.HalfHeight(), core.Epsilon)
}

func TestCamera_RecomputesOnChange(t *testing.T) {
	c, err := NewCamera(200, 125, math.Pi/2)
	require.NoError(t, err)

	require.NoError(t, c.SetSize(125, 200))
	assert.InDelta(t, 0.625, c.HalfWidth(), core.Epsilon)

	require.NoError(t, c.SetFieldOfView(math.Pi/3))
	assert.InDelta(t, math.Tan(math.Pi/6), c.HalfHeight(), core.Epsilon)

	// Rejected changes leave the camera alone
	assert.ErrorIs(t, c.SetSize(0, 0), ErrInvalidCamera)
	assert.Equal(t, 125, c.HSize())
	assert.ErrorIs(t, c.SetFieldOfView(-1), ErrInvalidCamera)
	assert.Equal(t, math.Pi/3, c.FieldOfView())
}

func TestCamera_RayForPixel(t *testing.T) {
	s2 := math.Sqrt2 / 2
	tests := []struct {
		name      string
		transform core.Matrix
		px, py    int
		origin    core.Tuple
		direction core.Tuple
	}{
		{
			name:      "center of the canvas",
			transform: core.Identity(),
			px:        100,
			py:        50,
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, -1),
		},
		{
			name:      "corner of the canvas",
			transform: core.Identity(),
			px:        0,
			py:        0,
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "transformed camera",
			transform: core.Chain(core.Translation(0, -2, 5), core.RotationY(math.Pi/4)),
			px:        100,
			py:        50,
			origin:    core.NewPoint(0, 2, -5),
			direction: core.NewVector(s2, 0, -s2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(201, 101, math.Pi/2)
			require.NoError(t, err)
			require.NoError(t, c.SetTransform(tt.transform))

			r := c.RayForPixel(tt.px, tt.py)
			assert.True(t, tt.origin.Equals(r.Origin), "origin %v", r.Origin)
			assert.True(t, tt.direction.Equals(r.Direction), "direction %v", r.Direction)
		})
	}
}

func TestCamera_RejectsSingularTransform(t *testing.T) {
	c, err := NewCamera(10, 10, math.Pi/2)
	require.NoError(t, err)
	assert.ErrorIs(t, c.SetTransform(core.Scaling(0, 0, 0)), core.ErrNotInvertible)
}

func TestCamera_Render(t *testing.T) {
	c, err := NewCamera(4, 3, math.Pi/2)
	require.NoError(t, err)

	canvas, err := c.Render(gradientWorld{})
	require.NoError(t, err)
	assert.Equal(t, 4, canvas.Width)
	assert.Equal(t, 3, canvas.Height)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			r := c.RayForPixel(x, y)
			want := core.NewColor(r.Direction.X, r.Direction.Y, 0)
			require.True(t, want.Equals(canvas.PixelAt(x, y)), "pixel (%d,%d)", x, y)
		}
	}

	// Column zero is +x in camera space, row zero is +y
	assert.Greater(t, canvas.PixelAt(0, 1).R, 0.0)
	assert.Greater(t, canvas.PixelAt(1, 0).G, 0.0)
}

func TestCamera_RenderInvalidWorld(t *testing.T) {
	c, err := NewCamera(4, 3, math.Pi/2)
	require.NoError(t, err)

	sentinel := errors.New("no light")
	_, err = c.Render(gradientWorld{err: sentinel})
	assert.ErrorIs(t, err, sentinel)
}
