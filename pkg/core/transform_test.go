package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslation(t *testing.T) {
	transform := Translation(5, -3, 2)
	p := NewPoint(-3, 4, 5)

	assert.True(t, NewPoint(2, 1, 7).Equals(transform.MultiplyTuple(p)))
	assert.True(t, NewPoint(-8, 7, 3).Equals(transform.MustInverse().MultiplyTuple(p)))

	v := NewVector(-3, 4, 5)
	assert.True(t, v.Equals(transform.MultiplyTuple(v)), "translation must not move vectors")
}

func TestScaling(t *testing.T) {
	transform := Scaling(2, 3, 4)

	assert.True(t, NewPoint(-8, 18, 32).Equals(transform.MultiplyTuple(NewPoint(-4, 6, 8))))
	assert.True(t, NewVector(-8, 18, 32).Equals(transform.MultiplyTuple(NewVector(-4, 6, 8))))
	assert.True(t, NewVector(-2, 2, 2).Equals(transform.MustInverse().MultiplyTuple(NewVector(-4, 6, 8))))

	reflection := Scaling(-1, 1, 1)
	assert.True(t, NewPoint(-2, 3, 4).Equals(reflection.MultiplyTuple(NewPoint(2, 3, 4))))
}

func TestRotation(t *testing.T) {
	half := math.Pi / 4
	full := math.Pi / 2
	s := math.Sqrt2 / 2

	tests := []struct {
		name     string
		m        Matrix
		p        Tuple
		expected Tuple
	}{
		{"x half quarter", RotationX(half), NewPoint(0, 1, 0), NewPoint(0, s, s)},
		{"x full quarter", RotationX(full), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"x inverse", RotationX(half).MustInverse(), NewPoint(0, 1, 0), NewPoint(0, s, -s)},
		{"y half quarter", RotationY(half), NewPoint(0, 0, 1), NewPoint(s, 0, s)},
		{"y full quarter", RotationY(full), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"z half quarter", RotationZ(half), NewPoint(0, 1, 0), NewPoint(-s, s, 0)},
		{"z full quarter", RotationZ(full), NewPoint(0, 1, 0), NewPoint(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.MultiplyTuple(tt.p)
			assert.True(t, tt.expected.Equals(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestShearing(t *testing.T) {
	p := NewPoint(2, 3, 4)
	tests := []struct {
		name     string
		m        Matrix
		expected Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.MultiplyTuple(p)
			assert.True(t, tt.expected.Equals(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestTransformComposition(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	p2 := a.MultiplyTuple(p)
	assert.True(t, NewPoint(1, -1, 0).Equals(p2))
	p3 := b.MultiplyTuple(p2)
	assert.True(t, NewPoint(5, -5, 0).Equals(p3))
	p4 := c.MultiplyTuple(p3)
	assert.True(t, NewPoint(15, 0, 7).Equals(p4))

	// Chained transforms apply right to left
	combined := c.Multiply(b.Multiply(a))
	assert.True(t, NewPoint(15, 0, 7).Equals(combined.MultiplyTuple(p)))
	assert.True(t, combined.Equals(Chain(a, b, c)))
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix
	}{
		{
			name:     "default orientation",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, -1),
			up:       NewVector(0, 1, 0),
			expected: Identity(),
		},
		{
			name:     "looking in positive z",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, 1),
			up:       NewVector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "moves the world",
			from:     NewPoint(0, 0, 8),
			to:       NewPoint(0, 0, 0),
			up:       NewVector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary",
			from: NewPoint(1, 3, 2),
			to:   NewPoint(4, -2, 8),
			up:   NewVector(1, 1, 0),
			expected: MustMatrix(4,
				-0.51450, 0.51450, 0.68599, -2.40098,
				0.77892, 0.61494, 0.12299, -2.86972,
				-0.35857, 0.59761, -0.71714, 0.00000,
				0.00000, 0.00000, 0.00000, 1.00000,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ViewTransform(tt.from, tt.to, tt.up)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equals(got), "got\n%v", got)
		})
	}
}

func TestViewTransform_Degenerate(t *testing.T) {
	_, err := ViewTransform(NewPoint(1, 1, 1), NewPoint(1, 1, 1), NewVector(0, 1, 0))
	require.ErrorIs(t, err, ErrZeroVector)

	_, err = ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 5, 0), NewVector(0, 1, 0))
	require.ErrorIs(t, err, ErrZeroVector)
}
