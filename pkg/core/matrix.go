package core

import (
	"fmt"
	"math"
)

// singularTolerance bounds |det| below which a matrix is treated as singular.
// It is much tighter than Epsilon so small but legal scales stay invertible.
const singularTolerance = 1e-12

// Matrix is a square matrix of logical dimension 2, 3 or 4.
// Storage is always 4x4 so submatrices of a 4x4 reuse the same layout;
// cells outside the logical dimension are zero.
type Matrix struct {
	dim    int
	values [4][4]float64
}

// NewMatrix creates a dim x dim matrix from row-major values.
// With no values the matrix is all zeros.
func NewMatrix(dim int, values ...float64) (Matrix, error) {
	if dim < 2 || dim > 4 {
		return Matrix{}, fmt.Errorf("dimension %d: %w", dim, ErrDimension)
	}
	if len(values) != 0 && len(values) != dim*dim {
		return Matrix{}, fmt.Errorf("%dx%d matrix needs %d values, got %d: %w",
			dim, dim, dim*dim, len(values), ErrDimension)
	}

	m := Matrix{dim: dim}
	for i, v := range values {
		m.values[i/dim][i%dim] = v
	}
	return m, nil
}

// MustMatrix is NewMatrix for literal matrices known to be well formed
func MustMatrix(dim int, values ...float64) Matrix {
	m, err := NewMatrix(dim, values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	m := Matrix{dim: 4}
	for i := 0; i < 4; i++ {
		m.values[i][i] = 1
	}
	return m
}

// Dimension returns the logical dimension
func (m Matrix) Dimension() int {
	return m.dim
}

// At returns the value at (row, col)
func (m Matrix) At(row, col int) float64 {
	return m.values[row][col]
}

// Set returns a copy of the matrix with (row, col) replaced
func (m Matrix) Set(row, col int, value float64) Matrix {
	m.values[row][col] = value
	return m
}

// Multiply returns m x other
func (m Matrix) Multiply(other Matrix) Matrix {
	result := Matrix{dim: m.dim}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result.values[row][col] = m.values[row][0]*other.values[0][col] +
				m.values[row][1]*other.values[1][col] +
				m.values[row][2]*other.values[2][col] +
				m.values[row][3]*other.values[3][col]
		}
	}
	return result
}

// MultiplyTuple returns m x t
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	row := func(r int) float64 {
		return m.values[r][0]*t.X + m.values[r][1]*t.Y + m.values[r][2]*t.Z + m.values[r][3]*t.W
	}
	return Tuple{X: row(0), Y: row(1), Z: row(2), W: row(3)}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	result := Matrix{dim: m.dim}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result.values[row][col] = m.values[col][row]
		}
	}
	return result
}

// Determinant expands along the first row down to the 2x2 base case
func (m Matrix) Determinant() float64 {
	switch {
	case m.dim == 2:
		return m.values[0][0]*m.values[1][1] - m.values[0][1]*m.values[1][0]
	case m.dim > 2:
		det := 0.0
		for col := 0; col < m.dim; col++ {
			det += m.values[0][col] * m.Cofactor(0, col)
		}
		return det
	default:
		return m.values[0][0]
	}
}

// Submatrix removes the given row and column, reducing the dimension by one
func (m Matrix) Submatrix(row, col int) Matrix {
	sub := Matrix{dim: m.dim - 1}
	for i := 0; i < sub.dim; i++ {
		srcRow := i
		if i >= row {
			srcRow++
		}
		for j := 0; j < sub.dim; j++ {
			srcCol := j
			if j >= col {
				srcCol++
			}
			sub.values[i][j] = m.values[srcRow][srcCol]
		}
	}
	return sub
}

// Minor is the determinant of Submatrix(row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the minor with sign (-1)^(row+col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix) IsInvertible() bool {
	return math.Abs(m.Determinant()) >= singularTolerance
}

// Inverse computes the inverse with the adjugate method: every cofactor is
// divided by the determinant and stored transposed.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularTolerance {
		return Matrix{}, ErrNotInvertible
	}

	inverse := Matrix{dim: m.dim}
	for row := 0; row < m.dim; row++ {
		for col := 0; col < m.dim; col++ {
			inverse.values[col][row] = m.Cofactor(row, col) / det
		}
	}
	return inverse, nil
}

// MustInverse panics when the matrix is singular. Use it only for transforms
// built from constants, where a singular matrix is a programming error.
func (m Matrix) MustInverse() Matrix {
	inverse, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inverse
}

// Equals compares dimension and every cell within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.dim != other.dim {
		return false
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEquals(m.values[row][col], other.values[row][col]) {
				return false
			}
		}
	}
	return true
}

// String formats the logical part of the matrix row by row
func (m Matrix) String() string {
	s := ""
	for row := 0; row < m.dim; row++ {
		s += fmt.Sprintf("%v", m.values[row][:m.dim])
		if row < m.dim-1 {
			s += "\n"
		}
	}
	return s
}
