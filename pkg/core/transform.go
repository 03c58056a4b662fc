package core

import (
	"fmt"
	"math"
)

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix {
	return Identity().Set(0, 3, x).Set(1, 3, y).Set(2, 3, z)
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return Identity().Set(0, 0, x).Set(1, 1, y).Set(2, 2, z)
}

// RotationX rotates around the x axis (right-handed, radians)
func RotationX(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return Identity().Set(1, 1, cos).Set(1, 2, -sin).Set(2, 1, sin).Set(2, 2, cos)
}

// RotationY rotates around the y axis (right-handed, radians)
func RotationY(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return Identity().Set(0, 0, cos).Set(0, 2, sin).Set(2, 0, -sin).Set(2, 2, cos)
}

// RotationZ rotates around the z axis (right-handed, radians)
func RotationZ(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return Identity().Set(0, 0, cos).Set(0, 1, -sin).Set(1, 0, sin).Set(1, 1, cos)
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Identity().
		Set(0, 1, xy).Set(0, 2, xz).
		Set(1, 0, yx).Set(1, 2, yz).
		Set(2, 0, zx).Set(2, 1, zy)
}

// Chain composes transforms so the first argument is applied first:
// Chain(A, B, C) == C x B x A.
func Chain(transforms ...Matrix) Matrix {
	result := Identity()
	for _, m := range transforms {
		result = m.Multiply(result)
	}
	return result
}

// ViewTransform orients the world so an eye at from looks toward to with the given up.
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	forward, err := to.Subtract(from).NormalizeChecked()
	if err != nil {
		return Matrix{}, fmt.Errorf("view transform: eye and target coincide: %w", err)
	}
	upn, err := up.NormalizeChecked()
	if err != nil {
		return Matrix{}, fmt.Errorf("view transform: up vector: %w", err)
	}
	left, err := forward.Cross(upn).NormalizeChecked()
	if err != nil {
		return Matrix{}, fmt.Errorf("view transform: up is parallel to view direction: %w", err)
	}
	trueUp := left.Cross(forward)

	orientation := MustMatrix(4,
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}

// MustViewTransform is ViewTransform for constant camera placements
func MustViewTransform(from, to, up Tuple) Matrix {
	m, err := ViewTransform(from, to, up)
	if err != nil {
		panic(err)
	}
	return m
}
