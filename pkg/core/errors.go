package core

import "errors"

var (
	// ErrNotInvertible is returned when a transform has a zero determinant.
	// Shapes, patterns and cameras reject such transforms at assembly time.
	ErrNotInvertible = errors.New("core: matrix is not invertible")

	// ErrZeroVector is returned when a zero-length vector must be normalized
	ErrZeroVector = errors.New("core: cannot normalize zero-length vector")

	// ErrDimension is returned for matrices outside the supported 2..4 range
	ErrDimension = errors.New("core: unsupported matrix dimension")
)
