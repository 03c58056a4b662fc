package geometry

import "errors"

// ErrInvalidCamera is returned for a camera with no pixel span or an unusable
// field of view.
var ErrInvalidCamera = errors.New("geometry: invalid camera")
