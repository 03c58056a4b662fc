package loaders

import "errors"

var (
	// ErrInvalidTransformOp is returned for a transform step that cannot be parsed
	ErrInvalidTransformOp = errors.New("loaders: invalid transform op")

	// ErrInvalidSceneFile is returned for a scene file with missing or bad fields
	ErrInvalidSceneFile = errors.New("loaders: invalid scene file")
)
