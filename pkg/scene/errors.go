package scene

import "errors"

var (
	// ErrNoLight is returned when rendering a world without a light source
	ErrNoLight = errors.New("scene: world has no light")

	// ErrUnknownScene is returned for a scene ID that is neither built in nor a scene file
	ErrUnknownScene = errors.New("scene: unknown scene")
)
