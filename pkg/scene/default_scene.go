package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// NewDefaultScene renders the two-sphere default world straight on
func NewDefaultScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	defaultCameraConfig := CameraConfig{
		Width:       400,
		Height:      400,
		FieldOfView: 90,
		From:        core.NewPoint(0, 0, -5),
		To:          core.NewPoint(0, 0, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	return newScene("default", DefaultWorld(), defaultCameraConfig, cameraOverrides)
}
