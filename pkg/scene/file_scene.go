package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
)

// NewFileScene loads a YAML scene file. Camera fields missing from the file
// fall back to DefaultCameraConfig; overrides apply on top of both.
func NewFileScene(path string, cameraOverrides ...CameraConfig) (*Scene, error) {
	sf, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, err
	}

	light, err := sf.BuildLight()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	objects, err := sf.BuildObjects()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	world := NewWorld()
	world.SetLight(light)
	for _, obj := range objects {
		world.AddObject(obj)
	}

	cameraConfig := MergeCameraConfig(DefaultCameraConfig(), cameraConfigFromSpec(sf.Camera))
	return newScene(sf.Name, world, cameraConfig, cameraOverrides)
}

func cameraConfigFromSpec(spec loaders.CameraSpec) CameraConfig {
	cfg := CameraConfig{
		Width:       spec.Width,
		Height:      spec.Height,
		FieldOfView: spec.FOV,
	}
	if spec.From != nil {
		cfg.From = spec.From.Point()
	}
	if spec.To != nil {
		cfg.To = spec.To.Point()
	}
	if spec.Up != nil {
		cfg.Up = spec.Up.Vector()
	}
	return cfg
}
