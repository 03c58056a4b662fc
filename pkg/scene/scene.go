package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *World
	Camera       *geometry.Camera
	CameraConfig CameraConfig
}

// CameraConfig describes a camera placement. Zero fields mean "unset" when
// merging overrides.
type CameraConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	FieldOfView float64    `yaml:"fov"` // degrees
	From        core.Tuple `yaml:"-"`
	To          core.Tuple `yaml:"-"`
	Up          core.Tuple `yaml:"-"`
}

// DefaultCameraConfig is the framing used by the demo scenes
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: 60,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	return result
}

// NewCamera builds a camera from a config
func NewCamera(cfg CameraConfig) (*geometry.Camera, error) {
	camera, err := geometry.NewCamera(cfg.Width, cfg.Height, cfg.FieldOfView*math.Pi/180)
	if err != nil {
		return nil, err
	}

	view, err := core.ViewTransform(cfg.From, cfg.To, cfg.Up)
	if err != nil {
		return nil, fmt.Errorf("camera view: %w", err)
	}
	if err := camera.SetTransform(view); err != nil {
		return nil, err
	}
	return camera, nil
}

// newScene assembles a scene from a world and a camera config with optional overrides
func newScene(name string, world *World, defaults CameraConfig, overrides []CameraConfig) (*Scene, error) {
	cameraConfig := defaults
	if len(overrides) > 0 {
		cameraConfig = MergeCameraConfig(defaults, overrides[0])
	}

	camera, err := NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	return &Scene{
		Name:         name,
		World:        world,
		Camera:       camera,
		CameraConfig: cameraConfig,
	}, nil
}

// Validate checks that the scene is ready to render
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene %s: %w: no camera", s.Name, geometry.ErrInvalidCamera)
	}
	if s.World == nil {
		return fmt.Errorf("scene %s: %w", s.Name, ErrNoLight)
	}
	if err := s.World.Validate(); err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return nil
}

// GetObjectCount returns the number of objects in the scene
func (s *Scene) GetObjectCount() int {
	if s.World == nil {
		return 0
	}
	return len(s.World.Objects)
}
