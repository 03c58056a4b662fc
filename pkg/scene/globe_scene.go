package scene

import (
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// GlobeTexturePath is the image wrapped around the globe when present
var GlobeTexturePath = "assets/earth.jpg"

// globeTexture loads the globe image, or a latitude/longitude grid when the
// image is not available
func globeTexture() (*material.ImageTexture, error) {
	if _, err := os.Stat(GlobeTexturePath); err == nil {
		return loaders.LoadTexture(GlobeTexturePath)
	}
	return material.NewCheckerboardTexture(360, 180, 30,
		core.NewColor(0.15, 0.35, 0.8),
		core.NewColor(0.2, 0.65, 0.25),
	), nil
}

// NewGlobeScene wraps a texture around a sphere floating over a white floor
func NewGlobeScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	texture, err := globeTexture()
	if err != nil {
		return nil, err
	}

	b := newWorldBuilder()
	b.add(geometry.NewPlane(), matte(material.NewSolidPattern(core.White())),
		core.Translation(0, -4, 10))
	b.add(geometry.NewSphere(), phong(material.NewTexturePattern(texture), 0.7, 0.3),
		core.Translation(0, 0.5, 0))

	b.world.SetLight(upperLeftLight())
	world, err := b.build()
	if err != nil {
		return nil, err
	}

	defaultCameraConfig := DefaultCameraConfig()
	defaultCameraConfig.Width = 400
	defaultCameraConfig.Height = 400
	return newScene("globe", world, defaultCameraConfig, cameraOverrides)
}
