package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

var (
	red   = core.NewColor(1, 0, 0)
	white = core.White()
)

func upperLeftLight() *lights.PointLight {
	return lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())
}

// NewSpheresScene builds a room out of flattened spheres with three spheres inside
func NewSpheresScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	b := newWorldBuilder()

	wallMaterial := matte(material.NewSolidPattern(core.NewColor(1, 0.9, 0.9)))
	flat := core.Scaling(10, 0.01, 10)

	b.add(geometry.NewSphere(), wallMaterial, flat)
	b.add(geometry.NewSphere(), wallMaterial,
		flat, core.RotationX(math.Pi/2), core.RotationY(-math.Pi/4), core.Translation(0, 0, 5))
	b.add(geometry.NewSphere(), wallMaterial,
		flat, core.RotationX(math.Pi/2), core.RotationY(math.Pi/4), core.Translation(0, 0, 5))

	b.add(geometry.NewSphere(),
		phong(material.NewSolidPattern(core.NewColor(0.5, 1, 0.1)), 0.7, 0.3),
		core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5))
	b.add(geometry.NewSphere(),
		phong(material.NewSolidPattern(core.NewColor(0.1, 1, 0.5)), 0.7, 0.3),
		core.Translation(-0.5, 1, 0.5))
	b.add(geometry.NewSphere(),
		phong(material.NewSolidPattern(core.NewColor(1, 0.8, 0.1)), 0.7, 0.3),
		core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75))

	b.world.SetLight(upperLeftLight())
	world, err := b.build()
	if err != nil {
		return nil, err
	}
	return newScene("spheres", world, DefaultCameraConfig(), cameraOverrides)
}

// NewPlanesScene uses a striped floor and back wall instead of flattened spheres
func NewPlanesScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	b := newWorldBuilder()

	b.add(geometry.NewPlane(), matte(material.NewStripePattern(red, white)))
	b.add(geometry.NewPlane(), matte(material.NewStripePattern(red, white)),
		core.RotationX(math.Pi/2), core.Translation(0, 0, 2))

	b.add(geometry.NewSphere(),
		phong(material.NewSolidPattern(core.NewColor(0.5, 1, 0.1)), 0.7, 0.3),
		core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5))
	b.add(geometry.NewSphere(),
		phong(material.NewStripePattern(red, white), 0.7, 0.3),
		core.Translation(-0.5, 1, 0.5))
	b.add(geometry.NewSphere(),
		phong(material.NewSolidPattern(core.NewColor(1, 0.8, 0.1)), 0.7, 0.3),
		core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75))

	b.world.SetLight(upperLeftLight())
	world, err := b.build()
	if err != nil {
		return nil, err
	}
	return newScene("planes", world, DefaultCameraConfig(), cameraOverrides)
}

// NewPatternsScene shows stripe patterns with and without their own transform
func NewPatternsScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	b := newWorldBuilder()

	stretched := b.transformPattern(material.NewStripePattern(red, white), core.Scaling(0.5, 1, 1.5))
	b.add(geometry.NewSphere(), phong(material.NewStripePattern(red, white), 0.7, 0.3),
		core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5))
	b.add(geometry.NewSphere(), phong(stretched, 0.7, 0.3),
		core.Translation(-0.5, 1, 0.5))

	b.world.SetLight(upperLeftLight())
	world, err := b.build()
	if err != nil {
		return nil, err
	}
	return newScene("patterns", world, DefaultCameraConfig(), cameraOverrides)
}
