package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSceneYAML = `
name: test-room
description: Floor and a striped ball
group: Tests
camera:
  width: 64
  height: 32
  fov: 60
  from: [0, 1.5, -5]
  to: [0, 1, 0]
light:
  position: [-10, 10, -10]
objects:
  - type: plane
    material:
      color: [1, 0.9, 0.9]
      specular: 0
  - type: sphere
    transform: ["scale 0.5", "translate 1.5 0.5 -0.5"]
    material:
      diffuse: 0.7
      specular: 0.3
      pattern:
        type: stripe
        colors: [[1, 0, 0], [1, 1, 1]]
        transform: ["scale 0.25"]
`

func TestParseSceneFile(t *testing.T) {
	sf, err := ParseSceneFile([]byte(testSceneYAML))
	require.NoError(t, err)

	assert.Equal(t, "test-room", sf.Name)
	assert.Equal(t, "Tests", sf.Group)
	assert.Equal(t, 64, sf.Camera.Width)
	assert.Equal(t, 60.0, sf.Camera.FOV)
	require.NotNil(t, sf.Camera.From)
	assert.True(t, core.NewPoint(0, 1.5, -5).Equals(sf.Camera.From.Point()))
	assert.Nil(t, sf.Camera.Up)

	light, err := sf.BuildLight()
	require.NoError(t, err)
	assert.True(t, light.Equals(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())))

	objects, err := sf.BuildObjects()
	require.NoError(t, err)
	require.Len(t, objects, 2)

	floor := objects[0]
	assert.Equal(t, "plane", floor.Primitive().Name())
	assert.Equal(t, 0.0, floor.Material().Specular)
	solid, ok := floor.Material().Pattern.(*material.SolidPattern)
	require.True(t, ok)
	assert.True(t, core.NewColor(1, 0.9, 0.9).Equals(solid.Color))

	ball := objects[1]
	assert.Equal(t, "sphere", ball.Primitive().Name())
	assert.True(t, core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)).Equals(ball.Transform()))
	assert.Equal(t, 0.7, ball.Material().Diffuse)
	assert.Equal(t, 0.1, ball.Material().Ambient, "unset fields keep their defaults")
	stripes, ok := ball.Material().Pattern.(*material.StripePattern)
	require.True(t, ok)
	assert.True(t, core.Scaling(0.25, 0.25, 0.25).Equals(stripes.Transform()))
}

func TestParseSceneFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "lights: []\n"},
		{"bad triple", "light:\n  position: [1, 2]\n"},
		{"not yaml", "objects: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneFile([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidSceneFile)
		})
	}
}

func TestSceneFile_BuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		target error
	}{
		{"unknown object", "objects:\n  - type: cube\n", ErrInvalidSceneFile},
		{"bad transform", "objects:\n  - type: sphere\n    transform: [\"warp 9\"]\n", ErrInvalidTransformOp},
		{"singular transform", "objects:\n  - type: sphere\n    transform: [\"scale 0\"]\n", core.ErrNotInvertible},
		{"stripe needs two colors", "objects:\n  - type: plane\n    material:\n      pattern:\n        type: stripe\n        colors: [[1, 0, 0]]\n", ErrInvalidSceneFile},
		{"color and pattern", "objects:\n  - type: plane\n    material:\n      color: [1, 0, 0]\n      pattern:\n        type: solid\n        colors: [[1, 0, 0]]\n", ErrInvalidSceneFile},
		{"unknown pattern", "objects:\n  - type: plane\n    material:\n      pattern:\n        type: marble\n", ErrInvalidSceneFile},
		{"texture without path", "objects:\n  - type: sphere\n    material:\n      pattern:\n        type: texture\n", ErrInvalidSceneFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := ParseSceneFile([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = sf.BuildObjects()
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestSceneFile_NoLight(t *testing.T) {
	sf, err := ParseSceneFile([]byte("objects: []\n"))
	require.NoError(t, err)
	_, err = sf.BuildLight()
	assert.ErrorIs(t, err, ErrInvalidSceneFile)
}

func TestLoadSceneFile_TextureRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir)

	path := filepath.Join(dir, "globe.yaml")
	content := "light:\n  position: [0, 0, -10]\n  intensity: [0.5, 0.5, 0.5]\n" +
		"objects:\n  - type: sphere\n    material:\n      pattern:\n        type: texture\n        path: test.png\n" +
		"  - type: sphere\n    material:\n      pattern:\n        type: checker\n        colors: [[1, 1, 1], [0, 0, 0]]\n" +
		"  - type: sphere\n    material:\n      pattern:\n        type: gradient\n        colors: [[1, 0, 0], [0, 0, 1]]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sf, err := LoadSceneFile(path)
	require.NoError(t, err)
	assert.Equal(t, "globe", sf.Name, "name falls back to the file name")

	light, err := sf.BuildLight()
	require.NoError(t, err)
	assert.True(t, core.NewColor(0.5, 0.5, 0.5).Equals(light.Intensity))

	objects, err := sf.BuildObjects()
	require.NoError(t, err)
	require.Len(t, objects, 3)

	textured, ok := objects[0].Material().Pattern.(*material.TexturePattern)
	require.True(t, ok)
	assert.Equal(t, 2, textured.Texture.Width)

	_, ok = objects[1].Material().Pattern.(*material.TexturePattern)
	assert.True(t, ok)

	gradient, ok := objects[2].Material().Pattern.(*material.TexturePattern)
	require.True(t, ok)
	assert.Equal(t, core.NewColor(1, 0, 0), gradient.PatternAt(core.NewPoint(0, 1, 0)))
	assert.Equal(t, core.NewColor(0, 0, 1), gradient.PatternAt(core.NewPoint(0, -1, 0)))
}

func TestLoadSceneFile_Missing(t *testing.T) {
	_, err := LoadSceneFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
