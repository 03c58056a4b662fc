package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Lighting shades prepared hit computations with the hit object's material
func Lighting(light *lights.PointLight, comps Computations, inShadow bool) core.Color {
	return material.Lighting(comps.Object.Material(), comps.Object, light,
		comps.Point, comps.Eyev, comps.Normalv, inShadow)
}
