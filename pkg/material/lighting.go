package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Lighting evaluates the Phong model for one light at a surface point.
// A shadowed point receives only the ambient term. The result is not clamped.
func Lighting(m *Material, obj ObjectSpace, light *lights.PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Color {
	effectiveColor := m.ColorAt(obj, point).Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv, _ := light.Towards(point)
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
