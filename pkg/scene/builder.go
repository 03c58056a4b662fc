package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// worldBuilder adds objects to a world and keeps the first transform error,
// so scene constructors can place objects without checking every call.
type worldBuilder struct {
	world *World
	err   error
}

func newWorldBuilder() *worldBuilder {
	return &worldBuilder{world: NewWorld()}
}

// add places obj with the given material. Transforms are applied in argument
// order, first one first.
func (b *worldBuilder) add(obj *geometry.Object, m *material.Material, transforms ...core.Matrix) *geometry.Object {
	if m != nil {
		obj.SetMaterial(m)
	}
	if len(transforms) > 0 {
		if err := obj.SetTransform(core.Chain(transforms...)); err != nil && b.err == nil {
			b.err = err
		}
	}
	b.world.AddObject(obj)
	return obj
}

// transformPattern sets a pattern transform, keeping the first error
func (b *worldBuilder) transformPattern(p material.Pattern, transforms ...core.Matrix) material.Pattern {
	if err := p.SetTransform(core.Chain(transforms...)); err != nil && b.err == nil {
		b.err = err
	}
	return p
}

// build returns the finished world or the first error
func (b *worldBuilder) build() (*World, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.world, nil
}

// phong returns a material with the given pattern, diffuse and specular
func phong(p material.Pattern, diffuse, specular float64) *material.Material {
	m := material.DefaultMaterial()
	m.Pattern = p
	m.Diffuse = diffuse
	m.Specular = specular
	return m
}

// matte returns a material with the given pattern and no highlight
func matte(p material.Pattern) *material.Material {
	m := material.DefaultMaterial()
	m.Pattern = p
	m.Specular = 0
	return m
}
