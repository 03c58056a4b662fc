package loaders

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"gopkg.in/yaml.v3"
)

// Vec3 is a YAML triple such as [0, 1.5, -5]
type Vec3 [3]float64

// Point converts the triple to a point
func (v Vec3) Point() core.Tuple { return core.NewPoint(v[0], v[1], v[2]) }

// Vector converts the triple to a vector
func (v Vec3) Vector() core.Tuple { return core.NewVector(v[0], v[1], v[2]) }

// Color converts the triple to a color
func (v Vec3) Color() core.Color { return core.NewColor(v[0], v[1], v[2]) }

// SceneFile is the YAML description of a scene
type SceneFile struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Group       string       `yaml:"group"`
	Camera      CameraSpec   `yaml:"camera"`
	Light       *LightSpec   `yaml:"light"`
	Objects     []ObjectSpec `yaml:"objects"`

	// Directory of the file, used to resolve texture paths
	dir string
}

// CameraSpec holds camera settings; zero values are left to the caller's defaults
type CameraSpec struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FOV    float64 `yaml:"fov"` // degrees
	From   *Vec3   `yaml:"from"`
	To     *Vec3   `yaml:"to"`
	Up     *Vec3   `yaml:"up"`
}

// LightSpec describes the point light
type LightSpec struct {
	Position  Vec3  `yaml:"position"`
	Intensity *Vec3 `yaml:"intensity"`
}

// ObjectSpec describes one sphere or plane
type ObjectSpec struct {
	Type      string        `yaml:"type"`
	Transform []string      `yaml:"transform"`
	Material  *MaterialSpec `yaml:"material"`
}

// MaterialSpec overrides fields of the default material
type MaterialSpec struct {
	Color     *Vec3        `yaml:"color"`
	Ambient   *float64     `yaml:"ambient"`
	Diffuse   *float64     `yaml:"diffuse"`
	Specular  *float64     `yaml:"specular"`
	Shininess *float64     `yaml:"shininess"`
	Pattern   *PatternSpec `yaml:"pattern"`
}

// PatternSpec describes a solid, stripe, checker, gradient or texture pattern
type PatternSpec struct {
	Type      string   `yaml:"type"`
	Colors    []Vec3   `yaml:"colors"`
	Path      string   `yaml:"path"`
	Transform []string `yaml:"transform"`
}

// LoadSceneFile reads and decodes a YAML scene file
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	sf, err := ParseSceneFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sf.dir = filepath.Dir(path)
	if sf.Name == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sf, nil
}

// ParseSceneFile decodes YAML scene data. Unknown keys are rejected.
func ParseSceneFile(data []byte) (*SceneFile, error) {
	var sf SceneFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSceneFile, err)
	}
	return &sf, nil
}

// BuildLight creates the point light; intensity defaults to white
func (sf *SceneFile) BuildLight() (*lights.PointLight, error) {
	if sf.Light == nil {
		return nil, fmt.Errorf("%w: no light", ErrInvalidSceneFile)
	}
	intensity := core.White()
	if sf.Light.Intensity != nil {
		intensity = sf.Light.Intensity.Color()
	}
	return lights.NewPointLight(sf.Light.Position.Point(), intensity), nil
}

// BuildObjects creates the scene's objects in file order
func (sf *SceneFile) BuildObjects() ([]*geometry.Object, error) {
	objects := make([]*geometry.Object, 0, len(sf.Objects))
	for i, spec := range sf.Objects {
		obj, err := sf.buildObject(spec)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, spec.Type, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func (sf *SceneFile) buildObject(spec ObjectSpec) (*geometry.Object, error) {
	var obj *geometry.Object
	switch strings.ToLower(spec.Type) {
	case "sphere":
		obj = geometry.NewSphere()
	case "plane":
		obj = geometry.NewPlane()
	default:
		return nil, fmt.Errorf("%w: unknown object type %q", ErrInvalidSceneFile, spec.Type)
	}

	transform, err := ParseTransform(spec.Transform)
	if err != nil {
		return nil, err
	}
	if err := obj.SetTransform(transform); err != nil {
		return nil, err
	}

	if spec.Material != nil {
		m, err := sf.buildMaterial(*spec.Material)
		if err != nil {
			return nil, err
		}
		obj.SetMaterial(m)
	}
	return obj, nil
}

func (sf *SceneFile) buildMaterial(spec MaterialSpec) (*material.Material, error) {
	m := material.DefaultMaterial()
	if spec.Color != nil {
		m.Pattern = material.NewSolidPattern(spec.Color.Color())
	}
	if spec.Ambient != nil {
		m.Ambient = *spec.Ambient
	}
	if spec.Diffuse != nil {
		m.Diffuse = *spec.Diffuse
	}
	if spec.Specular != nil {
		m.Specular = *spec.Specular
	}
	if spec.Shininess != nil {
		m.Shininess = *spec.Shininess
	}

	if spec.Pattern != nil {
		if spec.Color != nil {
			return nil, fmt.Errorf("%w: material has both color and pattern", ErrInvalidSceneFile)
		}
		p, err := sf.buildPattern(*spec.Pattern)
		if err != nil {
			return nil, err
		}
		m.Pattern = p
	}
	return m, nil
}

func (sf *SceneFile) buildPattern(spec PatternSpec) (material.Pattern, error) {
	var p material.Pattern
	switch strings.ToLower(spec.Type) {
	case "solid":
		if len(spec.Colors) != 1 {
			return nil, fmt.Errorf("%w: solid pattern needs 1 color, got %d", ErrInvalidSceneFile, len(spec.Colors))
		}
		p = material.NewSolidPattern(spec.Colors[0].Color())
	case "stripe":
		if len(spec.Colors) != 2 {
			return nil, fmt.Errorf("%w: stripe pattern needs 2 colors, got %d", ErrInvalidSceneFile, len(spec.Colors))
		}
		p = material.NewStripePattern(spec.Colors[0].Color(), spec.Colors[1].Color())
	case "checker":
		if len(spec.Colors) != 2 {
			return nil, fmt.Errorf("%w: checker pattern needs 2 colors, got %d", ErrInvalidSceneFile, len(spec.Colors))
		}
		tex := material.NewCheckerboardTexture(16, 8, 1, spec.Colors[0].Color(), spec.Colors[1].Color())
		p = material.NewTexturePattern(tex)
	case "gradient":
		if len(spec.Colors) != 2 {
			return nil, fmt.Errorf("%w: gradient pattern needs 2 colors, got %d", ErrInvalidSceneFile, len(spec.Colors))
		}
		// Pole to pole, so one column is enough
		tex := material.NewGradientTexture(1, 64, spec.Colors[0].Color(), spec.Colors[1].Color())
		p = material.NewTexturePattern(tex)
	case "texture":
		if spec.Path == "" {
			return nil, fmt.Errorf("%w: texture pattern needs a path", ErrInvalidSceneFile)
		}
		path := spec.Path
		if !filepath.IsAbs(path) && sf.dir != "" {
			path = filepath.Join(sf.dir, path)
		}
		tex, err := LoadTexture(path)
		if err != nil {
			return nil, err
		}
		p = material.NewTexturePattern(tex)
	default:
		return nil, fmt.Errorf("%w: unknown pattern type %q", ErrInvalidSceneFile, spec.Type)
	}

	transform, err := ParseTransform(spec.Transform)
	if err != nil {
		return nil, err
	}
	if err := p.SetTransform(transform); err != nil {
		return nil, err
	}
	return p, nil
}
