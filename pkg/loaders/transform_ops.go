package loaders

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/google/shlex"
)

// ParseTransformOp parses one transform step such as "translate 0 1 0",
// "scale 0.5", "rotate-y 45deg" or "shear 1 0 0 0 0 0".
// Angles are radians unless suffixed with "deg".
func ParseTransformOp(op string) (core.Matrix, error) {
	fields, err := shlex.Split(op)
	if err != nil {
		return core.Matrix{}, fmt.Errorf("%w %q: %v", ErrInvalidTransformOp, op, err)
	}
	if len(fields) == 0 {
		return core.Matrix{}, fmt.Errorf("%w: empty op", ErrInvalidTransformOp)
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "identity":
		if err := expectArgs(op, args, 0); err != nil {
			return core.Matrix{}, err
		}
		return core.Identity(), nil

	case "translate":
		v, err := parseFloats(op, args, 3)
		if err != nil {
			return core.Matrix{}, err
		}
		return core.Translation(v[0], v[1], v[2]), nil

	case "scale":
		// A single factor scales uniformly
		if len(args) == 1 {
			v, err := parseFloats(op, args, 1)
			if err != nil {
				return core.Matrix{}, err
			}
			return core.Scaling(v[0], v[0], v[0]), nil
		}
		v, err := parseFloats(op, args, 3)
		if err != nil {
			return core.Matrix{}, err
		}
		return core.Scaling(v[0], v[1], v[2]), nil

	case "rotate-x", "rotate-y", "rotate-z":
		if err := expectArgs(op, args, 1); err != nil {
			return core.Matrix{}, err
		}
		angle, err := parseAngle(args[0])
		if err != nil {
			return core.Matrix{}, fmt.Errorf("%w %q: %v", ErrInvalidTransformOp, op, err)
		}
		switch name {
		case "rotate-x":
			return core.RotationX(angle), nil
		case "rotate-y":
			return core.RotationY(angle), nil
		default:
			return core.RotationZ(angle), nil
		}

	case "shear":
		v, err := parseFloats(op, args, 6)
		if err != nil {
			return core.Matrix{}, err
		}
		return core.Shearing(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	}

	return core.Matrix{}, fmt.Errorf("%w %q: unknown op %q", ErrInvalidTransformOp, op, name)
}

// ParseTransform composes a list of ops, applying the first one first.
// An empty list is the identity.
func ParseTransform(ops []string) (core.Matrix, error) {
	matrices := make([]core.Matrix, 0, len(ops))
	for _, op := range ops {
		m, err := ParseTransformOp(op)
		if err != nil {
			return core.Matrix{}, err
		}
		matrices = append(matrices, m)
	}
	return core.Chain(matrices...), nil
}

func expectArgs(op string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w %q: expected %d arguments, got %d", ErrInvalidTransformOp, op, n, len(args))
	}
	return nil
}

func parseFloats(op string, args []string, n int) ([]float64, error) {
	if err := expectArgs(op, args, n); err != nil {
		return nil, err
	}
	values := make([]float64, n)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: bad number %q", ErrInvalidTransformOp, op, arg)
		}
		values[i] = v
	}
	return values, nil
}

func parseAngle(s string) (float64, error) {
	if deg, ok := strings.CutSuffix(s, "deg"); ok {
		v, err := strconv.ParseFloat(deg, 64)
		if err != nil {
			return 0, err
		}
		return v * math.Pi / 180, nil
	}
	return strconv.ParseFloat(s, 64)
}
