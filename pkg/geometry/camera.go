package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Renderable is anything that can resolve the color seen along a ray.
// scene.World satisfies it.
type Renderable interface {
	ColorAt(ray core.Ray) core.Color
	Validate() error
}

// Camera maps pixel coordinates to world-space rays. The canvas sits one unit
// in front of the eye, looking down -z in camera space.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64

	transform core.Matrix
	inverse   core.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity view transform.
// fov is the horizontal or vertical angle in radians, whichever canvas side is longer.
func NewCamera(hsize, vsize int, fov float64) (*Camera, error) {
	c := &Camera{
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
	if err := c.SetSize(hsize, vsize); err != nil {
		return nil, err
	}
	if err := c.SetFieldOfView(fov); err != nil {
		return nil, err
	}
	return c, nil
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// HalfWidth returns half the canvas width in world units
func (c *Camera) HalfWidth() float64 { return c.halfWidth }

// HalfHeight returns half the canvas height in world units
func (c *Camera) HalfHeight() float64 { return c.halfHeight }

// PixelSize returns the world-space size of one pixel
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetTransform sets the view transform. Singular matrices are rejected.
func (c *Camera) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// SetSize changes the canvas dimensions and recomputes the pixel size
func (c *Camera) SetSize(hsize, vsize int) error {
	if hsize <= 0 || vsize <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidCamera, hsize, vsize)
	}
	c.hsize = hsize
	c.vsize = vsize
	if c.fieldOfView > 0 {
		c.computePixelSize()
	}
	return nil
}

// SetFieldOfView changes the field of view and recomputes the pixel size
func (c *Camera) SetFieldOfView(fov float64) error {
	if !(fov > 0 && fov < math.Pi) {
		return fmt.Errorf("%w: field of view %g", ErrInvalidCamera, fov)
	}
	c.fieldOfView = fov
	c.computePixelSize()
	return nil
}

func (c *Camera) computePixelSize() {
	halfView := math.Tan(c.fieldOfView / 2)
	aspect := float64(c.hsize) / float64(c.vsize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}

	c.pixelSize = c.halfWidth * 2 / float64(c.hsize)
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py).
// (0, 0) is the top-left pixel.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xoffset := (float64(px) + 0.5) * c.pixelSize
	yoffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xoffset
	worldY := c.halfHeight - yoffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// RenderRow shades one row of pixels into the canvas
func (c *Camera) RenderRow(world Renderable, canvas *core.Canvas, y int) {
	for x := 0; x < c.hsize; x++ {
		canvas.WritePixel(x, y, world.ColorAt(c.RayForPixel(x, y)))
	}
}

// Render shades every pixel sequentially, top row first
func (c *Camera) Render(world Renderable) (*core.Canvas, error) {
	if err := world.Validate(); err != nil {
		return nil, fmt.Errorf("cannot render: %w", err)
	}

	canvas := core.NewCanvas(c.hsize, c.vsize)
	for y := 0; y < c.vsize; y++ {
		c.RenderRow(world, canvas, y)
	}
	return canvas, nil
}
