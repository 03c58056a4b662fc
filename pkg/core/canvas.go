package core

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a fixed-size buffer of linear colors, row-major
type Canvas struct {
	Width  int
	Height int
	Pixels []Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel stores a color; writes outside the canvas are ignored
func (c *Canvas) WritePixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.Pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y), or black outside the canvas
func (c *Canvas) PixelAt(x, y int) Color {
	if !c.inBounds(x, y) {
		return Color{}
	}
	return c.Pixels[y*c.Width+x]
}

// Row returns the slice backing row y. Rows are disjoint, so concurrent
// writers may each own one.
func (c *Canvas) Row(y int) []Color {
	return c.Pixels[y*c.Width : (y+1)*c.Width]
}

// toByte scales a channel to [0, 255], rounding and clamping
func toByte(v float64) uint8 {
	return uint8(math.Round(max(0, min(1, v)) * 255))
}

// WritePPM encodes the canvas as plain-text P3. Every row ends with a space
// after its last triplet followed by a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("P3\n")
	bw.WriteString(strconv.Itoa(c.Width) + " " + strconv.Itoa(c.Height) + "\n")
	bw.WriteString("255\n")

	buf := make([]byte, 0, 16)
	for y := 0; y < c.Height; y++ {
		for _, px := range c.Row(y) {
			for _, v := range [3]float64{px.R, px.G, px.B} {
				buf = strconv.AppendUint(buf[:0], uint64(toByte(v)), 10)
				buf = append(buf, ' ')
				bw.Write(buf)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PPM returns the P3 encoding as a string
func (c *Canvas) PPM() string {
	var sb strings.Builder
	c.WritePPM(&sb)
	return sb.String()
}

// ToRGBA converts the canvas to an 8-bit image with clamped channels
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x, px := range c.Row(y) {
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(px.R),
				G: toByte(px.G),
				B: toByte(px.B),
				A: 255,
			})
		}
	}
	return img
}
