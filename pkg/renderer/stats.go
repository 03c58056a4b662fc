package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width        int           // Image width
	Height       int           // Image height
	Objects      int           // Objects in the scene
	Workers      int           // Workers used
	LitPixels    int           // Pixels that are not pure black
	RaysCast     int           // Primary rays, one per pixel
	RowsRendered int           // Rows completed
	Elapsed      time.Duration // Wall clock time of the render
}

// TotalPixels returns the number of pixels in the image
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// Coverage is the fraction of pixels that are lit
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels() == 0 {
		return 0
	}
	return float64(s.LitPixels) / float64(s.TotalPixels())
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.RaysCast) / s.Elapsed.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d objects, %d workers, %.1f%% lit, %v (%.0f px/s)",
		s.Width, s.Height, s.Objects, s.Workers, 100*s.Coverage(),
		s.Elapsed.Round(time.Millisecond), s.PixelsPerSecond())
}
