package renderer

import "runtime"

// RenderConfig contains configuration for a render
type RenderConfig struct {
	NumWorkers int  // Number of parallel workers (0 = use CPU count)
	Sequential bool // Render on the calling goroutine, one pixel at a time
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0, // Auto-detect CPU count
		Sequential: false,
	}
}

// workers returns the effective worker count
func (c RenderConfig) workers() int {
	if c.Sequential {
		return 1
	}
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
