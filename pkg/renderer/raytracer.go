package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RowCallback reports a finished row along with how many rows are done.
// Calls are serialized, so completed increases by one each time.
type RowCallback func(row, completed, total int)

// Raytracer renders a scene's camera view of its world
type Raytracer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger
	onRow  RowCallback
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// SetRowCallback registers a progress callback
func (rt *Raytracer) SetRowCallback(cb RowCallback) {
	rt.onRow = cb
}

// Render shades every pixel. Rows are spread across the worker pool and
// each row is written by exactly one worker, so the result matches a
// sequential render pixel for pixel.
func (rt *Raytracer) Render(ctx context.Context) (*core.Canvas, RenderStats, error) {
	if err := rt.scene.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("cannot render: %w", err)
	}

	camera := rt.scene.Camera
	world := rt.scene.World
	width, height := camera.HSize(), camera.VSize()
	canvas := core.NewCanvas(width, height)

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Objects: rt.scene.GetObjectCount(),
		Workers: rt.config.workers(),
	}

	rt.logger.Printf("Rendering %s: %dx%d, %d objects, %d workers\n",
		rt.scene.Name, width, height, stats.Objects, stats.Workers)
	start := time.Now()

	var mu sync.Mutex
	renderRow := func(ctx context.Context, y int) error {
		camera.RenderRow(world, canvas, y)

		lit := 0
		for _, px := range canvas.Row(y) {
			if px != core.Black() {
				lit++
			}
		}

		mu.Lock()
		defer mu.Unlock()
		stats.LitPixels += lit
		stats.RaysCast += width
		stats.RowsRendered++
		if rt.onRow != nil {
			rt.onRow(y, stats.RowsRendered, height)
		}
		return nil
	}

	var err error
	if rt.config.Sequential {
		for y := 0; y < height && err == nil; y++ {
			if err = ctx.Err(); err == nil {
				err = renderRow(ctx, y)
			}
		}
	} else {
		err = NewWorkerPool(stats.Workers).Run(ctx, height, renderRow)
	}

	stats.Elapsed = time.Since(start)
	if err != nil {
		rt.logger.Printf("Render of %s stopped after %d/%d rows: %v\n",
			rt.scene.Name, stats.RowsRendered, height, err)
		return nil, stats, err
	}

	rt.logger.Printf("Render complete: %s\n", stats)
	return canvas, stats, nil
}
