package renderer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RowTask renders one image row. Tasks for different rows must write to
// disjoint parts of the output.
type RowTask func(ctx context.Context, row int) error

// WorkerPool runs row tasks on a fixed number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls task for every row in [0, rows) and waits for all of them.
// The first error or a cancelled context stops rows that have not started yet.
func (wp *WorkerPool) Run(ctx context.Context, rows int, task RowTask) error {
	// Wait always cancels gctx, so only ctx can tell a cancelled render from
	// a finished one
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for row := 0; row < rows; row++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return task(gctx, row)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// Rows skipped by the loop above still count as a failed render
	return ctx.Err()
}
