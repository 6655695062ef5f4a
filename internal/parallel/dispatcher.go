package parallel

import "image"

// Dispatcher runs a per-tile function over a Grid using a WorkerPool.
type Dispatcher struct {
	pool *WorkerPool
	grid *Grid
}

// NewDispatcher creates a dispatcher with the given number of workers for a
// width x height raster.
func NewDispatcher(workers, width, height int) *Dispatcher {
	return &Dispatcher{
		pool: NewWorkerPool(workers),
		grid: NewGrid(width, height),
	}
}

// Run calls fn once for every tile intersecting dirty and returns when all
// calls have finished.
func (d *Dispatcher) Run(dirty image.Rectangle, fn func(tile image.Rectangle)) {
	tiles := d.grid.TilesIn(dirty)
	work := make([]func(), len(tiles))
	for i, t := range tiles {
		work[i] = func() { fn(t) }
	}
	d.pool.ExecuteAll(work)
}

// Workers returns the pool size.
func (d *Dispatcher) Workers() int {
	return d.pool.Workers()
}

// Close stops the worker pool.
func (d *Dispatcher) Close() {
	d.pool.Close()
}
