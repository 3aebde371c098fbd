// Package parallel distributes rasterization work across a WorkerPool.
// Adapted from the teacher's tile-canvas rasterizer: where the teacher
// slices a pixel canvas into fixed tiles and hands one tile per work item,
// Orchestrator slices a feature list into burn Jobs and hands one feature
// per work item, since geometries (not pixels) are this engine's unit of
// independent work.
package parallel

import (
	"sync/atomic"

	"github.com/vecraster/vecraster/internal/accum"
	"github.com/vecraster/vecraster/internal/affine"
	"github.com/vecraster/vecraster/internal/geom"
	"github.com/vecraster/vecraster/internal/scanfill"
)

// Job is one feature queued to burn its geometry into a specific band.
// FeatureIdx carries the feature's original position in the caller's
// input slice, used to break first/last ties deterministically at merge
// time regardless of which worker or slab processed it.
type Job struct {
	Band       int
	FeatureIdx int64
	Geometry   geom.Geometry
	Value      float64
}

// Orchestrator burns a slice of Jobs across a WorkerPool into per-band
// accumulator slabs, then merges the slabs deterministically. One slab per
// worker avoids a shared lock on the hot per-pixel Write path; WorkerPool's
// ExecuteSlabbed serializes jobs that land on the same slab (which can
// happen once work-stealing moves a job off its home worker) while distinct
// slabs still burn fully in parallel, and the pool's work-stealing itself
// keeps slow workers (coastline-sized geometries) from stalling fast ones.
type Orchestrator struct {
	pool       *WorkerPool
	transform  affine.Transform
	rows, cols int
	reducer    accum.Reducer
	allTouched bool
}

// NewOrchestrator builds an orchestrator that burns into a Rows x Cols
// raster using reducer, via workers goroutines (<=0 resolves to
// GOMAXPROCS, matching WorkerPool's own convention).
func NewOrchestrator(workers int, transform affine.Transform, rows, cols int, reducer accum.Reducer, allTouched bool) *Orchestrator {
	return &Orchestrator{
		pool:       NewWorkerPool(workers),
		transform:  transform,
		rows:       rows,
		cols:       cols,
		reducer:    reducer,
		allTouched: allTouched,
	}
}

// Close releases the underlying worker pool.
func (o *Orchestrator) Close() {
	o.pool.Close()
}

// Workers reports how many goroutines the underlying pool runs.
func (o *Orchestrator) Workers() int {
	return o.pool.Workers()
}

// RunDense burns jobs into bands dense per-pixel writers, one fully merged
// DenseWriter per band. degenerate is the total count of malformed rings
// skipped across every job.
func (o *Orchestrator) RunDense(jobs []Job, bands int) (writers []*accum.DenseWriter, degenerate int) {
	slabCount := o.pool.Workers()

	slabs := make([][]*accum.DenseWriter, bands)
	for b := range slabs {
		slabs[b] = make([]*accum.DenseWriter, slabCount)
		for s := range slabs[b] {
			slabs[b][s] = accum.NewDenseWriter(o.reducer, o.rows, o.cols)
		}
	}

	scratch := make([]*scanfill.ScratchPool, slabCount)
	for s := range scratch {
		scratch[s] = scanfill.NewScratchPool()
	}

	var degenerateCount atomic.Int64
	o.pool.ExecuteSlabbed(len(jobs), func(i, slabIdx int) {
		job := jobs[i]
		o.burn(job, slabs[job.Band][slabIdx], scratch[slabIdx], &degenerateCount)
	})

	writers = make([]*accum.DenseWriter, bands)
	for b := 0; b < bands; b++ {
		merged := slabs[b][0]
		for s := 1; s < slabCount; s++ {
			merged.Merge(slabs[b][s])
		}
		writers[b] = merged
	}
	return writers, int(degenerateCount.Load())
}

// RunSparse burns jobs into per-band SparseWriters, one fully merged
// (but not yet folded) writer per band. Callers fold each band's writer
// themselves, after deciding whether to do so lazily.
func (o *Orchestrator) RunSparse(jobs []Job, bands int) (writers []*accum.SparseWriter, degenerate int) {
	slabCount := o.pool.Workers()

	slabs := make([][]*accum.SparseWriter, bands)
	for b := range slabs {
		slabs[b] = make([]*accum.SparseWriter, slabCount)
		for s := range slabs[b] {
			slabs[b][s] = accum.NewSparseWriter(o.reducer, b)
		}
	}

	scratch := make([]*scanfill.ScratchPool, slabCount)
	for s := range scratch {
		scratch[s] = scanfill.NewScratchPool()
	}

	var degenerateCount atomic.Int64
	o.pool.ExecuteSlabbed(len(jobs), func(i, slabIdx int) {
		job := jobs[i]
		o.burn(job, slabs[job.Band][slabIdx], scratch[slabIdx], &degenerateCount)
	})

	writers = make([]*accum.SparseWriter, bands)
	for b := 0; b < bands; b++ {
		merged := slabs[b][0]
		for s := 1; s < slabCount; s++ {
			merged.Merge(slabs[b][s])
		}
		writers[b] = merged
	}
	return writers, int(degenerateCount.Load())
}

func (o *Orchestrator) burn(job Job, writer accum.PixelWriter, scratch *scanfill.ScratchPool, degenerate *atomic.Int64) {
	scanfill.Burn(scanfill.Job{
		Transform:  o.transform,
		Rows:       o.rows,
		Cols:       o.cols,
		AllTouched: o.allTouched,
		FeatureIdx: job.FeatureIdx,
		Value:      job.Value,
		Writer:     writer,
	}, job.Geometry, scratch, func() { degenerate.Add(1) })
}
