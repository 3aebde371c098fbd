package scanfill

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ScratchPool reuses the []polyEdge/[]lineEdge slices each worker needs per
// feature, avoiding an allocation per burn in the hot path. Adapted from
// the teacher's cache/sharded.go sharded-reuse idea, simplified to a single
// sync.Pool per edge kind since scan-fill scratch has no cross-goroutine
// key to shard on — each worker goroutine borrows and returns its own
// slice.
type ScratchPool struct {
	polyEdges sync.Pool
	lineEdges sync.Pool
	hints     *edgeCapacityHints
}

// NewScratchPool builds a scratch pool for callers outside this package;
// the parallel orchestrator allocates one per worker slab and passes it
// back into Burn.
func NewScratchPool() *ScratchPool {
	return newScratchPool()
}

// edgeCapacityHintsCapacity bounds the LRU tracking per-geometry edge
// counts inside one ScratchPool.
const edgeCapacityHintsCapacity = 4096

func newScratchPool() *ScratchPool {
	return &ScratchPool{
		polyEdges: sync.Pool{New: func() any { return make([]polyEdge, 0, 64) }},
		lineEdges: sync.Pool{New: func() any { return make([]lineEdge, 0, 64) }},
		hints:     newEdgeCapacityHints(edgeCapacityHintsCapacity),
	}
}

func (p *ScratchPool) getPolyEdges() []polyEdge {
	return p.polyEdges.Get().([]polyEdge)[:0]
}

func (p *ScratchPool) putPolyEdges(s []polyEdge) {
	p.polyEdges.Put(s) //nolint:staticcheck // reused by value, not escaping
}

func (p *ScratchPool) getLineEdges() []lineEdge {
	return p.lineEdges.Get().([]lineEdge)[:0]
}

func (p *ScratchPool) putLineEdges(s []lineEdge) {
	p.lineEdges.Put(s) //nolint:staticcheck
}

// getPolyEdgesFor is getPolyEdges pre-sized to geometryID's last recorded
// edge count, so a large ring's first append after a Get doesn't
// immediately trigger a doubling grow the way a fresh 64-capacity slice
// would.
func (p *ScratchPool) getPolyEdgesFor(geometryID uintptr) []polyEdge {
	s := p.getPolyEdges()
	if hint := p.hints.Hint(geometryID); hint > cap(s) {
		s = make([]polyEdge, 0, hint)
	}
	return s
}

// recordPolyEdgeCount remembers how many edges geometryID's last burn
// needed, for getPolyEdgesFor's next pre-sizing.
func (p *ScratchPool) recordPolyEdgeCount(geometryID uintptr, n int) {
	p.hints.Record(geometryID, n)
}

// edgeCapacityHints remembers, per geometry identity, how many edges the
// last burn needed, so ScratchPool can pre-size instead of growing by
// doubling every time. An LRU (rather than an unbounded map) caps its
// memory. Hints live as long as their ScratchPool; the parallel
// orchestrator builds new pools on every run, so hints are not carried
// from one Rasterize call to the next.
type edgeCapacityHints struct {
	cache *lru.Cache[uintptr, int]
}

// newEdgeCapacityHints builds a bounded hint cache. capacity <= 0 disables
// hinting (Hint always reports the zero value, Record is a no-op).
func newEdgeCapacityHints(capacity int) *edgeCapacityHints {
	if capacity <= 0 {
		return &edgeCapacityHints{}
	}
	c, _ := lru.New[uintptr, int](capacity)
	return &edgeCapacityHints{cache: c}
}

// Hint returns the last recorded edge count for geometryID, or 0 if none.
func (h *edgeCapacityHints) Hint(geometryID uintptr) int {
	if h.cache == nil {
		return 0
	}
	n, _ := h.cache.Get(geometryID)
	return n
}

// Record remembers the edge count a burn needed for geometryID.
func (h *edgeCapacityHints) Record(geometryID uintptr, n int) {
	if h.cache == nil {
		return
	}
	h.cache.Add(geometryID, n)
}
