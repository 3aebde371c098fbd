package vecraster

import "github.com/vecraster/vecraster/internal/accum"

// Reducer selects how repeated burns to the same pixel combine. It is a
// re-export of internal/accum.Reducer so Rasterize's signature can
// reference it without exposing the internal package.
type Reducer = accum.Reducer

const (
	ReducerSum   = accum.Sum
	ReducerFirst = accum.First
	ReducerLast  = accum.Last
	ReducerMin   = accum.Min
	ReducerMax   = accum.Max
	ReducerCount = accum.Count
	ReducerAny   = accum.Any
)
