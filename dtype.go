package vecraster

import "github.com/vecraster/vecraster/internal/dtype"

// DType identifies the numeric type of an output raster band. It is a
// re-export of internal/dtype.DType so Rasterize's signature can reference
// it without exposing the internal package.
type DType = dtype.DType

const (
	DTypeU8  = dtype.U8
	DTypeU16 = dtype.U16
	DTypeU32 = dtype.U32
	DTypeU64 = dtype.U64
	DTypeI8  = dtype.I8
	DTypeI16 = dtype.I16
	DTypeI32 = dtype.I32
	DTypeI64 = dtype.I64
	DTypeF32 = dtype.F32
	DTypeF64 = dtype.F64
)
