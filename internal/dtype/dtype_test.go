package dtype

import (
	"math"
	"testing"
)

func TestCastWithinRange(t *testing.T) {
	tests := []struct {
		d    DType
		v    float64
		want float64
	}{
		{U8, 200, 200},
		{U8, 200.9, 200},
		{I8, -100, -100},
		{F32, 3.5, 3.5},
		{F64, 3.14159, 3.14159},
	}
	for _, tt := range tests {
		if got := tt.d.Cast(tt.v); got != tt.want {
			t.Errorf("%v.Cast(%v) = %v, want %v", tt.d, tt.v, got, tt.want)
		}
	}
}

func TestCastOutOfRangeFallsBackToDefaultFill(t *testing.T) {
	tests := []struct {
		d DType
		v float64
	}{
		{U8, 256},
		{U8, -1},
		{I8, 200},
		{I8, -200},
		{U16, -1},
	}
	for _, tt := range tests {
		got := tt.d.Cast(tt.v)
		if got != tt.d.DefaultFill() {
			t.Errorf("%v.Cast(%v) = %v, want DefaultFill() = %v", tt.d, tt.v, got, tt.d.DefaultFill())
		}
	}
}

func TestCastNaNFallsBackToDefaultFill(t *testing.T) {
	for _, d := range []DType{U8, I32, F32, F64} {
		got := d.Cast(math.NaN())
		if want := d.DefaultFill(); got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
			t.Errorf("%v.Cast(NaN) = %v, want %v", d, got, d.DefaultFill())
		}
	}
}

func TestCastInfFallsBackForFloatTypes(t *testing.T) {
	if got, want := F64.Cast(math.Inf(1)), F64.DefaultFill(); got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
		t.Errorf("F64.Cast(+Inf) = %v, want DefaultFill", got)
	}
	if got, want := F32.Cast(math.Inf(-1)), F32.DefaultFill(); got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
		t.Errorf("F32.Cast(-Inf) = %v, want DefaultFill", got)
	}
}

func TestFloat(t *testing.T) {
	for _, d := range []DType{F32, F64} {
		if !d.Float() {
			t.Errorf("%v.Float() = false, want true", d)
		}
	}
	for _, d := range []DType{U8, U16, U32, U64, I8, I16, I32, I64} {
		if d.Float() {
			t.Errorf("%v.Float() = true, want false", d)
		}
	}
}

func TestStringNames(t *testing.T) {
	tests := map[DType]string{
		U8: "u8", U16: "u16", U32: "u32", U64: "u64",
		I8: "i8", I16: "i16", I32: "i32", I64: "i64",
		F32: "f32", F64: "f64",
	}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("DType(%d).String() = %q, want %q", d, got, want)
		}
	}
}
