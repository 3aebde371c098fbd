package vecraster

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.workers != 0 {
		t.Errorf("default workers = %d, want 0", o.workers)
	}
	if o.allTouched {
		t.Error("default allTouched = true, want false")
	}
	if o.strict {
		t.Error("default strict = true, want false")
	}
	if o.encoding != Dense {
		t.Errorf("default encoding = %v, want Dense", o.encoding)
	}
}

func TestWithWorkers(t *testing.T) {
	o := defaultOptions()
	WithWorkers(8)(&o)
	if o.workers != 8 {
		t.Errorf("workers = %d, want 8", o.workers)
	}
}

func TestWithAllTouched(t *testing.T) {
	o := defaultOptions()
	WithAllTouched(true)(&o)
	if !o.allTouched {
		t.Error("allTouched = false, want true")
	}
}

func TestWithBackground(t *testing.T) {
	o := defaultOptions()
	WithBackground(-9999)(&o)
	if o.background != -9999 {
		t.Errorf("background = %v, want -9999", o.background)
	}
}

func TestWithStrict(t *testing.T) {
	o := defaultOptions()
	WithStrict(true)(&o)
	if !o.strict {
		t.Error("strict = false, want true")
	}
}

func TestWithEncoding(t *testing.T) {
	o := defaultOptions()
	WithEncoding(Sparse)(&o)
	if o.encoding != Sparse {
		t.Errorf("encoding = %v, want Sparse", o.encoding)
	}
}

func TestOptionsComposeInOrder(t *testing.T) {
	o := defaultOptions()
	opts := []RasterizeOption{
		WithWorkers(4),
		WithAllTouched(true),
		WithStrict(true),
		WithEncoding(Sparse),
	}
	for _, apply := range opts {
		apply(&o)
	}
	if o.workers != 4 || !o.allTouched || !o.strict || o.encoding != Sparse {
		t.Errorf("composed options = %+v, unexpected", o)
	}
}
