package mvar

import (
	"errors"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := newError("MeshSlice", ErrIndex, "index %d on axis of length %d", 5, 3)
	if got, want := err.Error(), "mvar: MeshSlice: index not in mesh: index 5 on axis of length 3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	err = &Error{Op: "Eval", Kind: ErrArity}
	if got, want := err.Error(), "mvar: Eval: dimensions mismatch"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errors.Is(err, ErrArity) || errors.Is(err, ErrDomain) {
		t.Errorf("%v matches the wrong kinds", err)
	}
	var target *Error
	if !errors.As(error(err), &target) || target.Op != "Eval" {
		t.Errorf("errors.As failed for %v", err)
	}
}

func TestCatch(t *testing.T) {
	err := func() (err error) {
		defer Catch(&err)
		panic(newError("Eval", ErrDomain, ""))
	}()
	if !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want %v", err, ErrDomain)
	}

	err = func() (err error) {
		defer Catch(&err)
		return nil
	}()
	if err != nil {
		t.Errorf("got unexpected error %v", err)
	}

	// Foreign panics propagate.
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("got panic %v, want boom", r)
		}
	}()
	func() (err error) {
		defer Catch(&err)
		panic("boom")
	}()
	t.Error("panic was swallowed")
}

func TestValidate(t *testing.T) {
	valid := func() *MV {
		return must(NewBSpline([]int{4, 3}, []int{3, 2}, []bool{false, true}, P(2)))
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("got unexpected error %v", err)
	}

	for _, tc := range []struct {
		name   string
		modify func(mv *MV)
		kind   error
	}{
		{"dimension", func(mv *MV) { mv.Dim = 3 }, ErrArity},
		{"order", func(mv *MV) { mv.Orders[0] = 5 }, ErrInvalid},
		{"knot count", func(mv *MV) { mv.KnotVectors[1] = mv.KnotVectors[1][1:] }, ErrInvalid},
		{"knot order", func(mv *MV) { mv.KnotVectors[0][3] = -1 }, ErrInvalid},
		{"points", func(mv *MV) { mv.Points[2] = mv.Points[2][1:] }, ErrInvalid},
		{"weights", func(mv *MV) { mv.Points[0] = nil }, ErrInvalid},
		{"extra channel", func(mv *MV) { mv.Points[3] = make([]float64, 12) }, ErrInvalid},
		{"basis", func(mv *MV) { mv.GType = 7 }, ErrRepresentation},
		{"periodic bezier", func(mv *MV) { mv.GType = Bezier; mv.Orders = []int{4, 3}; mv.KnotVectors = nil }, ErrInvalid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mv := valid()
			tc.modify(mv)
			if err := mv.Validate(); !errors.Is(err, tc.kind) {
				t.Errorf("got error %v, want %v", err, tc.kind)
			}
		})
	}
}

func TestConstructorErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		kind error
	}{
		{"no axes", second(NewBezier(nil, E(1))), ErrInvalid},
		{"no coordinates", second(NewBezier([]int{2}, E(0))), ErrInvalid},
		{"too many coordinates", second(NewPower([]int{2}, P(MaxCoord+1))), ErrInvalid},
		{"empty axis", second(NewBezier([]int{2, 0}, E(1))), ErrInvalid},
		{"orders", second(NewBSpline([]int{2, 2}, []int{2}, nil, E(1))), ErrArity},
		{"periodic flags", second(NewBSpline([]int{2}, []int{2}, []bool{true, true}, E(1))), ErrArity},
		{"order above length", second(NewBSpline([]int{2}, []int{3}, nil, E(1))), ErrInvalid},
	} {
		if !errors.Is(tc.err, tc.kind) {
			t.Errorf("%s: got error %v, want %v", tc.name, tc.err, tc.kind)
		}
	}

	// Periodic axes may have fewer points than their order.
	mv := must(NewBSpline([]int{2}, []int{3}, []bool{true}, E(1)))
	if err := mv.Validate(); err != nil {
		t.Errorf("got unexpected error %v", err)
	}
}
