package mvar

import (
	"errors"
	"math"
	"testing"
)

// quadratic returns the scalar Bézier surface f(u, v) = u² + v.
func quadratic() *MV {
	mv := must(NewBezier([]int{3, 2}, E(1)))
	copy(mv.Points[1], []float64{0, 0, 1, 1, 1, 2})
	return mv
}

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / max(math.Abs(want), 1)
}

func TestGradientNumeric(t *testing.T) {
	mv := quadratic()
	var e Evaluator
	for _, p := range grid(mv, 7) {
		grad, _, hasValue := e.Gradient(mv, p)
		if hasValue {
			t.Fatalf("%v: numeric gradient reports a value", p)
		}
		want := []float64{2 * p[0], 1}
		for i := range want {
			if relErr(grad[i], want[i]) > 1e-4 {
				t.Errorf("%v: got ∂%d = %v, want %v", p, i, grad[i], want[i])
			}
		}
	}
}

func TestGradientUpperBoundary(t *testing.T) {
	// Stepping past the end of the domain is impossible, so the difference is taken
	// backwards.
	mv := must(NewBSpline([]int{4}, []int{3}, nil, E(1)))
	copy(mv.Points[1], []float64{0, 1, 3, 2})
	grad, _, _ := mv.Gradient([]float64{1})
	// The end derivative of a clamped quadratic B-spline with uniform knots 0, 1/2, 1
	// is 2/(1/2) * (p3 - p2).
	if relErr(grad[0], -4) > 1e-4 {
		t.Errorf("got %v, want -4", grad[0])
	}
}

func TestGradientRational(t *testing.T) {
	mv := must(NewBezier([]int{3}, P(1)))
	copy(mv.Points[0], []float64{1, 2, 1})
	copy(mv.Points[1], []float64{0, 1, 3})
	f := func(u float64) float64 { return mv.Eval([]float64{u}).Value(mv.PType) }
	const h = 1e-5
	for _, u := range samples(0.1, 0.9, 9) {
		want := (f(u+h) - f(u-h)) / (2 * h)
		grad, _, _ := mv.Gradient([]float64{u})
		if relErr(grad[0], want) > 1e-4 {
			t.Errorf("t=%g: got %v, want %v", u, grad[0], want)
		}
	}
}

func TestGradientField(t *testing.T) {
	mv := quadratic()
	g := must(NewBezier([]int{3, 2}, E(3)))
	copy(g.Points[1], []float64{0, 1, 2, 0, 1, 2})
	copy(g.Points[2], []float64{1, 1, 1, 1, 1, 1})
	copy(g.Points[3], mv.Points[1])
	if err := mv.AttachGradient(g); err != nil {
		t.Fatal(err)
	}
	if mv.GradientField() != g {
		t.Fatal("attached field not returned")
	}

	var e Evaluator
	for _, p := range grid(mv, 5) {
		grad, value, hasValue := e.Gradient(mv, p)
		if !hasValue {
			t.Fatalf("%v: field with value reports no value", p)
		}
		diff(t, []float64{2 * p[0], 1}, grad, approx)
		if want := p[0]*p[0] + p[1]; math.Abs(value-want) > 1e-14 {
			t.Errorf("%v: got value %v, want %v", p, value, want)
		}
	}

	// Derived multivariates don't inherit the field.
	if mv.Clone().GradientField() != nil {
		t.Error("clone kept the gradient field")
	}

	if err := mv.AttachGradient(nil); err != nil {
		t.Fatal(err)
	}
	if mv.GradientField() != nil {
		t.Error("field still attached after detaching")
	}
}

func TestGradientFieldWithoutValue(t *testing.T) {
	mv := quadratic()
	g := must(NewBezier([]int{3, 2}, E(2)))
	copy(g.Points[1], []float64{0, 1, 2, 0, 1, 2})
	copy(g.Points[2], []float64{1, 1, 1, 1, 1, 1})
	if err := mv.AttachGradient(g); err != nil {
		t.Fatal(err)
	}

	grad, _, hasValue := mv.Gradient([]float64{0.25, 0.5})
	if hasValue {
		t.Error("field without value reports a value")
	}
	diff(t, []float64{0.5, 1}, grad, approx)
}

func TestAttachGradientErrors(t *testing.T) {
	mv := quadratic()
	for _, tc := range []struct {
		name string
		mv   *MV
		g    *MV
		kind error
	}{
		{"vector", must(NewBezier([]int{3, 2}, E(2))), must(NewBezier([]int{3, 2}, E(2))), ErrScalarExpected},
		{"dimension", mv, must(NewBezier([]int{3}, E(1))), ErrArity},
		{"coordinates", mv, must(NewBezier([]int{3, 2}, E(4))), ErrArity},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.mv.AttachGradient(tc.g); !errors.Is(err, tc.kind) {
				t.Errorf("got error %v, want %v", err, tc.kind)
			}
		})
	}
}

func TestGradientNonScalar(t *testing.T) {
	mv := must(NewBezier([]int{2, 2}, E(2)))
	err := func() (err error) {
		defer Catch(&err)
		mv.Gradient([]float64{0.5, 0.5})
		return nil
	}()
	if !errors.Is(err, ErrScalarExpected) {
		t.Errorf("got error %v, want %v", err, ErrScalarExpected)
	}
}

func TestTangentHyperplane(t *testing.T) {
	mv := quadratic()
	var e Evaluator
	for _, p := range grid(mv, 5) {
		h := e.TangentHyperplane(mv, p)
		if len(h.Coeffs) != mv.Dim+1 || h.Coeffs[mv.Dim] != 1 {
			t.Fatalf("%v: malformed hyperplane %v", p, h)
		}
		x := append(p[:mv.Dim:mv.Dim], e.Eval(mv, p)[1])
		if d := h.Distance(x); math.Abs(d) > 1e-6 {
			t.Errorf("%v: graph point has distance %v", p, d)
		}
	}

	// The tangent hyperplane of an affine function contains its whole graph.
	lin := must(NewBezier([]int{2, 2}, E(1)))
	copy(lin.Points[1], []float64{0, 2, 3, 5})
	h := lin.TangentHyperplane([]float64{0.4, 0.7})
	diff(t, []float64{-2, -3, 1}, h.Coeffs, approx)
	for _, p := range grid(lin, 4) {
		x := append(p[:2:2], 2*p[0]+3*p[1])
		if d := h.Distance(x); math.Abs(d) > 1e-6 {
			t.Errorf("%v: graph point has distance %v", p, d)
		}
	}
}
