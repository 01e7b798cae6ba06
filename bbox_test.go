package mvar

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBBox(t *testing.T) {
	mv := must(NewBezier([]int{2, 2}, E(2)))
	copy(mv.Points[1], []float64{0, 3, -1, 2})
	copy(mv.Points[2], []float64{5, 5, 4, 6})
	b := mv.BBox()
	diff(t, BBox{Min: []float64{-1, 4}, Max: []float64{3, 6}}, b)

	// The multivariate lies inside the hull of its control points.
	for _, p := range grid(mv, 6) {
		c := mv.Eval(p)
		if !b.Contains(c[1:3]) {
			t.Errorf("%v: %v not inside %v", p, c.Format(mv.PType), b)
		}
	}
}

func TestBBoxRational(t *testing.T) {
	mv := must(NewBezier([]int{3}, P(1)))
	copy(mv.Points[0], []float64{1, 2, 4})
	copy(mv.Points[1], []float64{1, 6, 2})
	diff(t, BBox{Min: []float64{0.5}, Max: []float64{3}}, mv.BBox())
}

func TestBBoxOps(t *testing.T) {
	a := BBox{Min: []float64{0, 0}, Max: []float64{1, 1}}
	b := BBox{Min: []float64{0.5, 2}, Max: []float64{3, 3}}
	diff(t, BBox{Min: []float64{0, 0}, Max: []float64{3, 3}}, a.Union(b))
	if a.Overlaps(b) {
		t.Errorf("%v and %v overlap", a, b)
	}
	c := BBox{Min: []float64{1, 1}, Max: []float64{2, 2}}
	if !a.Overlaps(c) || !c.Overlaps(a) {
		t.Errorf("%v and %v don't overlap", a, c)
	}
	if a.Contains([]float64{0.5, 1.5}) {
		t.Errorf("%v contains point outside", a)
	}

	want := r3.Box{Min: r3.Vec{X: 0, Y: 0}, Max: r3.Vec{X: 1, Y: 1}}
	if got := a.Box3(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScaleTranslate(t *testing.T) {
	for _, mv := range []*MV{
		fillRandom(must(NewBSpline([]int{4, 3}, []int{3, 2}, nil, E(3))), 1),
		fillRandom(must(NewBezier([]int{3, 3}, P(3))), 2),
	} {
		t.Run(mv.PType.String(), func(t *testing.T) {
			offset := []float64{1, -2, 0.5}
			moved := mv.Scale(2).Translate(offset)
			var e Evaluator
			for _, p := range grid(mv, 4) {
				want := e.Eval(mv, p).Euclidean(mv.PType)
				for i, d := range offset {
					want[i+1] = 2*want[i+1] + d
				}
				got := e.Eval(moved, p).Euclidean(mv.PType)
				closeCoord(t, E(3), want, got, 1e-13)
				if vec := got.Vec3(mv.PType); vec.X != got[1] || vec.Z != got[3] {
					t.Errorf("got Vec3 %v for %v", vec, got.Format(mv.PType))
				}
			}
		})
	}

	// Missing offsets are zero and the source is untouched.
	mv := must(NewBezier([]int{2}, E(2)))
	copy(mv.Points[1], []float64{1, 2})
	moved := mv.Translate([]float64{10})
	diff(t, []float64{11, 12}, moved.Points[1])
	diff(t, []float64{0, 0}, moved.Points[2])
	diff(t, []float64{1, 2}, mv.Points[1])
}
