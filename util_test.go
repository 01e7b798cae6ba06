package mvar

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats with an absolute tolerance suitable for derivatives and
// other quantities that accumulate rounding error.
var approx = cmpopts.EquateApprox(0, 1e-6)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// fillRandom sets all control points of mv to random values. Weights of rational
// multivariates are kept positive.
func fillRandom(mv *MV, seed uint64) *MV {
	r := rand.New(rand.NewPCG(seed, 0x6d76))
	for c := mv.PType.firstChannel(); c <= mv.PType.Coords; c++ {
		for i := range mv.Points[c] {
			if c == 0 {
				mv.Points[c][i] = 0.5 + r.Float64()
			} else {
				mv.Points[c][i] = 2*r.Float64() - 1
			}
		}
	}
	return mv
}

// samples returns n evenly spaced parameters covering [lo, hi].
func samples(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

// grid returns all combinations of n samples per axis of mv's domain.
func grid(mv *MV, n int) [][]float64 {
	lengths := make([]int, mv.Dim)
	for i := range lengths {
		lengths[i] = n
	}
	var out [][]float64
	for _, idx := range MeshPositions(lengths) {
		p := make([]float64, mv.Dim)
		for axis, i := range idx {
			lo, hi := mv.Domain(axis)
			p[axis] = samples(lo, hi, n)[i]
		}
		out = append(out, p)
	}
	return out
}

func closeCoord(t *testing.T, pt PointType, want, got Coord, tol float64) {
	t.Helper()
	for c := pt.firstChannel(); c <= pt.Coords; c++ {
		if math.Abs(want[c]-got[c]) > tol {
			t.Errorf("channel %d: got %v, want %v (tolerance %g)", c, got[c], want[c], tol)
		}
	}
}
