package mvar

import "fmt"

// Evaluator evaluates multivariates. It owns the scratch buffers evaluation needs and
// grows them as larger dimensions and orders are encountered, so that repeated
// evaluations, as done by subdivision and root finding, don't allocate.
//
// The zero value is ready to use. An Evaluator must not be used by multiple goroutines
// at once; use one Evaluator per goroutine instead. Multivariates aren't modified by
// evaluation and can be shared freely.
type Evaluator struct {
	weights [][]float64
	scratch []float64
	lower   []int
	upper   []int
	params  []float64
	mesh    []float64
	idx     MeshIndex
}

// Eval evaluates mv at params using a call-scoped [Evaluator]. See [Evaluator.Eval].
func (mv *MV) Eval(params []float64) Coord {
	var e Evaluator
	return e.Eval(mv, params)
}

// Eval evaluates mv at params, which must have at least mv.Dim entries.
//
// The result holds the weight in index 0 if mv is rational, and coordinates in indices
// 1 through mv.PType.Coords. Rational results are homogeneous; use [Coord.Euclidean] to
// project them.
//
// Eval panics with an [*Error] of kind [ErrDomain] if a parameter is outside its
// domain by more than [Epsilon], and of kind [ErrRepresentation] if mv's basis is
// unknown. Use [MV.CheckParams] or [Catch] when params come from untrusted input.
//
// Evaluation is deterministic: repeated calls with the same arguments produce
// bit-identical results.
func (e *Evaluator) Eval(mv *MV, params []float64) Coord {
	const op = "Eval"
	if len(params) < mv.Dim {
		panic(newError(op, ErrArity, "%d parameters for dimension %d", len(params), mv.Dim))
	}
	e.grow(mv)
	for axis := range mv.Dim {
		e.lower[axis] = e.basis(op, mv, axis, params[axis])
		e.upper[axis] = e.lower[axis] + mv.Orders[axis]
	}

	switch mv.GType {
	case Power, Bezier:
		return e.contract(mv)
	case BSpline:
		return e.sum(mv)
	default:
		panic(newError(op, ErrRepresentation, "%v", mv.GType))
	}
}

// grow makes sure the scratch buffers can hold mv.
func (e *Evaluator) grow(mv *MV) {
	if len(e.weights) < mv.Dim {
		e.weights = append(e.weights, make([][]float64, mv.Dim-len(e.weights))...)
		e.lower = make([]int, mv.Dim)
		e.upper = make([]int, mv.Dim)
		e.params = make([]float64, mv.Dim)
	}
	maxOrder := 0
	for axis, k := range mv.Orders {
		if len(e.weights[axis]) < k {
			e.weights[axis] = make([]float64, k)
		}
		maxOrder = max(maxOrder, k)
	}
	if len(e.scratch) < 2*maxOrder {
		e.scratch = make([]float64, 2*maxOrder)
	}
}

// basis computes the basis functions of one axis into e.weights[axis] and returns the
// index of the first contributing control point.
func (e *Evaluator) basis(op string, mv *MV, axis int, t float64) int {
	var kv []float64
	if mv.GType == BSpline {
		kv = mv.KnotVectors[axis]
	}
	first, err := basisInto(e.weights[axis], e.scratch, mv.GType, mv.Orders[axis], mv.Lengths[axis], kv, mv.Periodic[axis], t)
	if err != nil {
		err := err.(*Error)
		err.Op = op
		err.Detail = fmt.Sprintf("axis %d: %s", axis, err.Detail)
		panic(err)
	}
	return first
}

// contract evaluates Power and Bézier multivariates, whose basis functions have
// global support. Starting from the outermost (slowest varying) axis, every step
// collapses one axis of the mesh by weighting its points with that axis' basis
// functions, until a single point remains. The first step reads from the control mesh
// and writes into a scratch buffer; later steps work in place.
func (e *Evaluator) contract(mv *MV) Coord {
	var res Coord
	n := mv.PointCount()
	if mv.Dim > 1 {
		if size := n / mv.Lengths[mv.Dim-1]; len(e.mesh) < size {
			e.mesh = make([]float64, size)
		}
	}

	for c := mv.PType.firstChannel(); c <= mv.PType.Coords; c++ {
		src := mv.Points[c]
		size := n
		for axis := mv.Dim - 1; axis >= 0; axis-- {
			k := mv.Lengths[axis]
			w := e.weights[axis][:k]
			size /= k
			if axis == 0 {
				var s float64
				for i, wi := range w {
					s += wi * src[i]
				}
				res[c] = s
				break
			}
			// dst[j] only depends on src[j+i*size] for i >= 0, so writing dst[j]
			// never clobbers a value that's still needed.
			dst := e.mesh[:size]
			for j := range size {
				var s float64
				for i, wi := range w {
					s += wi * src[j+i*size]
				}
				dst[j] = s
			}
			src = dst
		}
	}
	return res
}

// sum evaluates B-spline multivariates by summing over the Cartesian product of the
// per-axis support windows [e.lower, e.upper), weighting every control point with the
// product of its basis functions.
func (e *Evaluator) sum(mv *MV) Coord {
	var res Coord
	first := mv.PType.firstChannel()
	last := mv.PType.Coords

	e.idx.init(mv.Lengths, mv.Periodic)
	e.idx.Reset(e.lower[:mv.Dim])
	for {
		idx := e.idx.Index()
		w := 1.0
		for axis, i := range idx {
			w *= e.weights[axis][i-e.lower[axis]]
		}
		off := e.idx.Offset()
		for c := first; c <= last; c++ {
			res[c] += w * mv.Points[c][off]
		}
		if !e.idx.NextPeriodic(e.lower, e.upper) {
			break
		}
	}
	return res
}
