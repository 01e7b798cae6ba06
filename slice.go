package mvar

import "slices"

// derive returns a multivariate with mv's basis and point type and the given
// per-axis data, with freshly allocated knot vectors and no points.
func (mv *MV) derive(lengths, orders []int, periodic []bool, kvs [][]float64) *MV {
	out := &MV{
		Dim:      len(lengths),
		GType:    mv.GType,
		PType:    mv.PType,
		Lengths:  lengths,
		Orders:   orders,
		Periodic: periodic,
	}
	if mv.GType == BSpline {
		out.KnotVectors = make([][]float64, len(kvs))
		for i, kv := range kvs {
			out.KnotVectors[i] = slices.Clone(kv)
		}
	}
	return out
}

// withoutAxis returns a multivariate without points that has all of mv's axes except
// axis.
func (mv *MV) withoutAxis(axis int) *MV {
	var kvs [][]float64
	if mv.GType == BSpline {
		kvs = slices.Delete(slices.Clone(mv.KnotVectors), axis, axis+1)
	}
	return mv.derive(
		slices.Delete(slices.Clone(mv.Lengths), axis, axis+1),
		slices.Delete(slices.Clone(mv.Orders), axis, axis+1),
		slices.Delete(slices.Clone(mv.Periodic), axis, axis+1),
		kvs,
	)
}

// mapFibers applies fn to every line of the control mesh parallel to axis. src holds
// the Lengths[axis] coefficients of a line; fn must fill all of dst, which has newLen
// entries. The returned channels form a mesh whose axis has length newLen.
func (mv *MV) mapFibers(axis, newLen int, fn func(dst, src []float64)) [MaxCoord + 1][]float64 {
	var pts [MaxCoord + 1][]float64
	l := mv.Lengths[axis]
	inner := 1
	for _, n := range mv.Lengths[:axis] {
		inner *= n
	}
	outer := mv.PointCount() / (inner * l)

	src := make([]float64, l)
	dst := make([]float64, newLen)
	for c := mv.PType.firstChannel(); c <= mv.PType.Coords; c++ {
		in := mv.Points[c]
		out := make([]float64, inner*newLen*outer)
		for h := range outer {
			for lo := range inner {
				for a := range l {
					src[a] = in[(h*l+a)*inner+lo]
				}
				fn(dst, src)
				for a := range newLen {
					out[(h*newLen+a)*inner+lo] = dst[a]
				}
			}
		}
		pts[c] = out
	}
	return pts
}

// IsoManifold returns the (Dim-1)-dimensional multivariate obtained by fixing the
// parameter of axis at t. Every point of the result is the weighted sum of the at
// most Orders[axis] control points along axis that contribute at t.
//
// It returns an error of kind [ErrAxis] if axis is out of range, [ErrDomain] if t is
// outside the axis' domain and [ErrArity] if mv is one-dimensional.
func (mv *MV) IsoManifold(t float64, axis int) (*MV, error) {
	const op = "IsoManifold"
	if axis < 0 || axis >= mv.Dim {
		return nil, newError(op, ErrAxis, "axis %d of %d", axis, mv.Dim)
	}
	if mv.Dim < 2 {
		return nil, newError(op, ErrArity, "cannot reduce a multivariate of dimension %d", mv.Dim)
	}
	b, err := mv.AxisBasis(axis, t)
	if err != nil {
		err := err.(*Error)
		err.Op = op
		return nil, err
	}

	l := mv.Lengths[axis]
	out := mv.withoutAxis(axis)
	// A mesh with an axis of length 1 has the same layout as the mesh without it.
	out.Points = mv.mapFibers(axis, 1, func(dst, src []float64) {
		var s float64
		for i, w := range b.Weights {
			s += w * src[(b.First+i)%l]
		}
		dst[0] = s
	})
	return out, nil
}

// MeshSlice returns the (Dim-1)-dimensional multivariate formed by the control points
// whose index along axis is index. No interpolation takes place.
//
// It returns an error of kind [ErrAxis] if axis is out of range, [ErrIndex] if index
// is outside [0, Lengths[axis]) and [ErrArity] if mv is one-dimensional.
func (mv *MV) MeshSlice(index, axis int) (*MV, error) {
	const op = "MeshSlice"
	if axis < 0 || axis >= mv.Dim {
		return nil, newError(op, ErrAxis, "axis %d of %d", axis, mv.Dim)
	}
	if index < 0 || index >= mv.Lengths[axis] {
		return nil, newError(op, ErrIndex, "index %d on axis of length %d", index, mv.Lengths[axis])
	}
	if mv.Dim < 2 {
		return nil, newError(op, ErrArity, "cannot reduce a multivariate of dimension %d", mv.Dim)
	}

	out := mv.withoutAxis(axis)
	lower := make([]int, mv.Dim)
	upper := slices.Clone(mv.Lengths)
	lower[axis], upper[axis] = index, index+1
	n := mv.PointCount() / mv.Lengths[axis]

	m := NewMeshIndex(mv.Lengths, nil)
	for c := mv.PType.firstChannel(); c <= mv.PType.Coords; c++ {
		in := mv.Points[c]
		pts := make([]float64, 0, n)
		m.Reset(lower)
		for {
			pts = append(pts, in[m.Offset()])
			if !m.NextBounded(lower, upper) {
				break
			}
		}
		out.Points[c] = pts
	}
	return out, nil
}

// ExpandDimension returns a multivariate with one more dimension, whose last axis has
// the given order and no effect on the value: every slice along the new axis is a
// copy of mv's mesh. B-spline multivariates get an open uniform knot vector over
// [0, 1] on the new axis.
//
// Power multivariates are the exception: only the constant coefficient slice is a
// copy of mv's mesh and the others are zero, because the power basis does not sum to
// one.
func (mv *MV) ExpandDimension(order int) (*MV, error) {
	if order < 1 {
		return nil, newError("ExpandDimension", ErrInvalid, "order %d", order)
	}
	var kvs [][]float64
	if mv.GType == BSpline {
		kvs = append(slices.Clone(mv.KnotVectors), OpenUniformKnots(order, order))
	}
	out := mv.derive(
		append(slices.Clone(mv.Lengths), order),
		append(slices.Clone(mv.Orders), order),
		append(slices.Clone(mv.Periodic), false),
		kvs,
	)

	copies := order
	if mv.GType == Power {
		copies = 1
	}
	n := mv.PointCount()
	for c := mv.PType.firstChannel(); c <= mv.PType.Coords; c++ {
		pts := make([]float64, n*order)
		for s := range copies {
			copy(pts[s*n:(s+1)*n], mv.Points[c])
		}
		out.Points[c] = pts
	}
	return out, nil
}
