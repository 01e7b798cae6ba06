package mvar

import "slices"

// Subdivide splits mv at t along axis into two multivariates covering the parts of the
// domain before and after t.
//
// Bézier multivariates are split with de Casteljau's algorithm, and both halves are
// reparametrized to [0, 1]. Non-periodic B-spline multivariates are split by inserting
// t until its multiplicity equals the order; the halves keep their parametrization.
// Other multivariates result in an [ErrRepresentation] error. t must lie strictly
// inside the axis' domain.
func (mv *MV) Subdivide(t float64, axis int) (*MV, *MV, error) {
	const op = "Subdivide"
	if axis < 0 || axis >= mv.Dim {
		return nil, nil, newError(op, ErrAxis, "axis %d of %d", axis, mv.Dim)
	}
	lo, hi := mv.Domain(axis)
	if t <= lo+Epsilon || t >= hi-Epsilon {
		return nil, nil, newError(op, ErrDomain, "%g not inside (%g, %g)", t, lo, hi)
	}

	switch {
	case mv.GType == Bezier:
		return mv.subdivideBezier(t, axis)
	case mv.GType == BSpline && !mv.Periodic[axis]:
		return mv.subdivideBSpline(t, axis)
	default:
		return nil, nil, newError(op, ErrRepresentation, "cannot subdivide %v axis (periodic: %t)", mv.GType, mv.Periodic[axis])
	}
}

func (mv *MV) subdivideBezier(t float64, axis int) (*MV, *MV, error) {
	k := mv.Orders[axis]
	tmp := make([]float64, k)
	left := mv.Clone()
	right := mv.Clone()
	left.Points = mv.mapFibers(axis, k, func(dst, src []float64) {
		deCasteljau(dst, nil, tmp, src, t)
	})
	right.Points = mv.mapFibers(axis, k, func(dst, src []float64) {
		deCasteljau(nil, dst, tmp, src, t)
	})
	return left, right, nil
}

// deCasteljau subdivides the Bézier polynomial with coefficients src at t. left and
// right, if not nil, receive the coefficients of the two halves. tmp must be as long
// as src.
func deCasteljau(left, right, tmp, src []float64, t float64) {
	k := len(src)
	copy(tmp, src)
	for level := range k {
		if left != nil {
			left[level] = tmp[0]
		}
		if right != nil {
			right[k-1-level] = tmp[k-1-level]
		}
		for i := range k - 1 - level {
			tmp[i] = (1-t)*tmp[i] + t*tmp[i+1]
		}
	}
}

func (mv *MV) subdivideBSpline(t float64, axis int) (*MV, *MV, error) {
	k := mv.Orders[axis]
	mult, first := knotMultiplicity(mv.KnotVectors[axis], t)
	if mult > 0 {
		// Snap onto the existing knot that t is within Epsilon of.
		t = mv.KnotVectors[axis][first]
	}
	full := mv
	for range k - mult {
		full = full.insertKnot(t, axis)
	}
	kv := full.KnotVectors[axis]
	_, s := knotMultiplicity(kv, t)

	left := full.sliceAxis(axis, 0, s, kv[:s+k])
	right := full.sliceAxis(axis, s, full.Lengths[axis], kv[s:])
	return left, right, nil
}

// sliceAxis returns the sub-mesh of mv with indices [from, to) along axis, using kv
// as the new knot vector of that axis.
func (mv *MV) sliceAxis(axis, from, to int, kv []float64) *MV {
	kvs := slices.Clone(mv.KnotVectors)
	kvs[axis] = kv
	lengths := slices.Clone(mv.Lengths)
	lengths[axis] = to - from
	out := mv.derive(lengths, slices.Clone(mv.Orders), slices.Clone(mv.Periodic), kvs)
	out.Points = mv.mapFibers(axis, to-from, func(dst, src []float64) {
		copy(dst, src[from:to])
	})
	return out
}

// InsertKnot returns a copy of the non-periodic B-spline multivariate mv with the knot
// t inserted once into the knot vector of axis, using Boehm's algorithm. The geometry
// is unchanged; the axis gains one control point.
func (mv *MV) InsertKnot(t float64, axis int) (*MV, error) {
	const op = "InsertKnot"
	if axis < 0 || axis >= mv.Dim {
		return nil, newError(op, ErrAxis, "axis %d of %d", axis, mv.Dim)
	}
	if mv.GType != BSpline || mv.Periodic[axis] {
		return nil, newError(op, ErrRepresentation, "cannot insert knots into %v axis (periodic: %t)", mv.GType, mv.Periodic[axis])
	}
	lo, hi := mv.Domain(axis)
	if t <= lo || t >= hi {
		return nil, newError(op, ErrDomain, "%g not inside (%g, %g)", t, lo, hi)
	}
	return mv.insertKnot(t, axis), nil
}

func (mv *MV) insertKnot(t float64, axis int) *MV {
	k := mv.Orders[axis]
	l := mv.Lengths[axis]
	kv := mv.KnotVectors[axis]
	j := KnotSpan(kv, k, l, t)

	alpha := make([]float64, l+1)
	for i := j - k + 2; i <= j; i++ {
		alpha[i] = (t - kv[i]) / (kv[i+k-1] - kv[i])
	}

	newKV := make([]float64, 0, len(kv)+1)
	newKV = append(newKV, kv[:j+1]...)
	newKV = append(newKV, t)
	newKV = append(newKV, kv[j+1:]...)

	kvs := slices.Clone(mv.KnotVectors)
	kvs[axis] = newKV
	lengths := slices.Clone(mv.Lengths)
	lengths[axis] = l + 1
	out := mv.derive(lengths, slices.Clone(mv.Orders), slices.Clone(mv.Periodic), kvs)
	out.Points = mv.mapFibers(axis, l+1, func(dst, src []float64) {
		for i := range l + 1 {
			switch {
			case i <= j-k+1:
				dst[i] = src[i]
			case i <= j:
				dst[i] = alpha[i]*src[i] + (1-alpha[i])*src[i-1]
			default:
				dst[i] = src[i-1]
			}
		}
	})
	return out
}
