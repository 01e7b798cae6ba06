package mvar

// Basis holds the nonzero basis functions of one axis at one parameter value.
type Basis struct {
	// Weights has one entry per contributing control point; its length is the order of
	// the axis.
	Weights []float64
	// First is the index of the control point that Weights[0] applies to. It is always
	// 0 for Power and Bézier bases. On periodic axes First+i may exceed the axis
	// length, in which case it wraps around to (First+i) mod length.
	First int
}

// BasisFuncs evaluates the nonzero basis functions of an axis at t.
//
// kv and periodic are only used for B-splines. For B-splines length is the number of
// distinct control points and kv must have length+order knots, or length+2*order-1 for
// periodic axes. Power and Bézier bases require order == length and are defined on
// [0, 1]. Parameters within [Epsilon] of the domain are clamped onto it; parameters
// farther away result in an [ErrDomain] error.
func BasisFuncs(gtype GeomType, order, length int, kv []float64, periodic bool, t float64) (Basis, error) {
	b := Basis{Weights: make([]float64, order)}
	var err error
	b.First, err = basisInto(b.Weights, make([]float64, 2*order), gtype, order, length, kv, periodic, t)
	if err != nil {
		return Basis{}, err
	}
	return b, nil
}

// AxisBasis evaluates the nonzero basis functions of one axis of the multivariate. It
// returns an error of kind [ErrAxis] or [ErrDomain] for invalid input.
func (mv *MV) AxisBasis(axis int, t float64) (Basis, error) {
	if axis < 0 || axis >= mv.Dim {
		return Basis{}, newError("AxisBasis", ErrAxis, "axis %d of %d", axis, mv.Dim)
	}
	var kv []float64
	if mv.GType == BSpline {
		kv = mv.KnotVectors[axis]
	}
	return BasisFuncs(mv.GType, mv.Orders[axis], mv.Lengths[axis], kv, mv.Periodic[axis], t)
}

// basisInto writes the order nonzero basis functions at t into dst and returns the
// index of the first contributing control point. scratch must hold at least 2*order
// values.
func basisInto(dst, scratch []float64, gtype GeomType, order, length int, kv []float64, periodic bool, t float64) (int, error) {
	const op = "BasisFuncs"
	switch gtype {
	case Power, Bezier:
		if order != length {
			return 0, newError(op, ErrInvalid, "%v basis with order %d and length %d", gtype, order, length)
		}
		ct, ok := clampParam(t, 0, 1)
		if !ok {
			return 0, newError(op, ErrDomain, "%g not in [0, 1]", t)
		}
		t = ct
		if gtype == Power {
			powerBasis(dst[:order], t)
		} else {
			bernsteinBasis(dst[:order], t)
		}
		return 0, nil

	case BSpline:
		n := length
		if periodic {
			n += order - 1
		}
		if len(kv) != n+order {
			return 0, newError(op, ErrInvalid, "%d knots for %d points of order %d", len(kv), n, order)
		}
		ct, ok := clampParam(t, kv[order-1], kv[n])
		if !ok {
			return 0, newError(op, ErrDomain, "%g not in [%g, %g]", t, kv[order-1], kv[n])
		}
		t = ct
		span := KnotSpan(kv, order, n, t)
		coxDeBoor(dst[:order], scratch[:order], scratch[order:2*order], kv, span, t)
		return span - (order - 1), nil

	default:
		return 0, newError(op, ErrRepresentation, "%v", gtype)
	}
}

// powerBasis computes the monomials 1, t, t², ...
func powerBasis(dst []float64, t float64) {
	p := 1.0
	for i := range dst {
		dst[i] = p
		p *= t
	}
}

// bernsteinBasis computes all Bernstein polynomials of degree len(dst)-1 at t, using
// the triangular scheme of algorithm A1.3 of The NURBS Book.
func bernsteinBasis(dst []float64, t float64) {
	mt := 1 - t
	dst[0] = 1
	for j := 1; j < len(dst); j++ {
		var saved float64
		for k := range j {
			tmp := dst[k]
			dst[k] = saved + mt*tmp
			saved = t * tmp
		}
		dst[j] = saved
	}
}

// coxDeBoor computes the nonvanishing B-spline basis functions on knot span span,
// following algorithm A2.2 of The NURBS Book. left and right are scratch space of
// len(dst) values each.
func coxDeBoor(dst, left, right, kv []float64, span int, t float64) {
	dst[0] = 1
	for j := 1; j < len(dst); j++ {
		left[j] = t - kv[span+1-j]
		right[j] = kv[span+j] - t
		var saved float64
		for r := range j {
			denom := right[r+1] + left[j-r]
			var tmp float64
			if denom != 0 {
				tmp = dst[r] / denom
			}
			dst[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		dst[j] = saved
	}
}
