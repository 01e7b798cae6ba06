package mvar

import (
	"gonum.org/v1/gonum/mat"
)

// binomial returns the binomial coefficient n choose k.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1.0
	for d := 1; d <= k; d++ {
		r *= float64(n-k+d) / float64(d)
	}
	return r
}

// bezierToPowerMatrix returns the matrix mapping the Bézier coefficients of a
// polynomial of the given order to its monomial coefficients.
func bezierToPowerMatrix(order int) *mat.Dense {
	n := order - 1
	m := mat.NewDense(order, order, nil)
	for j := range order {
		for i := 0; i <= j; i++ {
			v := binomial(n, j) * binomial(j, i)
			if (j-i)%2 == 1 {
				v = -v
			}
			m.Set(j, i, v)
		}
	}
	return m
}

// powerToBezierMatrix returns the inverse of bezierToPowerMatrix.
func powerToBezierMatrix(order int) *mat.Dense {
	n := order - 1
	m := mat.NewDense(order, order, nil)
	for i := range order {
		for j := 0; j <= i; j++ {
			m.Set(i, j, binomial(i, j)/binomial(n, j))
		}
	}
	return m
}

// mapAxes returns a copy of mv with every axis' coefficients transformed by the square
// matrix returned by fn for that axis' order.
func (mv *MV) mapAxes(gtype GeomType, fn func(order int) *mat.Dense) *MV {
	out := mv.Clone()
	out.GType = gtype
	for axis := range out.Dim {
		m := fn(out.Orders[axis])
		out.Points = out.mapFibers(axis, out.Lengths[axis], func(dst, src []float64) {
			mat.NewVecDense(len(dst), dst).MulVec(m, mat.NewVecDense(len(src), src))
		})
	}
	return out
}

// BezierToPower returns the power basis representation of a Bézier multivariate.
func (mv *MV) BezierToPower() (*MV, error) {
	if mv.GType != Bezier {
		return nil, newError("BezierToPower", ErrRepresentation, "%v multivariate", mv.GType)
	}
	return mv.mapAxes(Power, bezierToPowerMatrix), nil
}

// PowerToBezier returns the Bézier representation of a power basis multivariate.
func (mv *MV) PowerToBezier() (*MV, error) {
	if mv.GType != Power {
		return nil, newError("PowerToBezier", ErrRepresentation, "%v multivariate", mv.GType)
	}
	return mv.mapAxes(Bezier, powerToBezierMatrix), nil
}

// BezierToBSpline returns the B-spline representation of a Bézier multivariate. Its
// knot vectors are open with a single span over [0, 1].
func (mv *MV) BezierToBSpline() (*MV, error) {
	if mv.GType != Bezier {
		return nil, newError("BezierToBSpline", ErrRepresentation, "%v multivariate", mv.GType)
	}
	out := mv.Clone()
	out.GType = BSpline
	out.KnotVectors = make([][]float64, out.Dim)
	for axis, k := range out.Orders {
		out.KnotVectors[axis] = OpenUniformKnots(k, k)
	}
	return out, nil
}
