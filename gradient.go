package mvar

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GradientStepFactor scales an axis' domain size to obtain the forward-difference step
// used when estimating gradients numerically.
const GradientStepFactor = 1e-8

var machineEpsilon = math.Nextafter(1, 2) - 1

// AttachGradient associates a precomputed gradient field with the scalar multivariate
// mv. The field must have the same dimension as mv and either mv.Dim coordinates, the
// partial derivatives, or mv.Dim+1 coordinates, where the last one repeats the value of
// mv itself. Passing nil detaches the current field.
//
// mv only keeps a reference to g and doesn't take ownership of it. The field is not
// carried over to multivariates derived from mv.
func (mv *MV) AttachGradient(g *MV) error {
	const op = "AttachGradient"
	if g == nil {
		mv.grad = nil
		return nil
	}
	if !mv.IsScalar() {
		return newError(op, ErrScalarExpected, "point type %v", mv.PType)
	}
	if g.Dim != mv.Dim {
		return newError(op, ErrArity, "gradient of dimension %d for multivariate of dimension %d", g.Dim, mv.Dim)
	}
	if n := g.PType.Coords; n != mv.Dim && n != mv.Dim+1 {
		return newError(op, ErrArity, "gradient with %d coordinates for dimension %d", n, mv.Dim)
	}
	mv.grad = g
	return nil
}

// GradientField returns the attached gradient field, or nil.
func (mv *MV) GradientField() *MV {
	return mv.grad
}

// Gradient computes the gradient of the scalar multivariate mv at params using a
// call-scoped [Evaluator]. See [Evaluator.Gradient].
func (mv *MV) Gradient(params []float64) (grad []float64, value float64, hasValue bool) {
	var e Evaluator
	return e.Gradient(mv, params)
}

// Gradient computes the gradient of the scalar multivariate mv at params.
//
// If a gradient field is attached (see [MV.AttachGradient]), it is evaluated instead.
// hasValue then reports whether the field also carries the value of mv, which is
// returned in value. Otherwise the gradient is estimated with forward differences and
// hasValue is false. Rational multivariates are differentiated in Euclidean space.
//
// Gradient panics with an [*Error] of kind [ErrScalarExpected] if mv has more than one
// coordinate, and like [Evaluator.Eval] for invalid parameters.
func (e *Evaluator) Gradient(mv *MV, params []float64) (grad []float64, value float64, hasValue bool) {
	const op = "Gradient"
	if !mv.IsScalar() {
		panic(newError(op, ErrScalarExpected, "point type %v", mv.PType))
	}
	if len(params) < mv.Dim {
		panic(newError(op, ErrArity, "%d parameters for dimension %d", len(params), mv.Dim))
	}

	grad = make([]float64, mv.Dim)
	if g := mv.grad; g != nil {
		c := e.Eval(g, params).Euclidean(g.PType)
		copy(grad, c[1:1+mv.Dim])
		if g.PType.Coords > mv.Dim {
			return grad, c[mv.Dim+1], true
		}
		return grad, 0, false
	}

	e.grow(mv)
	p := e.params[:mv.Dim]
	copy(p, params)
	base := e.Eval(mv, p).Value(mv.PType)
	for i := range mv.Dim {
		lo, hi := mv.Domain(i)
		t, _ := clampParam(p[i], lo, hi)
		step := max((hi-lo)*GradientStepFactor, machineEpsilon)
		if t+step > hi {
			step = -step
		}
		p[i] = t + step
		grad[i] = (e.Eval(mv, p).Value(mv.PType) - base) / step
		p[i] = params[i]
	}
	return grad, 0, false
}

// Hyperplane is the hyperplane Coeffs·x + Const = 0 in the (Dim+1)-dimensional space
// spanned by a multivariate's parameters and its scalar value.
type Hyperplane struct {
	// Coeffs has Dim+1 entries. The last one belongs to the value coordinate and is
	// always 1.
	Coeffs []float64
	Const  float64
}

// Distance returns the signed residual Coeffs·x + Const. It is zero for points on
// the hyperplane.
func (h Hyperplane) Distance(x []float64) float64 {
	return floats.Dot(h.Coeffs, x[:len(h.Coeffs)]) + h.Const
}

// TangentHyperplane computes the tangent hyperplane of the graph of the scalar
// multivariate mv at params using a call-scoped [Evaluator]. See
// [Evaluator.TangentHyperplane].
func (mv *MV) TangentHyperplane(params []float64) Hyperplane {
	var e Evaluator
	return e.TangentHyperplane(mv, params)
}

// TangentHyperplane computes the hyperplane tangent to the graph x ↦ (x, mv(x)) at
// params. The coefficients of the parametric axes are the negated gradient and the
// coefficient of the value axis is 1.
//
// It panics like [Evaluator.Gradient].
func (e *Evaluator) TangentHyperplane(mv *MV, params []float64) Hyperplane {
	grad, value, ok := e.Gradient(mv, params)
	if !ok {
		value = e.Eval(mv, params).Value(mv.PType)
	}

	h := Hyperplane{Coeffs: make([]float64, mv.Dim+1)}
	floats.ScaleTo(h.Coeffs[:mv.Dim], -1, grad)
	h.Coeffs[mv.Dim] = 1
	h.Const = floats.Dot(grad, params[:mv.Dim]) - value
	return h
}
