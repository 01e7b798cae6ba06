package mvar

import (
	"fmt"
	"math"
	"slices"
)

// MaxCoord is the maximum number of coordinate channels of a multivariate, not
// counting the weight channel of rational multivariates.
const MaxCoord = 18

// Epsilon is the tolerance used when checking parameters against domains. Parameters
// that lie outside a domain by at most Epsilon are clamped onto it.
const Epsilon = 1e-8

// GeomType is the kind of basis a multivariate is expressed in.
type GeomType int

const (
	Power GeomType = iota + 1
	Bezier
	BSpline
)

func (g GeomType) String() string {
	switch g {
	case Power:
		return "Power"
	case Bezier:
		return "Bezier"
	case BSpline:
		return "BSpline"
	default:
		return fmt.Sprintf("GeomType(%d)", int(g))
	}
}

// PointType describes the coordinate channels of a multivariate.
type PointType struct {
	// Coords is the number of coordinates, between 1 and MaxCoord.
	Coords int
	// Rational reports whether channel 0 holds homogeneous weights.
	Rational bool
}

// E returns the non-rational point type with n coordinates.
func E(n int) PointType { return PointType{Coords: n} }

// P returns the rational point type with n coordinates.
func P(n int) PointType { return PointType{Coords: n, Rational: true} }

func (pt PointType) String() string {
	if pt.Rational {
		return fmt.Sprintf("P%d", pt.Coords)
	}
	return fmt.Sprintf("E%d", pt.Coords)
}

func (pt PointType) valid() bool {
	return pt.Coords >= 1 && pt.Coords <= MaxCoord
}

// firstChannel returns the index of the first channel that holds data.
func (pt PointType) firstChannel() int {
	if pt.Rational {
		return 0
	}
	return 1
}

// MV is an N-dimensional tensor-product multivariate.
//
// The control mesh is stored as one flat slice per channel, in row-major order with
// axis 0 varying fastest: the coefficient at multi-index idx is at offset
// Σ idx[i] * stride[i], where stride[0] = 1 and stride[i] = stride[i-1] * Lengths[i-1].
//
// An MV exclusively owns all of its slices. Operations that derive a new multivariate
// return fresh storage and never alias the source. MVs are not mutated by evaluation,
// so several [Evaluator]s may evaluate the same MV concurrently.
type MV struct {
	Dim   int
	GType GeomType
	PType PointType

	Lengths  []int
	Orders   []int
	Periodic []bool
	// KnotVectors is nil unless GType is BSpline. KnotVectors[i] has
	// Lengths[i]+Orders[i] knots, or Lengths[i]+2*Orders[i]-1 if the axis is periodic.
	KnotVectors [][]float64

	// Points[0] holds the weights of rational multivariates and is nil otherwise.
	// Points[1..PType.Coords] hold coordinates.
	Points [MaxCoord + 1][]float64

	grad *MV
}

func newMV(op string, gtype GeomType, lengths, orders []int, periodic []bool, pt PointType) (*MV, error) {
	if len(lengths) == 0 {
		return nil, newError(op, ErrInvalid, "dimension must be at least 1")
	}
	if !pt.valid() {
		return nil, newError(op, ErrInvalid, "point type %v", pt)
	}
	if len(orders) != len(lengths) || (periodic != nil && len(periodic) != len(lengths)) {
		return nil, newError(op, ErrArity, "%d lengths, %d orders, %d periodic flags", len(lengths), len(orders), len(periodic))
	}
	n := 1
	for i, l := range lengths {
		if l < 1 || orders[i] < 1 {
			return nil, newError(op, ErrInvalid, "axis %d has length %d and order %d", i, l, orders[i])
		}
		n *= l
	}

	mv := &MV{
		Dim:      len(lengths),
		GType:    gtype,
		PType:    pt,
		Lengths:  slices.Clone(lengths),
		Orders:   slices.Clone(orders),
		Periodic: make([]bool, len(lengths)),
	}
	copy(mv.Periodic, periodic)
	for c := pt.firstChannel(); c <= pt.Coords; c++ {
		mv.Points[c] = make([]float64, n)
	}
	return mv, nil
}

// NewPower returns a zeroed multivariate in the power (monomial) basis. The order of
// every axis equals its length.
func NewPower(lengths []int, pt PointType) (*MV, error) {
	return newMV("NewPower", Power, lengths, lengths, nil, pt)
}

// NewBezier returns a zeroed Bézier multivariate. The order of every axis equals its
// length.
func NewBezier(lengths []int, pt PointType) (*MV, error) {
	return newMV("NewBezier", Bezier, lengths, lengths, nil, pt)
}

// NewBSpline returns a zeroed B-spline multivariate. periodic may be nil, in which
// case no axis is periodic. Knot vectors are initialized to uniform knot vectors (see
// [OpenUniformKnots] and [PeriodicUniformKnots]) and may be overwritten by the caller.
func NewBSpline(lengths, orders []int, periodic []bool, pt PointType) (*MV, error) {
	const op = "NewBSpline"
	mv, err := newMV(op, BSpline, lengths, orders, periodic, pt)
	if err != nil {
		return nil, err
	}
	mv.KnotVectors = make([][]float64, mv.Dim)
	for i := range mv.Dim {
		if mv.Periodic[i] {
			mv.KnotVectors[i] = PeriodicUniformKnots(mv.Lengths[i], mv.Orders[i])
		} else {
			if mv.Orders[i] > mv.Lengths[i] {
				return nil, newError(op, ErrInvalid, "axis %d has order %d > length %d", i, mv.Orders[i], mv.Lengths[i])
			}
			mv.KnotVectors[i] = OpenUniformKnots(mv.Lengths[i], mv.Orders[i])
		}
	}
	return mv, nil
}

// Validate checks the structural invariants of the multivariate: matching slice
// lengths, basis-specific order constraints, and knot vector sizes and monotonicity.
func (mv *MV) Validate() error {
	const op = "Validate"
	if mv.Dim < 1 {
		return newError(op, ErrInvalid, "dimension %d", mv.Dim)
	}
	if !mv.PType.valid() {
		return newError(op, ErrInvalid, "point type %v", mv.PType)
	}
	if len(mv.Lengths) != mv.Dim || len(mv.Orders) != mv.Dim || len(mv.Periodic) != mv.Dim {
		return newError(op, ErrArity, "per-axis slices don't match dimension %d", mv.Dim)
	}

	n := 1
	for i := range mv.Dim {
		l, k := mv.Lengths[i], mv.Orders[i]
		if l < 1 || k < 1 {
			return newError(op, ErrInvalid, "axis %d has length %d and order %d", i, l, k)
		}
		n *= l
		switch mv.GType {
		case Power, Bezier:
			if k != l {
				return newError(op, ErrInvalid, "%v axis %d has order %d != length %d", mv.GType, i, k, l)
			}
			if mv.Periodic[i] {
				return newError(op, ErrInvalid, "%v axis %d is periodic", mv.GType, i)
			}
		case BSpline:
			if len(mv.KnotVectors) != mv.Dim {
				return newError(op, ErrArity, "%d knot vectors for dimension %d", len(mv.KnotVectors), mv.Dim)
			}
			want := l + k
			if mv.Periodic[i] {
				want = l + 2*k - 1
			} else if k > l {
				return newError(op, ErrInvalid, "axis %d has order %d > length %d", i, k, l)
			}
			if len(mv.KnotVectors[i]) != want {
				return newError(op, ErrInvalid, "axis %d has %d knots, want %d", i, len(mv.KnotVectors[i]), want)
			}
			if !IsNonDecreasing(mv.KnotVectors[i]) {
				return newError(op, ErrInvalid, "knot vector %d is decreasing", i)
			}
		default:
			return newError(op, ErrRepresentation, "%v", mv.GType)
		}
	}

	for c := range mv.Points {
		present := c >= mv.PType.firstChannel() && c <= mv.PType.Coords
		switch {
		case present && len(mv.Points[c]) != n:
			return newError(op, ErrInvalid, "channel %d has %d points, want %d", c, len(mv.Points[c]), n)
		case !present && mv.Points[c] != nil:
			return newError(op, ErrInvalid, "unexpected channel %d", c)
		}
	}
	return nil
}

// PointCount returns the number of control points, the product of all lengths.
func (mv *MV) PointCount() int {
	n := 1
	for _, l := range mv.Lengths {
		n *= l
	}
	return n
}

// IsRational reports whether the multivariate has a weight channel.
func (mv *MV) IsRational() bool {
	return mv.PType.Rational
}

// IsScalar reports whether the multivariate has a single coordinate.
func (mv *MV) IsScalar() bool {
	return mv.PType.Coords == 1
}

// effectiveLength returns the number of control points the basis of an axis ranges
// over. Periodic axes repeat their first Orders[axis]-1 points.
func (mv *MV) effectiveLength(axis int) int {
	if mv.Periodic[axis] {
		return mv.Lengths[axis] + mv.Orders[axis] - 1
	}
	return mv.Lengths[axis]
}

func (mv *MV) checkAxis(op string, axis int) {
	if axis < 0 || axis >= mv.Dim {
		panic(newError(op, ErrAxis, "axis %d of %d", axis, mv.Dim))
	}
}

// Domain returns the parametric domain of an axis. Power and Bézier axes always span
// [0, 1]. It panics with [ErrAxis] if axis is out of range.
func (mv *MV) Domain(axis int) (min, max float64) {
	mv.checkAxis("Domain", axis)
	if mv.GType != BSpline {
		return 0, 1
	}
	kv := mv.KnotVectors[axis]
	return kv[mv.Orders[axis]-1], kv[mv.effectiveLength(axis)]
}

// Domains returns the domains of all axes.
func (mv *MV) Domains() (min, max []float64) {
	min = make([]float64, mv.Dim)
	max = make([]float64, mv.Dim)
	for i := range mv.Dim {
		min[i], max[i] = mv.Domain(i)
	}
	return min, max
}

// CheckParams reports whether params is a valid evaluation point: it must have at
// least Dim entries, each inside its axis' domain up to [Epsilon].
func (mv *MV) CheckParams(params []float64) error {
	const op = "CheckParams"
	if len(params) < mv.Dim {
		return newError(op, ErrArity, "%d parameters for dimension %d", len(params), mv.Dim)
	}
	for i := range mv.Dim {
		min, max := mv.Domain(i)
		if _, ok := clampParam(params[i], min, max); !ok {
			return newError(op, ErrDomain, "axis %d: %g not in [%g, %g]", i, params[i], min, max)
		}
	}
	return nil
}

// Clone returns a deep copy of the multivariate. An attached gradient field is not
// carried over.
func (mv *MV) Clone() *MV {
	out := &MV{
		Dim:      mv.Dim,
		GType:    mv.GType,
		PType:    mv.PType,
		Lengths:  slices.Clone(mv.Lengths),
		Orders:   slices.Clone(mv.Orders),
		Periodic: slices.Clone(mv.Periodic),
	}
	if mv.KnotVectors != nil {
		out.KnotVectors = make([][]float64, len(mv.KnotVectors))
		for i, kv := range mv.KnotVectors {
			out.KnotVectors[i] = slices.Clone(kv)
		}
	}
	for c, pts := range mv.Points {
		out.Points[c] = slices.Clone(pts)
	}
	return out
}

// strides returns the flat-offset stride of every axis.
func strides(lengths []int) []int {
	s := make([]int, len(lengths))
	n := 1
	for i, l := range lengths {
		s[i] = n
		n *= l
	}
	return s
}

// clampParam clamps t onto [min, max] if it lies outside by at most Epsilon. ok is
// false if t is farther away than that.
func clampParam(t, min, max float64) (float64, bool) {
	switch {
	case math.IsNaN(t):
		return t, false
	case t < min:
		return min, t >= min-Epsilon
	case t > max:
		return max, t <= max+Epsilon
	default:
		return t, true
	}
}
