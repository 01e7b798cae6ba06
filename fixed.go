package mvar

import "slices"

// Curve is a univariate spline or polynomial.
type Curve struct {
	GType      GeomType
	PType      PointType
	Length     int
	Order      int
	Periodic   bool
	KnotVector []float64
	Points     [MaxCoord + 1][]float64
}

// Surface is a bivariate tensor-product spline or polynomial. Index 0 of the per-axis
// fields refers to the U direction, index 1 to V. Points are stored with U varying
// fastest.
type Surface struct {
	GType       GeomType
	PType       PointType
	Lengths     [2]int
	Orders      [2]int
	Periodic    [2]bool
	KnotVectors [2][]float64
	Points      [MaxCoord + 1][]float64
}

// Volume is a trivariate tensor-product spline or polynomial. Index 0, 1 and 2 of the
// per-axis fields refer to the U, V and W directions. Points are stored with U varying
// fastest and W slowest.
type Volume struct {
	GType       GeomType
	PType       PointType
	Lengths     [3]int
	Orders      [3]int
	Periodic    [3]bool
	KnotVectors [3][]float64
	Points      [MaxCoord + 1][]float64
}

// fixedArity carries the per-axis data shared by curves, surfaces and volumes.
type fixedArity struct {
	gtype    GeomType
	pt       PointType
	lengths  []int
	orders   []int
	periodic []bool
	kvs      [][]float64
	points   *[MaxCoord + 1][]float64
}

// fromFixed builds a multivariate from a copy of fixed-arity data.
func fromFixed(op string, f fixedArity) (*MV, error) {
	mv := &MV{
		Dim:      len(f.lengths),
		GType:    f.gtype,
		PType:    f.pt,
		Lengths:  slices.Clone(f.lengths),
		Orders:   slices.Clone(f.orders),
		Periodic: slices.Clone(f.periodic),
	}
	if f.gtype == BSpline {
		mv.KnotVectors = make([][]float64, len(f.kvs))
		for i, kv := range f.kvs {
			mv.KnotVectors[i] = slices.Clone(kv)
		}
	}
	for c := f.pt.firstChannel(); c <= f.pt.Coords && c <= MaxCoord; c++ {
		mv.Points[c] = slices.Clone(f.points[c])
	}
	if err := mv.Validate(); err != nil {
		err := err.(*Error)
		err.Op = op
		return nil, err
	}
	return mv, nil
}

// toFixed copies the first arity axes of mv. For multivariates with more axes, the
// mesh slice at index 0 of every ignored axis is used.
func (mv *MV) toFixed(op string, arity int) (fixedArity, error) {
	if mv.Dim < arity {
		return fixedArity{}, newError(op, ErrArity, "multivariate of dimension %d", mv.Dim)
	}
	f := fixedArity{
		gtype:    mv.GType,
		pt:       mv.PType,
		lengths:  mv.Lengths[:arity],
		orders:   mv.Orders[:arity],
		periodic: mv.Periodic[:arity],
		points:   new([MaxCoord + 1][]float64),
	}
	if mv.GType == BSpline {
		f.kvs = make([][]float64, arity)
		for i := range arity {
			f.kvs[i] = slices.Clone(mv.KnotVectors[i])
		}
	}
	n := 1
	for _, l := range f.lengths {
		n *= l
	}
	for c := mv.PType.firstChannel(); c <= mv.PType.Coords; c++ {
		f.points[c] = slices.Clone(mv.Points[c][:n])
	}
	return f, nil
}

// FromCurve returns a one-dimensional multivariate holding a copy of c.
func FromCurve(c *Curve) (*MV, error) {
	return fromFixed("FromCurve", fixedArity{
		gtype:    c.GType,
		pt:       c.PType,
		lengths:  []int{c.Length},
		orders:   []int{c.Order},
		periodic: []bool{c.Periodic},
		kvs:      [][]float64{c.KnotVector},
		points:   &c.Points,
	})
}

// FromSurface returns a two-dimensional multivariate holding a copy of s.
func FromSurface(s *Surface) (*MV, error) {
	return fromFixed("FromSurface", fixedArity{
		gtype:    s.GType,
		pt:       s.PType,
		lengths:  s.Lengths[:],
		orders:   s.Orders[:],
		periodic: s.Periodic[:],
		kvs:      s.KnotVectors[:],
		points:   &s.Points,
	})
}

// FromVolume returns a three-dimensional multivariate holding a copy of v.
func FromVolume(v *Volume) (*MV, error) {
	return fromFixed("FromVolume", fixedArity{
		gtype:    v.GType,
		pt:       v.PType,
		lengths:  v.Lengths[:],
		orders:   v.Orders[:],
		periodic: v.Periodic[:],
		kvs:      v.KnotVectors[:],
		points:   &v.Points,
	})
}

// ToCurve converts mv to a curve along axis 0. mv must have at least one dimension;
// the axes beyond the first are ignored and the curve is taken from the mesh slice at
// index 0 of each of them.
func (mv *MV) ToCurve() (*Curve, error) {
	f, err := mv.toFixed("ToCurve", 1)
	if err != nil {
		return nil, err
	}
	c := &Curve{
		GType:    f.gtype,
		PType:    f.pt,
		Length:   f.lengths[0],
		Order:    f.orders[0],
		Periodic: f.periodic[0],
		Points:   *f.points,
	}
	if f.kvs != nil {
		c.KnotVector = f.kvs[0]
	}
	return c, nil
}

// ToSurface converts mv to a surface along axes 0 and 1. Axes beyond the second are
// ignored like in [MV.ToCurve]. It returns an [ErrArity] error if mv has fewer than two
// dimensions.
func (mv *MV) ToSurface() (*Surface, error) {
	f, err := mv.toFixed("ToSurface", 2)
	if err != nil {
		return nil, err
	}
	s := &Surface{
		GType:  f.gtype,
		PType:  f.pt,
		Points: *f.points,
	}
	copy(s.Lengths[:], f.lengths)
	copy(s.Orders[:], f.orders)
	copy(s.Periodic[:], f.periodic)
	copy(s.KnotVectors[:], f.kvs)
	return s, nil
}

// ToVolume converts mv to a volume along axes 0, 1 and 2. Axes beyond the third are
// ignored like in [MV.ToCurve]. It returns an [ErrArity] error if mv has fewer than
// three dimensions.
func (mv *MV) ToVolume() (*Volume, error) {
	f, err := mv.toFixed("ToVolume", 3)
	if err != nil {
		return nil, err
	}
	v := &Volume{
		GType:  f.gtype,
		PType:  f.pt,
		Points: *f.points,
	}
	copy(v.Lengths[:], f.lengths)
	copy(v.Orders[:], f.orders)
	copy(v.Periodic[:], f.periodic)
	copy(v.KnotVectors[:], f.kvs)
	return v, nil
}

// Eval evaluates the curve at t. It panics like [Evaluator.Eval].
func (c *Curve) Eval(t float64) Coord {
	mv, err := FromCurve(c)
	if err != nil {
		panic(err)
	}
	return mv.Eval([]float64{t})
}

// Eval evaluates the surface at (u, v). It panics like [Evaluator.Eval].
func (s *Surface) Eval(u, v float64) Coord {
	mv, err := FromSurface(s)
	if err != nil {
		panic(err)
	}
	return mv.Eval([]float64{u, v})
}

// Eval evaluates the volume at (u, v, w). It panics like [Evaluator.Eval].
func (vol *Volume) Eval(u, v, w float64) Coord {
	mv, err := FromVolume(vol)
	if err != nil {
		panic(err)
	}
	return mv.Eval([]float64{u, v, w})
}
