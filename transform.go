package mvar

import "gonum.org/v1/gonum/floats"

// Scale returns a copy of mv with all coordinates multiplied by s. Weights are left
// alone, so rational multivariates are scaled in Euclidean space too.
func (mv *MV) Scale(s float64) *MV {
	out := mv.Clone()
	for c := 1; c <= out.PType.Coords; c++ {
		floats.Scale(s, out.Points[c])
	}
	return out
}

// Translate returns a copy of mv moved by offset, which holds one entry per
// coordinate. Missing entries are treated as zero.
func (mv *MV) Translate(offset []float64) *MV {
	out := mv.Clone()
	for c := 1; c <= out.PType.Coords && c <= len(offset); c++ {
		d := offset[c-1]
		if out.PType.Rational {
			// Homogeneous points move by d times their weight.
			floats.AddScaled(out.Points[c], d, out.Points[0])
		} else {
			floats.AddConst(d, out.Points[c])
		}
	}
	return out
}
