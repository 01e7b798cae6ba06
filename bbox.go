package mvar

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// BBox is an axis-aligned box in the Euclidean space of a multivariate's coordinates.
// Min and Max have one entry per coordinate.
type BBox struct {
	Min []float64
	Max []float64
}

// BBox returns the bounding box of mv's control mesh, which also bounds the
// multivariate itself for Bézier and B-spline bases with positive weights. Rational
// control points are projected to Euclidean space first.
func (mv *MV) BBox() BBox {
	n := mv.PType.Coords
	b := BBox{
		Min: make([]float64, n),
		Max: make([]float64, n),
	}
	var proj []float64
	if mv.PType.Rational {
		proj = make([]float64, mv.PointCount())
	}
	for c := 1; c <= n; c++ {
		pts := mv.Points[c]
		if proj != nil {
			floats.DivTo(proj, pts, mv.Points[0])
			pts = proj
		}
		b.Min[c-1] = floats.Min(pts)
		b.Max[c-1] = floats.Max(pts)
	}
	return b
}

func (b BBox) String() string {
	return fmt.Sprintf("BBox(%v - %v)", b.Min, b.Max)
}

// Union returns the smallest box that contains both b and o, which must have the same
// number of coordinates.
func (b BBox) Union(o BBox) BBox {
	out := BBox{
		Min: make([]float64, len(b.Min)),
		Max: make([]float64, len(b.Max)),
	}
	for i := range b.Min {
		out.Min[i] = min(b.Min[i], o.Min[i])
		out.Max[i] = max(b.Max[i], o.Max[i])
	}
	return out
}

// Contains reports whether pt lies inside b, boundary included.
func (b BBox) Contains(pt []float64) bool {
	for i := range b.Min {
		if pt[i] < b.Min[i] || pt[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and o intersect.
func (b BBox) Overlaps(o BBox) bool {
	for i := range b.Min {
		if b.Max[i] < o.Min[i] || o.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// Box3 returns the first three coordinates of b as an [r3.Box]. Missing coordinates
// are zero.
func (b BBox) Box3() r3.Box {
	var lo, hi [3]float64
	copy(lo[:], b.Min)
	copy(hi[:], b.Max)
	return r3.Box{
		Min: r3.Vec{X: lo[0], Y: lo[1], Z: lo[2]},
		Max: r3.Vec{X: hi[0], Y: hi[1], Z: hi[2]},
	}
}
