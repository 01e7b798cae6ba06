package mvar

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Coord is the value of a multivariate at a point. Index 0 holds the weight of
// rational multivariates; indices 1 through [MaxCoord] hold coordinates.
type Coord [MaxCoord + 1]float64

// Euclidean returns the coordinates of c divided by its weight, with the weight set to
// 1. Non-rational coordinates are returned unchanged.
func (c Coord) Euclidean(pt PointType) Coord {
	if !pt.Rational {
		return c
	}
	w := c[0]
	out := Coord{0: 1}
	for i := 1; i <= pt.Coords; i++ {
		out[i] = c[i] / w
	}
	return out
}

// Value returns the Euclidean value of a scalar multivariate's result.
func (c Coord) Value(pt PointType) float64 {
	if pt.Rational {
		return c[1] / c[0]
	}
	return c[1]
}

// Vec3 returns the first three Euclidean coordinates of c as a point in 3-space.
// Missing coordinates are zero.
func (c Coord) Vec3(pt PointType) r3.Vec {
	e := c.Euclidean(pt)
	var v [3]float64
	copy(v[:], e[1:1+min(3, pt.Coords)])
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Slice returns the channels of c used by pt: the weight followed by the coordinates
// for rational point types, just the coordinates otherwise.
func (c Coord) Slice(pt PointType) []float64 {
	return c[pt.firstChannel() : pt.Coords+1]
}

// Format returns c as a string showing only the channels used by pt.
func (c Coord) Format(pt PointType) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, v := range c.Slice(pt) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString(")")
	return sb.String()
}
