package mvar

// OpenUniformKnots returns an open (clamped) uniform knot vector over [0, 1] for an
// axis with the given number of control points and order. The first and last knots
// have multiplicity order.
func OpenUniformKnots(length, order int) []float64 {
	kv := make([]float64, length+order)
	interior := length - order
	for i := range interior {
		kv[order+i] = float64(i+1) / float64(interior+1)
	}
	for i := length; i < len(kv); i++ {
		kv[i] = 1
	}
	return kv
}

// PeriodicUniformKnots returns a uniform knot vector for a periodic axis with the
// given number of distinct control points and order. It has length+2*order-1 knots
// and its domain is [0, 1].
func PeriodicUniformKnots(length, order int) []float64 {
	kv := make([]float64, length+2*order-1)
	for i := range kv {
		kv[i] = float64(i-(order-1)) / float64(length)
	}
	return kv
}

// IsNonDecreasing reports whether the knot vector is non-decreasing.
func IsNonDecreasing(kv []float64) bool {
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}

// KnotSpan returns the index j of the knot span [kv[j], kv[j+1]) that contains t, for
// a basis of the given order over n control points. The result is in [order-1, n-1].
// Parameters at or beyond the right end of the domain map to the last non-empty span.
//
// This corresponds to algorithm A2.1 of The NURBS Book (Piegl & Tiller).
func KnotSpan(kv []float64, order, n int, t float64) int {
	low, high := order-1, n
	if t >= kv[high] {
		j := high - 1
		for j > low && kv[j] >= kv[high] {
			j--
		}
		return j
	}
	if t <= kv[low] {
		j := low
		for j < high-1 && kv[j+1] <= t {
			j++
		}
		return j
	}

	mid := (low + high) / 2
	for t < kv[mid] || t >= kv[mid+1] {
		if t < kv[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// knotMultiplicity returns how many knots of kv equal t to within [Epsilon], and the
// index of the first of them.
func knotMultiplicity(kv []float64, t float64) (mult, first int) {
	first = -1
	for i, k := range kv {
		if k >= t-Epsilon && k <= t+Epsilon {
			if first < 0 {
				first = i
			}
			mult++
		}
	}
	return mult, first
}
