package mvar

import "iter"

// MeshIndex walks the multi-indices of a control mesh while keeping track of the
// corresponding flat offset. Meshes are laid out in row-major order with axis 0
// varying fastest.
//
// After every call, Offset equals Σ (Index()[i] mod Lengths[i]) * stride[i]. The
// modulo only matters for periodic axes when iterating with [MeshIndex.NextPeriodic];
// the other iteration modes keep every index inside its axis.
type MeshIndex struct {
	lengths  []int
	strides  []int
	periodic []bool
	idx      []int
	offset   int
}

// NewMeshIndex returns a mesh index positioned at the origin of a mesh with the given
// lengths. periodic may be nil.
func NewMeshIndex(lengths []int, periodic []bool) *MeshIndex {
	m := &MeshIndex{}
	m.init(lengths, periodic)
	return m
}

// init prepares m for a mesh, reusing m's storage where possible.
func (m *MeshIndex) init(lengths []int, periodic []bool) {
	n := len(lengths)
	m.lengths = lengths
	m.periodic = periodic
	if cap(m.strides) < n {
		m.strides = make([]int, n)
		m.idx = make([]int, n)
	}
	m.strides = m.strides[:n]
	m.idx = m.idx[:n]
	s := 1
	for i, l := range lengths {
		m.strides[i] = s
		s *= l
		m.idx[i] = 0
	}
	m.offset = 0
}

// Index returns the current multi-index. The slice is owned by m and is modified by
// subsequent calls.
func (m *MeshIndex) Index() []int { return m.idx }

// Offset returns the flat offset of the current multi-index.
func (m *MeshIndex) Offset() int { return m.offset }

// Reset moves m to the multi-index start. A nil start means the origin.
func (m *MeshIndex) Reset(start []int) {
	m.offset = 0
	for i := range m.idx {
		if start == nil {
			m.idx[i] = 0
		} else {
			m.idx[i] = start[i]
		}
		m.offset += m.wrap(i, m.idx[i]) * m.strides[i]
	}
}

func (m *MeshIndex) wrap(axis, i int) int {
	if m.periodic != nil && m.periodic[axis] {
		return i % m.lengths[axis]
	}
	return i
}

// Next advances to the next position of the full mesh, carrying overflow into the
// following axes. It returns false, and resets m to the origin, once every position
// has been visited.
func (m *MeshIndex) Next() bool {
	for i := range m.idx {
		m.idx[i]++
		m.offset += m.strides[i]
		if m.idx[i] < m.lengths[i] {
			return true
		}
		m.offset -= m.idx[i] * m.strides[i]
		m.idx[i] = 0
	}
	return false
}

// NextBounded advances to the next position inside the box lower[i] <= idx[i] <
// upper[i]. It returns false, and resets m to lower, once the box is exhausted. The
// bounds must lie inside the mesh. Holding one axis fixed, with
// upper[axis] == lower[axis]+1, enumerates a hyperplane of the mesh.
func (m *MeshIndex) NextBounded(lower, upper []int) bool {
	for i := range m.idx {
		m.idx[i]++
		m.offset += m.strides[i]
		if m.idx[i] < upper[i] {
			return true
		}
		m.offset -= (m.idx[i] - lower[i]) * m.strides[i]
		m.idx[i] = lower[i]
	}
	return false
}

// NextPeriodic is like [MeshIndex.NextBounded], but on periodic axes upper may exceed
// the axis length: indices past the end wrap around to the start of the axis. This
// lets a basis support window straddle the seam of a periodic axis.
func (m *MeshIndex) NextPeriodic(lower, upper []int) bool {
	for i := range m.idx {
		old := m.wrap(i, m.idx[i])
		m.idx[i]++
		if m.idx[i] < upper[i] {
			m.offset += (m.wrap(i, m.idx[i]) - old) * m.strides[i]
			return true
		}
		m.idx[i] = lower[i]
		m.offset += (m.wrap(i, lower[i]) - old) * m.strides[i]
	}
	return false
}

// MeshOffset returns the flat offset of a multi-index.
func MeshOffset(lengths, idx []int) int {
	var off, s int = 0, 1
	for i, l := range lengths {
		off += idx[i] * s
		s *= l
	}
	return off
}

// MeshIndices converts a flat offset back into a multi-index, stored in idx. If idx
// is nil a new slice is allocated.
func MeshIndices(lengths []int, offset int, idx []int) []int {
	if idx == nil {
		idx = make([]int, len(lengths))
	}
	for i, l := range lengths {
		idx[i] = offset % l
		offset /= l
	}
	return idx
}

// MeshPositions returns an iterator over all positions of a mesh, in storage order.
// It yields each flat offset together with its multi-index. The multi-index slice is
// reused between iterations.
func MeshPositions(lengths []int) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		m := NewMeshIndex(lengths, nil)
		for {
			if !yield(m.Offset(), m.Index()) {
				return
			}
			if !m.Next() {
				return
			}
		}
	}
}
