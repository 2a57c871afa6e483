// SPDX-License-Identifier: MIT
// Package yale: structural copy, cast-copy, compress, and old-Yale
// import.

package yale

import "github.com/arnegrau/newyale/yale/oldyale"

// structCopy allocates a new descriptor of the same shape with capacity
// newCapacity (must be >= the source's size), copies shape, ndnz, and the
// first `size` entries of ija, but leaves every value slot at its zero
// value. Callers fill values in afterward.
func structCopy[V Value](m *Matrix[V], newCapacity int) *Matrix[V] {
	size := m.GetSize()
	if newCapacity < size {
		newCapacity = size
	}

	out := &Matrix[V]{
		rows:         m.rows,
		cols:         m.cols,
		capacity:     newCapacity,
		ija:          make([]int32, newCapacity),
		a:            make([]V, newCapacity),
		ndnz:         m.ndnz,
		growthFactor: m.growthFactor,
		trace:        m.trace,
		allocGate:    m.allocGate,
		indexTag:     m.indexTag,
		dtype:        m.dtype,
	}
	copy(out.ija[:size], m.ija[:size])

	return out
}

// Clone returns a deep, same-type copy of m with capacity equal to m's
// current size (i.e. no slack): both structure and values are copied.
func Clone[V Value](m *Matrix[V]) *Matrix[V] {
	size := m.GetSize()
	out := structCopy(m, size)
	copy(out.a[:size], m.a[:size])

	return out
}

// Compress reallocates the descriptor's buffers to exactly GetSize(),
// dropping any spare capacity accumulated by geometric growth. It is
// exactly Clone with the result swapped back into m, since a Matrix is
// otherwise indistinguishable from its compressed form (mutation only
// ever cares about size, not capacity).
func (m *Matrix[V]) Compress() {
	compact := Clone(m)
	*m = *compact
}

// CastCopy builds the structural copy of m into a fresh Matrix[R], then
// converts every stored value (diagonal, canonical zero, and off-diagonal)
// through convert. This is the generic instantiation of "promote(LDType,
// RDType) -> DType" for the copy path; the caller supplies the
// conversion since Go generics cannot convert between two independently
// parameterized numeric types without one.
func CastCopy[L, R Value](m *Matrix[L], convert func(L) R) (*Matrix[R], error) {
	if m == nil {
		return nil, wrapf("CastCopy", ErrNilDescriptor)
	}
	size := m.GetSize()

	out := &Matrix[R]{
		rows:         m.rows,
		cols:         m.cols,
		capacity:     size,
		ija:          make([]int32, size),
		a:            make([]R, size),
		ndnz:         m.ndnz,
		growthFactor: m.growthFactor,
		trace:        m.trace,
		indexTag:     m.indexTag,
		dtype:        dtypeOf[R](),
	}
	copy(out.ija[:size], m.ija[:size])
	for i := 0; i < size; i++ {
		out.a[i] = convert(m.a[i])
	}

	return out, nil
}

// FromOldYale imports a triplet-style old-Yale matrix. Pass 1
// counts off-diagonal nonzeros by scanning (IA, JA); pass 2 allocates a
// descriptor with capacity = R + ndnz + 1 and walks rows once, writing
// diagonal entries directly into a[i] and off-diagonal pairs contiguously
// starting at R+1. Row order and old-Yale's internal (IA, JA) ordering
// within a row are assumed arbitrary going in; off-diagonal entries are
// written in the order pass 2 encounters them and then must already be
// column-sorted per row for I1 to hold, since FromOldYale itself performs
// no sort (mirroring a direct single-pass placement).
func FromOldYale[V Value](t oldyale.Triplet[V]) (*Matrix[V], error) {
	if err := t.Validate(); err != nil {
		return nil, wrapf("FromOldYale", err)
	}

	rows := t.Rows

	// Pass 1: count non-diagonal nonzeros.
	ndnz := 0
	for i := 0; i < rows; i++ {
		for p := t.IA[i]; p < t.IA[i+1]; p++ {
			if t.JA[p] != i {
				ndnz++
			}
		}
	}

	capacity := rows + ndnz + 1
	out := &Matrix[V]{
		rows:         rows,
		cols:         t.Cols,
		capacity:     capacity,
		ija:          make([]int32, capacity),
		a:            make([]V, capacity),
		growthFactor: DefaultGrowthFactor,
		trace:        noopLogger(),
		indexTag:     chooseIndexTag(rows, t.Cols),
		dtype:        dtypeOf[V](),
	}

	// Pass 2: place diagonal entries in a[i], off-diagonal pairs
	// contiguously from R+1 onward, and the row pointer prefix as we go.
	next := int32(rows + 1)
	var zero V
	for i := 0; i < rows; i++ {
		out.ija[i] = next
		out.a[i] = zero
		for p := t.IA[i]; p < t.IA[i+1]; p++ {
			col, val := t.JA[p], t.A[p]
			if col == i {
				out.a[i] = val

				continue
			}
			out.ija[next] = int32(col)
			out.a[next] = val
			next++
		}
	}
	out.ija[rows] = next
	out.a[rows] = zero
	out.ndnz = ndnz

	return out, nil
}
