// SPDX-License-Identifier: MIT
// Package yale: read/write accessors, plus the read-only row iterator,
// NNZ/Diagonal helpers and Scale supplemented from a classic sparse
// matrix object's ll_mat / matrix surface.

package yale

// Ref is a read handle into a Matrix cell. It is returned by value and
// never lets a caller write into the canonical zero slot (I4): Zero()
// reports whether the handle refers to that slot, and Value() always
// returns a copy.
type Ref[V Value] struct {
	value V
	zero  bool
}

// Value returns the cell's value: the stored value if present, or the
// numeric/comparable zero of V if the cell was never written.
func (r Ref[V]) Value() V { return r.value }

// IsZero reports whether this handle resolved to the canonical zero slot
// (a[R]) rather than a concrete diagonal or stored off-diagonal cell.
func (r Ref[V]) IsZero() bool { return r.zero }

// boundsCheck validates (r, c) against the descriptor's shape.
func (m *Matrix[V]) boundsCheck(op string, r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return wrapf(op, ErrPreconditionViolated)
	}

	return nil
}

// Ref reads cell (r, c). If r == c it returns the diagonal slot; else it
// binary-searches row r's off-diagonal range and returns either the
// matching stored entry or the canonical zero handle.
func (m *Matrix[V]) Ref(r, c int) (Ref[V], error) {
	if err := m.boundsCheck("Ref", r, c); err != nil {
		var zero V
		return Ref[V]{value: zero, zero: true}, err
	}

	if r == c {
		return Ref[V]{value: m.a[r]}, nil
	}

	rowStart, rowEnd := int(m.ija[r]), int(m.ija[r+1])
	if rowStart == rowEnd {
		return Ref[V]{value: m.a[m.rows], zero: true}, nil
	}

	pos := lookupSearch(m.ija, rowStart, rowEnd-1, int32(c))
	if pos == notFound {
		return Ref[V]{value: m.a[m.rows], zero: true}, nil
	}

	return Ref[V]{value: m.a[pos]}, nil
}

// Get is shorthand for Ref(r, c).Value() with the error propagated
// directly, for callers who don't need to distinguish stored-zero from
// missing.
func (m *Matrix[V]) Get(r, c int) (V, error) {
	ref, err := m.Ref(r, c)
	if err != nil {
		var zero V
		return zero, err
	}

	return ref.Value(), nil
}

// Set writes v at (r, c) and reports whether an existing cell was
// replaced or a new one inserted:
//
//   - r == c: always a replace, straight into the dense diagonal.
//   - r != c, row empty: insert at ija[r].
//   - r != c, row non-empty: insertion-search; overwrite on hit, insert
//     on miss.
func (m *Matrix[V]) Set(r, c int, v V) (InsertResult, error) {
	if err := m.boundsCheck("Set", r, c); err != nil {
		return Replaced, err
	}

	if r == c {
		m.a[r] = v

		return Replaced, nil
	}

	rowStart, rowEnd := int(m.ija[r]), int(m.ija[r+1])

	if rowStart == rowEnd {
		if _, err := m.insert(rowStart, []int32{int32(c)}, []V{v}, false); err != nil {
			return Replaced, err
		}
		m.shiftRowEnds(r, 1)
		m.ndnz++

		return Inserted, nil
	}

	pos, found := insertSearch(m.ija, rowStart, rowEnd-1, int32(c))
	if found {
		m.a[pos] = v

		return Replaced, nil
	}

	if _, err := m.insert(pos, []int32{int32(c)}, []V{v}, false); err != nil {
		return Replaced, err
	}
	m.shiftRowEnds(r, 1)
	m.ndnz++

	return Inserted, nil
}

// NNZ returns the total number of stored nonzero slots, diagonal
// included: ndnz + rows, matching how a classic sparse matrix object
// reports nnz over the whole matrix rather than just the off-diagonal
// count that ndnz tracks.
func (m *Matrix[V]) NNZ() int { return m.ndnz + m.rows }

// Diagonal returns a copy of the dense diagonal a[0:R].
func (m *Matrix[V]) Diagonal() []V {
	out := make([]V, m.rows)
	copy(out, m.a[:m.rows])

	return out
}

// Row walks row i's stored off-diagonal (col, value) pairs in increasing
// column order, calling fn for each; it stops early if fn returns false.
// This is a read-only, single-row walk — it does not implement general
// slicing, which the package does not provide.
func (m *Matrix[V]) Row(i int, fn func(col int, v V) bool) error {
	if i < 0 || i >= m.rows {
		return wrapf("Row", ErrPreconditionViolated)
	}

	start, end := int(m.ija[i]), int(m.ija[i+1])
	for p := start; p < end; p++ {
		if !fn(int(m.ija[p]), m.a[p]) {
			return nil
		}
	}

	return nil
}

// Scale multiplies every stored value (diagonal and off-diagonal) by c,
// in place. It never writes through the canonical zero slot since it
// only touches a[0:R) and a[R+1:size), skipping a[R].
func Scale[V Numeric](m *Matrix[V], c V) {
	size := m.GetSize()
	for i := 0; i < m.rows; i++ {
		m.a[i] *= c
	}
	for p := m.rows + 1; p < size; p++ {
		m.a[p] *= c
	}
}
