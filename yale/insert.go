// SPDX-License-Identifier: MIT
// Package yale: vector insert / resize.
//
// insert is the one place the in-place mutating operations (Set, Merge)
// go through to place new (column, value) pairs and, if necessary, grow
// the shared buffers. Transpose and Multiply build their results in
// freshly allocated buffers and do not call it. It never shrinks a
// descriptor's buffers and never leaves them partially resized on
// failure.

package yale

import "math"

// insert places n (column, value) pairs at contiguous positions starting
// at pos, preserving everything before pos and shifting everything from
// pos onward to the right by n. Preconditions (caller's responsibility):
// pos >= R+1, and no existing entry occupies cols[0:n] (I1 is preserved by
// the caller choosing pos via insertSearch).
//
// If structOnly is true, vals is ignored and only ija is updated: when the
// buffers have room, the value slots from pos onward are not shifted, so
// a[pos:size+n) no longer lines up with its columns; when the buffers
// grow, a is shifted like ija and the new slots hold zero values. It is
// for callers that fill every value in a later pass.
func (m *Matrix[V]) insert(pos int, cols []int32, vals []V, structOnly bool) (InsertResult, error) {
	if pos < m.rows+1 {
		return Replaced, wrapf("insert", ErrPreconditionViolated)
	}

	n := len(cols)
	size := int(m.ija[m.rows])

	if size+n > m.capacity {
		if err := m.growAndShift(pos, size, n); err != nil {
			return Replaced, err
		}
	} else {
		// In place: shift the tail right by n, starting from the end so
		// overlapping copies don't clobber source data.
		for i := size - 1; i >= pos; i-- {
			m.ija[i+n] = m.ija[i]
			if !structOnly {
				m.a[i+n] = m.a[i]
			}
		}
	}

	for k := 0; k < n; k++ {
		m.ija[pos+k] = cols[k]
		if !structOnly {
			m.a[pos+k] = vals[k]
		}
	}

	return Inserted, nil
}

// growAndShift allocates new buffers large enough to hold size+n
// elements, copies the existing prefix [0:pos) and the shifted suffix
// [pos:size) -> [pos+n:size+n) into them, and swaps them in. No swap
// happens unless both new buffers were obtained, so a rejected allocGate
// or an oversized request leaves m untouched.
func (m *Matrix[V]) growAndShift(pos, size, n int) error {
	maxCap := maxCapacity(m.rows, m.cols)
	if size+n > maxCap {
		return wrapf("insert", ErrCapacityExceeded)
	}

	newCapacity := int(math.Ceil(float64(m.capacity) * m.growthFactor))
	if newCapacity < size+n {
		newCapacity = size + n
	}
	if newCapacity > maxCap {
		newCapacity = maxCap
	}

	if m.allocGate != nil {
		if err := m.allocGate(newCapacity); err != nil {
			return wrapf("insert", ErrAllocationFailed)
		}
	}

	newIja := make([]int32, newCapacity)
	newA := make([]V, newCapacity)

	copy(newIja[:pos], m.ija[:pos])
	copy(newA[:pos], m.a[:pos])
	copy(newIja[pos+n:size+n], m.ija[pos:size])
	copy(newA[pos+n:size+n], m.a[pos:size])

	m.ija = newIja
	m.a = newA
	m.capacity = newCapacity

	return nil
}
