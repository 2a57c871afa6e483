// SPDX-License-Identifier: MIT
// Package yale: transpose, the classical two-pass SMMP transpose.

package yale

// Transpose produces M^T of shape (cols, rows) in a fresh descriptor.
// Pass 1 counts off-diagonal entries per source column to build the
// transposed row pointers; pass 2 places each source entry into the next
// free slot of its destination row. Because pass 2 walks source rows in
// ascending order and a destination row j only ever receives column index
// i (the source row currently being visited), each destination row comes
// out already column-sorted (I1) without a separate sort pass. The
// diagonal passes through unchanged for i < min(rows, cols). size(M^T) is
// cols+1+ndnz, which equals size(M) when M is square.
func Transpose[V Value](m *Matrix[V]) *Matrix[V] {
	rows, cols := m.rows, m.cols
	ndnz := m.ndnz

	outRows := cols
	capacity := outRows + 1 + ndnz
	if capacity < minCapacity(outRows) {
		capacity = minCapacity(outRows)
	}

	out := &Matrix[V]{
		rows:         outRows,
		cols:         rows,
		capacity:     capacity,
		ija:          make([]int32, capacity),
		a:            make([]V, capacity),
		ndnz:         ndnz,
		growthFactor: m.growthFactor,
		trace:        m.trace,
		allocGate:    m.allocGate,
		indexTag:     chooseIndexTag(outRows, rows),
		dtype:        m.dtype,
	}
	out.Init()
	out.ndnz = ndnz

	// Diagonal passes through for i < min(rows, cols); Init already
	// zeroed the rest.
	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	for i := 0; i < minDim; i++ {
		out.a[i] = m.a[i]
	}

	if ndnz == 0 {
		return out
	}

	// Pass 1: count off-diagonal entries per source column.
	count := make([]int32, cols)
	for i := 0; i < rows; i++ {
		start, end := int(m.ija[i]), int(m.ija[i+1])
		for p := start; p < end; p++ {
			count[m.ija[p]]++
		}
	}

	rowStart := int32(outRows + 1)
	for j := 0; j < cols; j++ {
		out.ija[j] = rowStart
		rowStart += count[j]
	}
	out.ija[outRows] = rowStart

	// Pass 2: scatter each source entry to the next free slot of its
	// destination row.
	next := make([]int32, cols)
	copy(next, out.ija[:cols])

	for i := 0; i < rows; i++ {
		start, end := int(m.ija[i]), int(m.ija[i+1])
		for p := start; p < end; p++ {
			j := m.ija[p]
			slot := next[j]
			out.ija[slot] = int32(i)
			out.a[slot] = m.a[p]
			next[j] = slot + 1
		}
	}

	return out
}
