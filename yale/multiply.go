// SPDX-License-Identifier: MIT
// Package yale: sparse x sparse multiply — the numeric phase and
// column sort of the SMMP kernel. The structural (symbolic) phase lives
// in yale/internal/smmp, since it needs no arithmetic over V.

package yale

import "github.com/arnegrau/newyale/yale/internal/smmp"

// Multiply computes L*R and returns a fresh descriptor of shape
// (l.rows, r.cols). isVector is accepted for interface parity with
// callers that distinguish a matrix-vector product from a general
// matrix-matrix product; it does not change how the result is built,
// since producing a dense vector result is out of scope here — the
// result is always a New Yale descriptor, R x 1 included.
//
// The kernel runs three passes, mirroring the reference implementation's
// symbmm/numbmm/sort split:
//
//  1. Symbolic: smmp.Symbolic determines, for each output row, which
//     columns will hold a nonzero contribution, treating both operands'
//     diagonals as always-present entries at (i,i) wherever that entry
//     falls within the operands' shared dimension.
//  2. Numeric: a dense accumulator of width r.cols gathers
//     sum_k L[i,k]*R[k,j] for every column the symbolic phase found.
//  3. Sort: each row's newly placed off-diagonal columns are emitted in
//     arrival order by the symbolic phase and must be sorted before the
//     result satisfies I1.
func Multiply[V Numeric](l, r *Matrix[V], isVector bool) (*Matrix[V], error) {
	if l == nil || r == nil {
		return nil, wrapf("Multiply", ErrNilDescriptor)
	}
	if l.cols != r.rows {
		return nil, wrapf("Multiply", ErrDimensionMismatch)
	}

	outRows, outCols := l.rows, r.cols
	header := outRows + 1

	lRowPtr, lCol := localRowPtrCols(l)
	rRowPtr, rCol := localRowPtrCols(r)

	maxCap := maxCapacity(outRows, outCols)
	capacityBound := l.capacity + r.capacity - header
	if capacityBound > maxCap-header {
		capacityBound = maxCap - header
	}
	if capacityBound < 0 {
		capacityBound = 0
	}

	rowPtr, col, err := smmp.Symbolic(outRows, outCols, lRowPtr, lCol, rRowPtr, rCol, capacityBound, l.trace)
	if err != nil {
		return nil, wrapf("Multiply", ErrCapacityExceeded)
	}

	ndnz := int(rowPtr[outRows])
	size := header + ndnz

	capacity := l.capacity + r.capacity
	if capacity < size {
		capacity = size
	}
	if capacity > maxCap {
		capacity = maxCap
	}

	out := &Matrix[V]{
		rows:         outRows,
		cols:         outCols,
		capacity:     capacity,
		ija:          make([]int32, capacity),
		a:            make([]V, capacity),
		ndnz:         ndnz,
		growthFactor: l.growthFactor,
		trace:        l.trace,
		allocGate:    l.allocGate,
		indexTag:     chooseIndexTag(outRows, outCols),
		dtype:        l.dtype,
	}

	for i := 0; i <= outRows; i++ {
		out.ija[i] = int32(header) + rowPtr[i]
	}

	acc := make([]V, outCols)
	var zero V

	contribute := func(k int, lval V) {
		if lval == zero {
			return
		}
		// R's diagonal at (k,k) only exists while k < r.cols; beyond that
		// the slot is unaddressable and permanently zero, so it is safe
		// (and necessary, to stay in bounds of acc) to skip it.
		if k < outCols {
			acc[k] += lval * r.a[k]
		}

		rs, re := int(r.ija[k]), int(r.ija[k+1])
		for q := rs; q < re; q++ {
			j := int(r.ija[q])
			acc[j] += lval * r.a[q]
		}
	}

	for i := 0; i < outRows; i++ {
		rowCols := col[rowPtr[i]:rowPtr[i+1]]

		// L[i,i] only names a real summation term while i < r.rows, the
		// shared dimension; for a tall L (outRows > r.rows) it falls
		// outside R's row space entirely and contributes nothing.
		if i < r.rows {
			contribute(i, l.a[i])
		}
		ls, le := int(l.ija[i]), int(l.ija[i+1])
		for p := ls; p < le; p++ {
			k := int(l.ija[p])
			contribute(k, l.a[p])
		}

		// out's diagonal cell (i,i) only exists while i < outCols; for a
		// tall output's rows past that bound the position is unaddressable
		// and stays at its zero-initialized value.
		if i < outCols {
			out.a[i] = acc[i]
		}

		base := int(out.ija[i])
		for idx, j := range rowCols {
			out.ija[base+idx] = j
			out.a[base+idx] = acc[int(j)]
		}

		if i < outCols {
			acc[i] = zero
		}
		for _, j := range rowCols {
			acc[int(j)] = zero
		}

		sortRowColumns(out.ija, out.a, base, base+len(rowCols))
	}

	return out, nil
}

// localRowPtrCols converts a descriptor's shared-buffer row pointers into
// the 0-based (rowPtr, col) pair smmp.Symbolic expects: rowPtr[i] is the
// offset of row i's first off-diagonal column within col, independent of
// where those columns actually live in m's own buffers.
func localRowPtrCols[V Value](m *Matrix[V]) ([]int32, []int32) {
	header := int32(m.rows + 1)
	rowPtr := make([]int32, m.rows+1)
	for i := 0; i <= m.rows; i++ {
		rowPtr[i] = m.ija[i] - header
	}

	return rowPtr, m.ija[header:m.GetSize()]
}

// sortRowColumns insertion-sorts ija[start:end] (and the parallel a
// values) into ascending order. Rows produced by the symbolic phase
// arrive in visitation order, not column order, so every row needs
// exactly one sort pass before I1 holds; insertion sort is a reasonable
// choice since fill-in per row is typically small.
func sortRowColumns[V Value](ija []int32, a []V, start, end int) {
	for i := start + 1; i < end; i++ {
		colKey, valKey := ija[i], a[i]
		j := i - 1
		for j >= start && ija[j] > colKey {
			ija[j+1] = ija[j]
			a[j+1] = a[j]
			j--
		}
		ija[j+1] = colKey
		a[j+1] = valKey
	}
}
