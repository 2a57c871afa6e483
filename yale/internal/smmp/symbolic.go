// SPDX-License-Identifier: MIT
package smmp

import (
	"errors"
	"log"
)

// ErrOverflow is returned when the symbolic structure would need more
// off-diagonal slots than the caller's capacity bound allows.
var ErrOverflow = errors.New("smmp: symbolic structure exceeds capacity bound")

// Symbolic builds the structural product of two New Yale operands
// (the multiply kernel's first pass). lRowPtr/lCol and rRowPtr/rCol are
// each operand's row pointers and off-diagonal column indices (lRowPtr
// has length outRows+1, since l.rows == outRows for A*B); rRowPtr has
// length l.cols+1. outCols is r.cols, the output's column count.
// Diagonals are treated as if they were explicit entries at (i,i): for
// row i, the set of contributing "middle" indices k is {i} union l's
// off-diagonal columns of row i, and for each such k the contributed
// output columns are {k} union r's off-diagonal columns of row k — but
// only when k itself is a valid output column (k < outCols); for a
// rectangular R taller than it is wide, R's diagonal cell (k,k) with
// k >= outCols does not exist and contributes nothing.
//
// The returned rowPtr/col describe the result's off-diagonal region using
// LOCAL 0-based column-array offsets (not yet shifted by outRows+1, and
// not yet sorted — that happens once, generically, in package yale). Each
// row's columns are emitted in arrival order and deliberately exclude
// column i (the diagonal), since that slot always exists independent of
// symbolic structure.
//
// capacityBound is the maximum number of off-diagonal slots the caller's
// pre-allocated result may hold (capacity(L) + capacity(R), minus the
// outRows+1 header); exceeding it returns ErrOverflow.
//
// trace, if non-nil, receives one line reporting rows processed and the
// resulting off-diagonal fill-in count.
func Symbolic(outRows, outCols int, lRowPtr, lCol []int32, rRowPtr, rCol []int32, capacityBound int, trace *log.Logger) (rowPtr []int32, col []int32, err error) {
	rowPtr = make([]int32, outRows+1)
	col = make([]int32, 0, capacityBound)
	marker := NewRowMarker(outCols)

	// mid is the shared dimension (l.cols == r.rows). k only names a real
	// summation term, and only indexes rRowPtr/rCol, while k < mid; for a
	// tall L (outRows > mid) the diagonal term L[i,i] with i >= mid falls
	// outside the shared dimension entirely and contributes nothing.
	mid := len(rRowPtr) - 1

	for i := 0; i < outRows; i++ {
		marker.Reset()

		emit := func(k int) error {
			if k < outCols && k != i && marker.Mark(k) {
				if len(col) >= capacityBound {
					return ErrOverflow
				}
				col = append(col, int32(k))
			}
			rs, re := int(rRowPtr[k]), int(rRowPtr[k+1])
			for q := rs; q < re; q++ {
				j := int(rCol[q])
				if j == i {
					continue
				}
				if marker.Mark(j) {
					if len(col) >= capacityBound {
						return ErrOverflow
					}
					col = append(col, int32(j))
				}
			}

			return nil
		}

		if i < mid {
			if err := emit(i); err != nil {
				return nil, nil, err
			}
		}

		ls, le := int(lRowPtr[i]), int(lRowPtr[i+1])
		for p := ls; p < le; p++ {
			k := int(lCol[p])
			// k is an off-diagonal column of L, always < l.cols == mid.
			if err := emit(k); err != nil {
				return nil, nil, err
			}
		}

		rowPtr[i+1] = int32(len(col))
	}

	if trace != nil {
		trace.Printf("smmp: symbolic phase: %d rows processed, %d fill-in entries", outRows, len(col))
	}

	return rowPtr, col, nil
}
