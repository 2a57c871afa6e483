// SPDX-License-Identifier: MIT
// Package yale: the matrix descriptor — shape, capacity, size, the
// two parallel buffers, and their lifecycle (create/init/destroy).

package yale

import (
	"log"
	"reflect"
)

// Matrix is the New Yale sparse matrix descriptor, parameterized over its
// element type V. It owns two parallel buffers (ija, a) of length
// capacity, laid out:
//
//	ija[0..R]   row pointers, ija[R] == size (sentinel)
//	a[0..R)     the dense diagonal, a[i] == M[i,i]
//	a[R]        the canonical stored zero
//	[R+1, size) off-diagonal columns (ija) and values (a), row i occupying
//	            ija[ija[i]:ija[i+1]], strictly increasing (I1)
type Matrix[V Value] struct {
	rows, cols int
	capacity   int
	ndnz       int
	ija        []int32
	a          []V

	growthFactor float64
	trace        *log.Logger
	allocGate    AllocGate
	indexTag     IndexTag
	dtype        DType
}

// minCapacity is the floor imposed by I3: never less than R+2.
func minCapacity(rows int) int {
	return rows + 2
}

// maxCapacity is the largest in-use size a rows x cols matrix can reach:
// rows*cols + 1 when rows <= cols. A taller matrix has rows-cols diagonal
// slots that name no real cell, so its ceiling is raised by that amount.
func maxCapacity(rows, cols int) int {
	if rows > cols {
		return rows*cols + 1 + rows - cols
	}

	return rows*cols + 1
}

func clampCapacity(requested, rows, cols int) int {
	lo := minCapacity(rows)
	hi := maxCapacity(rows, cols)
	if lo > hi {
		// Degenerate shapes (e.g. 1x1) where rows*cols+1 < rows+2: the
		// hard ceiling wins.
		lo = hi
	}
	if requested < lo {
		return lo
	}
	if requested > hi {
		return hi
	}

	return requested
}

// dtypeOf classifies V into the reported DType family. It never affects
// storage layout; see types.go.
func dtypeOf[V Value]() DType {
	var zero V
	rv := reflect.ValueOf(any(zero))
	if !rv.IsValid() {
		return DTypeBoxed
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return DTypeInteger
	case reflect.Float32, reflect.Float64:
		return DTypeFloat
	case reflect.Complex64, reflect.Complex128:
		return DTypeComplex
	default:
		return DTypeBoxed
	}
}

// Create allocates a new rows x cols descriptor. Requires rank 2, i.e.
// rows > 0 and cols > 0, else ErrShapeUnsupported (no descriptor is
// created). The requested initial capacity (WithInitialCapacity, or
// DefaultInitialCapacity) is clamped into [minCapacity, maxCapacity],
// then Init lays out the empty structure.
func Create[V Value](rows, cols int, opts ...Option) (*Matrix[V], error) {
	if rows <= 0 || cols <= 0 {
		return nil, wrapf("Create", ErrShapeUnsupported)
	}

	s := gatherOptions(opts)
	capacity := clampCapacity(s.initialCapacity, rows, cols)

	m := &Matrix[V]{
		rows:         rows,
		cols:         cols,
		capacity:     capacity,
		ija:          make([]int32, capacity),
		a:            make([]V, capacity),
		growthFactor: s.growthFactor,
		trace:        s.trace,
		allocGate:    s.allocGate,
		indexTag:     chooseIndexTag(rows, cols),
		dtype:        dtypeOf[V](),
	}
	m.Init()

	return m, nil
}

// Init resets a descriptor to the empty state: every row pointer collapses
// to R+1 (all rows empty), the diagonal is cleared to the zero value of V,
// and a[R] (the canonical zero) is reset. Idempotent.
func (m *Matrix[V]) Init() {
	r := m.rows
	rowStart := int32(r + 1)
	for i := 0; i <= r; i++ {
		m.ija[i] = rowStart
	}
	var zero V
	for i := 0; i < r; i++ {
		m.a[i] = zero
	}
	m.a[r] = zero
	m.ndnz = 0
}

// Destroy releases the descriptor's buffers. Go's garbage collector
// reclaims the backing arrays once unreferenced; Destroy exists so
// callers coming from a C-style create/destroy lifecycle have an
// explicit release point and so a destroyed Matrix cannot be silently
// reused (I5: exclusive ownership ends here).
func (m *Matrix[V]) Destroy() {
	m.ija = nil
	m.a = nil
	m.rows, m.cols, m.capacity, m.ndnz = 0, 0, 0, 0
}

// Rows returns the row count.
func (m *Matrix[V]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[V]) Cols() int { return m.cols }

// Capacity returns the allocated length of both buffers.
func (m *Matrix[V]) Capacity() int { return m.capacity }

// NDNZ returns the number of off-diagonal stored entries.
func (m *Matrix[V]) NDNZ() int { return m.ndnz }

// GetSize returns ija[R], the total in-use length of both buffers (row
// pointers/diagonal, the reserved slot, and the off-diagonal entries).
func (m *Matrix[V]) GetSize() int { return int(m.ija[m.rows]) }

// DType reports the element-type family this Matrix was instantiated
// with (informational; see types.go).
func (m *Matrix[V]) DType() DType { return m.dtype }

// IndexTag reports the smallest unsigned index type that could represent
// this matrix's shape (informational; storage always uses int32).
func (m *Matrix[V]) IndexTag() IndexTag { return m.indexTag }
