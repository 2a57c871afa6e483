// SPDX-License-Identifier: MIT
// Package yale: embedder-provided services — the dtype-size table, the
// promote rule, and the mark hook for boxed element types. The dtype
// dispatch table itself (selecting a concrete Matrix[V] instantiation
// from a runtime type tag) is explicitly out of scope; what lives here
// are the small, concrete services this package needs to honor
// cross-type equality and GC-style tracing of boxed slots.

package yale

import (
	"reflect"
	"unsafe"
)

// DTypeSize reports bytes-per-element for a concrete Go element type, the
// same role as the reference implementation's DTYPE_SIZES table. It is
// computed with unsafe.Sizeof rather than hand-maintained per type, since
// Go already knows every type's size.
func DTypeSize[V Value]() uintptr {
	var zero V

	return unsafe.Sizeof(zero)
}

// promoteToComplex128 is the concrete promote(LDType, RDType) -> DType
// rule used by EqualNumeric: every Numeric type promotes losslessly (for
// realistic magnitudes) to complex128, which can represent integers,
// floats and complex values alike. Values are read through `any` because
// the two operands of a cross-type comparison are, by construction,
// instantiated with different type parameters and Go generics have no
// notion of "convert from an arbitrary numeric type parameter."
func promoteToComplex128(v any) complex128 {
	switch x := v.(type) {
	case int:
		return complex(float64(x), 0)
	case int8:
		return complex(float64(x), 0)
	case int16:
		return complex(float64(x), 0)
	case int32:
		return complex(float64(x), 0)
	case int64:
		return complex(float64(x), 0)
	case uint:
		return complex(float64(x), 0)
	case uint8:
		return complex(float64(x), 0)
	case uint16:
		return complex(float64(x), 0)
	case uint32:
		return complex(float64(x), 0)
	case uint64:
		return complex(float64(x), 0)
	case uintptr:
		return complex(float64(x), 0)
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		// Unreachable for any V satisfying Numeric; reflection is used
		// only as a defensive fallback for constraint sets we have not
		// enumerated above.
		rv := reflect.ValueOf(v)
		if rv.CanFloat() {
			return complex(rv.Float(), 0)
		}
		if rv.CanInt() {
			return complex(float64(rv.Int()), 0)
		}
		if rv.CanUint() {
			return complex(float64(rv.Uint()), 0)
		}

		return 0
	}
}

// MarkVisitor is the embedder's GC-tracing hook: given a descriptor whose
// value type is the boxed-reference tag, visit every live slot in
// a[0..size].
type MarkVisitor interface {
	Visit(slot any)
}

// MarkVisitorFunc adapts a plain function to MarkVisitor.
type MarkVisitorFunc func(slot any)

func (f MarkVisitorFunc) Visit(slot any) { f(slot) }

// Mark visits every live slot of a boxed-reference Matrix: the diagonal
// a[0:R], the canonical zero a[R], and every stored off-diagonal value in
// a[R+1:size). Only meaningful for Matrix[V] where V is a reference type
// (DType() == DTypeBoxed); calling it on a numeric Matrix is harmless but
// pointless, since numeric Go values need no GC tracing.
func Mark[V Value](m *Matrix[V], visitor MarkVisitor) {
	size := m.GetSize()
	for i := 0; i <= m.rows; i++ {
		visitor.Visit(any(m.a[i]))
	}
	for p := m.rows + 1; p < size; p++ {
		visitor.Visit(any(m.a[p]))
	}
}
