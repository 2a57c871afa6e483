// SPDX-License-Identifier: MIT
// Package yale: element-type constraints and reported type tags.
//
// The reference implementation dispatches, at runtime, through a
// two-dimensional table of typed specializations keyed by (value_type,
// index_type). That dispatch table is a host-embedding concern and lives
// outside this package. What this package owns is the generic core each
// table entry would instantiate: Matrix[V], parameterized directly over
// the Go element type instead of a runtime tag.
package yale

import "golang.org/x/exp/constraints"

// Value is the minimal constraint every Matrix element type must satisfy:
// comparable, so the diagonal's zero value and stored explicit zeros can
// be tested for equality (needed by Ref, Set and Equal). Boxed-reference
// element types (e.g. Matrix[*Cell] or Matrix[any]) satisfy Value but not
// Numeric, and can carry structure (Transpose, Clone, Merge, Row) without
// supporting arithmetic.
type Value interface {
	comparable
}

// Numeric is the constraint used by every operation that needs +, *, or a
// zero identity beyond simple equality: Multiply, Scale, and cross-type
// Equal. It mirrors the "integral, floating, complex" branches of the
// reference implementation's value_type tag; the boxed-reference branch
// is intentionally excluded since arithmetic on it is undefined.
type Numeric interface {
	Value
	constraints.Integer | constraints.Float | constraints.Complex
}

// DType reports which family a Matrix's element type belongs to. It is
// metadata only — it never changes how the buffers are laid out — kept so
// callers (and the embedder-provided dtype-size table) can inspect what a
// Matrix was instantiated with without resorting to reflection.
type DType uint8

const (
	// DTypeUnknown is the zero value; never produced by Create.
	DTypeUnknown DType = iota
	DTypeInteger
	DTypeFloat
	DTypeComplex
	// DTypeBoxed tags a Matrix[V] whose V is not Numeric (a reference type).
	DTypeBoxed
)

func (d DType) String() string {
	switch d {
	case DTypeInteger:
		return "integer"
	case DTypeFloat:
		return "float"
	case DTypeComplex:
		return "complex"
	case DTypeBoxed:
		return "boxed"
	default:
		return "unknown"
	}
}

// IndexTag reports the smallest unsigned integer type whose maximum
// representable value is >= max(rows, cols). Storage itself always uses a
// fixed int32 index buffer, the simpler option that's adequate in
// practice; IndexTag is reported metadata computed once at Create time
// and never influences buffer width.
type IndexTag uint8

const (
	IndexTagUint8 IndexTag = iota
	IndexTagUint16
	IndexTagUint32
)

func (t IndexTag) String() string {
	switch t {
	case IndexTagUint8:
		return "uint8"
	case IndexTagUint16:
		return "uint16"
	default:
		return "uint32"
	}
}

// chooseIndexTag returns the smallest unsigned index tag that can
// represent max(rows, cols).
func chooseIndexTag(rows, cols int) IndexTag {
	maxDim := rows
	if cols > maxDim {
		maxDim = cols
	}
	switch {
	case maxDim <= 1<<8-1:
		return IndexTagUint8
	case maxDim <= 1<<16-1:
		return IndexTagUint16
	default:
		return IndexTagUint32
	}
}

// InsertResult distinguishes an insertion from a replacement, replacing
// the reference implementation's 'i'/'r' character return codes with a
// typed enum.
type InsertResult uint8

const (
	Replaced InsertResult = iota
	Inserted
)

func (r InsertResult) String() string {
	if r == Inserted {
		return "inserted"
	}
	return "replaced"
}
