// Package yale implements the New Yale sparse matrix storage engine: a
// compact, mutable, in-memory layout for two-dimensional sparse matrices
// whose dominant cost is random-access read/write and sparse-by-sparse
// multiplication.
//
// The engine keeps a matrix's diagonal as a contiguous dense vector for
// O(1) access and stores every off-diagonal entry in a compressed-row
// structure (row pointers + sorted column indices + values) that shares
// one pair of growable buffers per matrix:
//
//	index  0 ... R        R+1                   size-1    size ... capacity-1
//	ija  [ row pointers ][ sentinel ][   column indices of off-diag entries   ]
//	a    [   diagonal  ][ reserved  ][         values of off-diag entries     ]
//
// Set and Merge funnel through the insertion/resize protocol in
// insert.go, which is the one place that grows an existing matrix's two
// buffers; the row-pointer prefix is then brought up to date by
// shiftRowEnds. Transpose and Multiply build their results in freshly
// allocated buffers instead.
//
// A Matrix is parameterized over its element type V. Structural
// operations (Transpose, Clone, Merge, row iteration) work for any
// comparable V, including a boxed reference type used to model a
// generic-object dtype. Operations requiring
// arithmetic (Multiply, Scale, cross-type Equal) are constrained to
// Numeric.
//
// A Matrix is not safe for concurrent use; each instance is owned by one
// caller at a time, and no operation suspends or may be cancelled midway.
package yale
