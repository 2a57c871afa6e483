// SPDX-License-Identifier: MIT
// Package oldyale defines the triplet-style old-Yale input format
// consumed by yale.FromOldYale. It is intentionally a thin data-only
// package: parsing a matrix out of some external representation (a
// file, a scripting-runtime array) into a Triplet is a host-embedding
// concern, out of scope for this module.
package oldyale

import "errors"

// ErrMalformedTriplet is returned by Validate when IA/JA/A are not
// internally consistent.
var ErrMalformedTriplet = errors.New("oldyale: malformed triplet")

// Triplet holds a matrix in old-Yale (row-pointer + column + value) form,
// where IA[i:i+1] lists ALL nonzeros of row i, diagonal included --
// unlike New Yale, old-Yale does not separate the diagonal out into its
// own dense vector.
type Triplet[V comparable] struct {
	Rows, Cols int
	IA         []int // length Rows+1, IA[Rows] == len(JA) == len(A)
	JA         []int // column index for each stored entry
	A          []V   // value for each stored entry, parallel to JA
}

// Validate checks the triplet's internal shape invariants: IA has the
// right length and is non-decreasing, and every JA entry is in range.
// It does not check sortedness of JA within a row (FromOldYale is
// intentionally row-order oblivious in its counting pass).
func (t Triplet[V]) Validate() error {
	if t.Rows <= 0 || t.Cols <= 0 {
		return ErrMalformedTriplet
	}
	if len(t.IA) != t.Rows+1 {
		return ErrMalformedTriplet
	}
	for i := 0; i < t.Rows; i++ {
		if t.IA[i] > t.IA[i+1] {
			return ErrMalformedTriplet
		}
	}
	size := t.IA[t.Rows]
	if size != len(t.JA) || size != len(t.A) {
		return ErrMalformedTriplet
	}
	for _, j := range t.JA {
		if j < 0 || j >= t.Cols {
			return ErrMalformedTriplet
		}
	}

	return nil
}
