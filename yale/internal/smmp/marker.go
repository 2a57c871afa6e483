// SPDX-License-Identifier: MIT
// Package smmp holds the structural building blocks of the sparse x
// sparse multiply kernel: the per-row marker used by the
// symbolic phase, and the symbolic phase itself. The numeric phase and
// the post-multiply column sort stay in package yale, since they need
// arithmetic over the caller's element type and this package deliberately
// stays generic-free and value-agnostic.
package smmp

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// RowMarker records, for the row currently being built, which output
// columns have already been registered — a per-row marker array of
// length cols(B). Reset must be called between rows.
type RowMarker interface {
	// Mark records col as seen; it returns true the first time col is
	// marked in the current row, false on every subsequent call.
	Mark(col int) bool
	// Reset clears all marks, readying the marker for the next row.
	Reset()
}

// denseRowMarker is a flat bitset reset only over the columns actually
// touched, cheap for narrow-to-moderate result widths.
type denseRowMarker struct {
	bits    *bitset.BitSet
	touched []uint
}

func (d *denseRowMarker) Mark(col int) bool {
	c := uint(col)
	if d.bits.Test(c) {
		return false
	}
	d.bits.Set(c)
	d.touched = append(d.touched, c)

	return true
}

func (d *denseRowMarker) Reset() {
	for _, c := range d.touched {
		d.bits.Clear(c)
	}
	d.touched = d.touched[:0]
}

// roaringRowMarker backs very wide result matrices with a compressed
// bitmap instead of a dense bitset — the same posting-list intersection
// role RoaringBitmap plays in an ANN index's inverted lists, repurposed
// here to dedupe candidate output columns per row.
type roaringRowMarker struct {
	bm *roaring.Bitmap
}

func (r *roaringRowMarker) Mark(col int) bool {
	c := uint32(col)
	if r.bm.Contains(c) {
		return false
	}
	r.bm.Add(c)

	return true
}

func (r *roaringRowMarker) Reset() {
	r.bm.Clear()
}

// wideMarkerThreshold is the column-count above which the roaring-backed
// marker replaces the dense bitset: past this width, a per-row bitset
// reset dominates runtime even when few columns are ever touched.
const wideMarkerThreshold = 4096

// NewRowMarker returns the marker implementation appropriate for a result
// matrix with the given column count.
func NewRowMarker(cols int) RowMarker {
	if cols <= wideMarkerThreshold {
		return &denseRowMarker{bits: bitset.New(uint(cols))}
	}

	return &roaringRowMarker{bm: roaring.New()}
}
