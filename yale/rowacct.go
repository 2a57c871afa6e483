// SPDX-License-Identifier: MIT
// Package yale: row-pointer accounting.

package yale

// shiftRowEnds adds n to ija[i+1 .. R], restoring I2 (row-pointer
// monotonicity) after an insertion of n entries into row i. Must be
// called exactly once per insertion that grew row i.
func (m *Matrix[V]) shiftRowEnds(i, n int) {
	for k := i + 1; k <= m.rows; k++ {
		m.ija[k] += int32(n)
	}
}
