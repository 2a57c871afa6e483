// SPDX-License-Identifier: MIT
// Package yale: structural merge — the union of two matrices'
// off-diagonal patterns.
//
// The reference implementation's create_merged has a defect worth
// flagging rather than reproducing: the local variable tracking the
// current row's upper bound (ija_next) is only bumped inside the
// empty-row branch's insertion, and the non-empty-row branch reads
// whatever 'i'/'r' value is left over from the PREVIOUS row's insertion
// rather than the one that just happened, silently dropping later
// insertions into the same row when a row picks up more than one new
// column from the right operand. Merge avoids this by always reacting to
// the InsertResult the current insert call actually returned (see the
// regression test in merge_test.go).

package yale

import "github.com/bits-and-blooms/bitset"

// Merge produces S, the structural union of l's and r's off-diagonal
// patterns. S has l's shape, value type and diagonal; S.ndnz starts at
// l.ndnz and grows by one for every column present in r's row i but
// absent from S's (evolving) row i.
//
// A per-row bitset records which columns are already present in S's row
// before falling back to the binary insertion search that determines
// where a genuinely new column must go: membership is checked in O(1)
// instead of O(log width) for every column r contributes, and the search
// only runs for columns the bitset didn't already rule out.
func Merge[V Value](l, r *Matrix[V]) (*Matrix[V], error) {
	if l == nil || r == nil {
		return nil, wrapf("Merge", ErrNilDescriptor)
	}
	if l.rows != r.rows || l.cols != r.cols {
		return nil, wrapf("Merge", ErrDimensionMismatch)
	}

	startCapacity := l.capacity
	if r.capacity > startCapacity {
		startCapacity = r.capacity
	}

	s := structCopy(l, startCapacity)
	lSize := l.GetSize()
	copy(s.a[:lSize], l.a[:lSize])

	if r == l {
		return s, nil
	}

	seen := bitset.New(uint(s.cols))
	for i := 0; i < s.rows; i++ {
		ija := int(s.ija[i])
		ijaNext := int(s.ija[i+1])

		seen.ClearAll()
		for p := ija; p < ijaNext; p++ {
			seen.Set(uint(s.ija[p]))
		}

		rStart, rEnd := int(r.ija[i]), int(r.ija[i+1])
		for rp := rStart; rp < rEnd; rp++ {
			c := r.ija[rp]

			if seen.Test(uint(c)) {
				continue
			}

			pos, found := insertSearch(s.ija, ija, ijaNext-1, c)
			if found {
				ija = pos + 1

				continue
			}

			// s already carries l's values, so the value buffer must shift
			// with the columns; the new slot holds the zero value.
			var zero V
			result, err := s.insert(pos, []int32{c}, []V{zero}, false)
			if err != nil {
				return nil, err
			}
			s.shiftRowEnds(i, 1)
			s.ndnz++
			seen.Set(uint(c))

			if result == Inserted {
				ijaNext++
			}
			ija = pos + 1
		}
	}

	return s, nil
}
