// Copyright 2025 go-ipnsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ipnsort

// maxSmallSort is the range length at or below which both variants hand off
// to smallSort instead of partitioning or merging. It doubles as the minimum
// run length of the stable path, so short natural runs are widened here.
const maxSmallSort = 20

// smallSort sorts v with strategies tuned for short lengths: fully unrolled
// networks up to four elements, binary insertion with block shifting above.
// It is stable and allocation free, which lets the merge engine use it as its
// base case unchanged.
func smallSort[T any](v []T, less lessFn[T]) {
	switch len(v) {
	case 0, 1:
	case 2:
		sort2(v, less)
	case 3:
		sort2(v, less)
		insertTail(v, less)
	case 4:
		sort4(v, less)
	default:
		sort4(v, less)
		binaryInsertSort(v, 4, less)
	}
}

// sort2 orders v[0], v[1]. Swapping only on strictly-less keeps equal
// elements in input order.
func sort2[T any](v []T, less lessFn[T]) {
	if less(v[1], v[0]) {
		v[0], v[1] = v[1], v[0]
	}
}

// sort4 sorts v[:4] stably in five comparisons, following ipnsort's indirect
// four-element network: form two ordered pairs, peel off the minimum and
// maximum, then order the two remaining elements. The selection table tracks
// which of the unknowns came from the left pair so that equal elements keep
// their input order.
func sort4[T any](v []T, less lessFn[T]) {
	c1 := b2i(less(v[1], v[0]))
	c2 := b2i(less(v[3], v[2]))
	a, b := c1, c1^1
	c, d := 2+c2, 2+(c2^1)

	// Compare (a, c) and (b, d) to identify the overall min and max.
	// c3, c4 | min max unknownLeft unknownRight
	//  0,  0 |  a   d     b            c
	//  0,  1 |  a   b     c            d
	//  1,  0 |  c   d     a            b
	//  1,  1 |  c   b     a            d
	c3 := less(v[c], v[a])
	c4 := less(v[d], v[b])
	lo := sel(c3, c, a)
	hi := sel(c4, b, d)
	unknownLeft := sel(c3, a, sel(c4, c, b))
	unknownRight := sel(c4, d, sel(c3, b, c))

	c5 := less(v[unknownRight], v[unknownLeft])
	mid1 := sel(c5, unknownRight, unknownLeft)
	mid2 := sel(c5, unknownLeft, unknownRight)

	out := [4]T{v[lo], v[mid1], v[mid2], v[hi]}
	copy(v[:4], out[:])
}

// insertTail inserts v[len(v)-1] into the sorted prefix v[:len(v)-1],
// shifting greater elements right. One comparison per probed element.
func insertTail[T any](v []T, less lessFn[T]) {
	i := len(v) - 1
	if i < 1 {
		return
	}
	tmp := v[i]
	j := i
	for j > 0 && less(tmp, v[j-1]) {
		v[j] = v[j-1]
		j--
	}
	v[j] = tmp
}

// binaryInsertSort sorts v assuming v[:sortedTo] is already sorted, locating
// each insertion point with binary search and shifting the tail in one copy.
// Insertion after the run of equal elements keeps the sort stable.
func binaryInsertSort[T any](v []T, sortedTo int, less lessFn[T]) {
	if sortedTo < 1 {
		sortedTo = 1
	}
	for i := sortedTo; i < len(v); i++ {
		tmp := v[i]
		lo, hi := 0, i
		for lo < hi {
			m := int(uint(lo+hi) >> 1)
			if less(tmp, v[m]) {
				hi = m
			} else {
				lo = m + 1
			}
		}
		copy(v[lo+1:i+1], v[lo:i])
		v[lo] = tmp
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sel(cond bool, ifTrue, ifFalse int) int {
	if cond {
		return ifTrue
	}
	return ifFalse
}
