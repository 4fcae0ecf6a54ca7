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

import "cmp"

// Sort sorts x in ascending order. The sort is not stable: equal elements
// may be reordered. It runs in place, allocates at most O(log n) bookkeeping
// and is O(n log n) worst case.
func Sort[T cmp.Ordered](x []T) {
	unstableEntry(x, cmp.Less[T])
}

// SortFunc sorts x in the order determined by the comparator, which must
// return a negative number when a < b, zero when a == b and a positive
// number when a > b. The sort is not stable.
//
// The comparator should describe a strict weak ordering; if it does not, the
// resulting order is unspecified but SortFunc still terminates and x still
// holds exactly the elements it held on entry.
func SortFunc[T any](x []T, cmp func(a, b T) int) {
	unstableEntry(x, lessFromCmp(cmp))
}

// SortStable sorts x in ascending order, keeping equal elements in their
// original order. It allocates a scratch buffer the size of x; if that
// allocation is impossible the process aborts like any other Go allocation
// failure. Use SortStableWithBuffer to control scratch ownership.
func SortStable[T cmp.Ordered](x []T) {
	stableEntry(x, nil, true, cmp.Less[T])
}

// SortStableFunc sorts x in the order determined by the comparator, keeping
// elements that compare equal in their original order. See SortFunc for the
// comparator contract and SortStable for allocation behavior.
func SortStableFunc[T any](x []T, cmp func(a, b T) int) {
	stableEntry(x, nil, true, lessFromCmp(cmp))
}

// SortStableWithBuffer is SortStable using caller-owned scratch space. It
// never allocates element storage: with len(buf) >= len(x) it runs the fast
// merge, with a smaller (or nil) buffer it falls back to a slower in-place
// merge that is still O(n log n) comparisons and still stable. buf must not
// alias x; its contents are unspecified afterwards.
func SortStableWithBuffer[T cmp.Ordered](x, buf []T) {
	stableEntry(x, buf, false, cmp.Less[T])
}

// SortStableFuncWithBuffer is SortStableFunc using caller-owned scratch
// space, with the same buffer contract as SortStableWithBuffer.
func SortStableFuncWithBuffer[T any](x, buf []T, cmp func(a, b T) int) {
	stableEntry(x, buf, false, lessFromCmp(cmp))
}

// unstableEntry is the unstable facade: short inputs go straight to the
// small sorter, one linear pre-scan retires fully sorted and fully reversed
// inputs in O(n), everything else goes to the recursion controller.
func unstableEntry[T any](x []T, less lessFn[T]) {
	n := len(x)
	if n < 2 {
		return
	}
	if n <= maxSmallSort {
		smallSort(x, less)
		return
	}
	if end, reversed := findStreak(x, less); end == n {
		if reversed {
			reverseRange(x)
		}
		return
	}
	sortUnstable(x, less)
}

// stableEntry is the stable facade. The run scanner always runs; the merge
// engine is only engaged when more than one run remains.
func stableEntry[T any](x, buf []T, allocate bool, less lessFn[T]) {
	n := len(x)
	if n < 2 {
		return
	}
	if n <= maxSmallSort {
		smallSort(x, less)
		return
	}
	sortStable(x, buf, allocate, less)
}
