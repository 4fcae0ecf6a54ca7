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

import "math/bits"

// span is a pending half-open range [lo, hi) awaiting partitioning, together
// with the depth budget it inherited and the index of its ancestor pivot
// (-1 when the range has no sorted predecessor). Pending ranges never
// overlap.
type span struct {
	lo, hi int
	limit  int
	pred   int
}

// sortUnstable drives the partition engine over v, len(v) > maxSmallSort.
//
// Recursion is reified as an explicit stack of spans: each partition step
// defers the larger half and continues with the smaller one, so every pushed
// span is at most half the size of the span pushed before it and the stack
// never holds more than floor(log2 n)+1 entries. The depth budget starts at
// 2*log2(n) and is spent whenever a partition comes out imbalanced; a range
// that exhausts it escalates to heapSort and never returns to partitioning.
func sortUnstable[T any](v []T, less lessFn[T]) {
	n := len(v)
	limit := 2 * bits.Len(uint(n))

	stack := make([]span, 0, bits.Len(uint(n))+1)
	stack = append(stack, span{lo: 0, hi: n, limit: limit, pred: -1})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a, b, limit, pred := top.lo, top.hi, top.limit, top.pred

		wasBalanced, wasPartitioned := true, true

		for {
			length := b - a

			if length <= maxSmallSort {
				smallSort(v[a:b], less)
				break
			}

			// Too many imbalanced partitions: this range gets the guaranteed
			// O(n log n) treatment instead.
			if limit == 0 {
				heapSort(v, a, b, less)
				break
			}

			if !wasBalanced {
				breakPatterns(v, a, b)
				limit--
			}

			pivot, hint := choosePivot(v, a, b, less)
			if hint == decreasingHint {
				reverseRange(v[a:b])
				// The chosen pivot was pivot-a elements after the start of the
				// range; after reversing it is pivot-a elements before the end.
				pivot = (b - 1) - (pivot - a)
				hint = increasingHint
			}

			// The range is likely already sorted.
			if wasBalanced && wasPartitioned && hint == increasingHint {
				if partialInsertionSort(v, a, b, less) {
					break
				}
			}

			// If the candidate pivot does not exceed the ancestor pivot it is
			// the minimum of the range: the range holds many duplicates of it.
			// Group them and exclude them from further partitioning.
			if pred >= 0 && !less(v[pred], v[pivot]) {
				mid := partitionEqual(v, a, b, pivot, less)
				a = mid
				pred = -1
				continue
			}

			mid, alreadyPartitioned := partition(v, a, b, pivot, less)
			wasPartitioned = alreadyPartitioned

			leftLen, rightLen := mid-a, b-(mid+1)
			wasBalanced = min(leftLen, rightLen) >= length/8

			// Defer the larger half, continue with the smaller one. Handling
			// the smaller half first is what bounds the stack logarithmically.
			if leftLen < rightLen {
				stack = append(stack, span{lo: mid + 1, hi: b, limit: limit, pred: mid})
				b = mid
			} else {
				stack = append(stack, span{lo: a, hi: mid, limit: limit, pred: pred})
				a = mid + 1
				pred = mid
			}
		}
	}
}
