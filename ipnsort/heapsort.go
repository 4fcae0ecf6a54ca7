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

// siftDown restores the max-heap property on v[lo:hi], where first is the
// offset into v at which the heap's root lies.
func siftDown[T any](v []T, lo, hi, first int, less lessFn[T]) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && less(v[first+child], v[first+child+1]) {
			child++
		}
		if !less(v[first+root], v[first+child]) {
			return
		}
		v[first+root], v[first+child] = v[first+child], v[first+root]
		root = child
	}
}

// heapSort sorts v[a:b] in guaranteed O(n log n) comparisons. It is the
// escalation target when the partition engine exhausts its depth budget and
// is deliberately kept out of the hot path.
func heapSort[T any](v []T, a, b int, less lessFn[T]) {
	first := a
	lo := 0
	hi := b - a

	// Build heap with greatest element at top.
	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDown(v, i, hi, first, less)
	}

	// Pop elements, largest first, into the end of the range.
	for i := hi - 1; i >= 0; i-- {
		v[first], v[first+i] = v[first+i], v[first]
		siftDown(v, lo, i, first, less)
	}
}
