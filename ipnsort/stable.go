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

// minGallop is the winning-streak length at which a merge switches from
// element-by-element comparison to galloping.
const minGallop = 7

// sortStable sorts v stably by merging the natural runs found by the scanner
// bottom up. Scratch is only allocated once the scan proves there is
// something to merge, so presorted inputs finish in O(n) without touching
// the allocator. When scratch spans v the merges ping-pong between v and
// scratch; otherwise the engine degrades to rotation-based in-place merges,
// slower but allocation free and still stable.
func sortStable[T any](v []T, buf []T, allocate bool, less lessFn[T]) {
	n := len(v)

	// ends[i] is the exclusive end of run i; runs tile v exactly.
	ends := make([]int, 0, n/maxSmallSort+1)
	for lo := 0; lo < n; {
		lo += nextRun(v[lo:], less)
		ends = append(ends, lo)
	}
	if len(ends) == 1 {
		return
	}

	scratch := buf
	if len(scratch) < n && allocate {
		scratch = make([]T, n)
	}
	if len(scratch) >= n {
		mergeRuns(v, scratch[:n], ends, less)
	} else {
		mergeRunsInPlace(v, ends, less)
	}
}

// mergeRuns repeatedly merges adjacent runs of src into dst, swapping the
// roles of the two buffers each pass, until a single run spans the range.
// A trailing unpaired run is carried over verbatim. If the final pass leaves
// the result in scratch it is copied back into v.
func mergeRuns[T any](v, scratch []T, ends []int, less lessFn[T]) {
	src, dst := v, scratch
	inScratch := false

	cur := ends
	next := make([]int, 0, (len(ends)+1)/2)
	for len(cur) > 1 {
		next = next[:0]
		lo := 0
		i := 0
		for ; i+1 < len(cur); i += 2 {
			mid, hi := cur[i], cur[i+1]
			mergeInto(dst[lo:hi], src[lo:mid], src[mid:hi], less)
			next = append(next, hi)
			lo = hi
		}
		if i < len(cur) {
			hi := cur[i]
			copy(dst[lo:hi], src[lo:hi])
			next = append(next, hi)
		}
		cur, next = next, cur[:0]
		src, dst = dst, src
		inScratch = !inScratch
	}

	if inScratch {
		copy(v, scratch)
	}
}

// mergeInto merges the sorted runs left and right into dst, which must not
// alias either run and must hold exactly len(left)+len(right) elements. Equal
// elements are taken from the left run first, which is what makes the overall
// sort stable. When one run wins minGallop comparisons in a row the loop
// gallops: it locates the end of the winning block with an exponential search
// and moves the block in one copy.
func mergeInto[T any](dst, left, right []T, less lessFn[T]) {
	i, j, k := 0, 0, 0
	winsL, winsR := 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			dst[k] = right[j]
			j++
			k++
			winsR++
			winsL = 0
			if winsR >= minGallop && j < len(right) {
				run := gallopLower(right[j:], left[i], less)
				k += copy(dst[k:k+run], right[j:j+run])
				j += run
				winsR = 0
			}
		} else {
			dst[k] = left[i]
			i++
			k++
			winsL++
			winsR = 0
			if winsL >= minGallop && i < len(left) {
				run := gallopUpper(left[i:], right[j], less)
				k += copy(dst[k:k+run], left[i:i+run])
				i += run
				winsL = 0
			}
		}
	}
	if i < len(left) {
		copy(dst[k:], left[i:])
	} else {
		copy(dst[k:], right[j:])
	}
}

// gallopLower returns how many leading elements of run are less than key,
// doubling the probe distance before narrowing with binary search.
func gallopLower[T any](run []T, key T, less lessFn[T]) int {
	n := len(run)
	if n == 0 || !less(run[0], key) {
		return 0
	}
	// Invariant: run[lo] < key; run[hi] is untested or >= key.
	lo, hi := 0, 1
	for hi < n && less(run[hi], key) {
		lo = hi
		hi *= 2
	}
	if hi > n {
		hi = n
	}
	for lo+1 < hi {
		m := int(uint(lo+hi) >> 1)
		if less(run[m], key) {
			lo = m
		} else {
			hi = m
		}
	}
	return hi
}

// gallopUpper returns how many leading elements of run are not greater than
// key, so a left run can emit its whole block of elements <= the right head.
func gallopUpper[T any](run []T, key T, less lessFn[T]) int {
	n := len(run)
	if n == 0 || less(key, run[0]) {
		return 0
	}
	// Invariant: run[lo] <= key; run[hi] is untested or > key.
	lo, hi := 0, 1
	for hi < n && !less(key, run[hi]) {
		lo = hi
		hi *= 2
	}
	if hi > n {
		hi = n
	}
	for lo+1 < hi {
		m := int(uint(lo+hi) >> 1)
		if !less(key, run[m]) {
			lo = m
		} else {
			hi = m
		}
	}
	return hi
}

// mergeRunsInPlace is the allocation-free fallback: adjacent runs are merged
// pairwise with symMerge, pass after pass, until one run remains. The run
// list is compacted in place.
func mergeRunsInPlace[T any](v []T, ends []int, less lessFn[T]) {
	for len(ends) > 1 {
		lo := 0
		out := 0
		i := 0
		for ; i+1 < len(ends); i += 2 {
			mid, hi := ends[i], ends[i+1]
			symMerge(v[lo:hi], mid-lo, less)
			ends[out] = hi
			out++
			lo = hi
		}
		if i < len(ends) {
			ends[out] = ends[i]
			out++
		}
		ends = ends[:out]
	}
}

// symMerge stably merges v[:border] and v[border:] in place using the
// SymMerge rotation scheme (Kim & Kutzner). It needs no scratch space at the
// cost of O((m+n) log m) comparisons, so it only backs the
// insufficient-buffer path.
func symMerge[T any](v []T, border int, less lessFn[T]) {
	size := len(v)

	// Avoid unnecessary recursion when one side is a single element: insert
	// it by binary search directly.
	if border == 1 {
		cur := v[0]
		a, b := 1, size
		for a < b {
			m := int(uint(a+b) >> 1)
			if less(v[m], cur) {
				a = m + 1
			} else {
				b = m
			}
		}
		copy(v[:a-1], v[1:a])
		v[a-1] = cur
		return
	}

	if border == size-1 {
		cur := v[border]
		a, b := 0, border
		for a < b {
			m := int(uint(a+b) >> 1)
			if less(cur, v[m]) {
				b = m
			} else {
				a = m + 1
			}
		}
		copy(v[a+1:border+1], v[a:border])
		v[a] = cur
		return
	}

	half := size / 2
	n := border + half
	a, b := 0, border
	if border > half {
		a, b = n-size, half
	}

	p := n - 1
	for a < b {
		m := int(uint(a+b) >> 1)
		if less(v[p-m], v[m]) {
			b = m
		} else {
			a = m + 1
		}
	}
	b = n - a

	if a < border && border < b {
		rotate(v[a:b], border-a)
	}
	if 0 < a && a < half {
		symMerge(v[:half], a, less)
	}
	if half < b && b < size {
		symMerge(v[half:], b-half, less)
	}
}

// rotate exchanges v[:border] and v[border:] by triple reversal, using no
// comparisons.
func rotate[T any](v []T, border int) {
	reverseRange(v[:border])
	reverseRange(v[border:])
	reverseRange(v)
}
