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

// sortedHint reports what choosePivot learned about the order of a range
// while sampling pivot candidates.
type sortedHint int

const (
	unknownHint sortedHint = iota
	increasingHint
	decreasingHint
)

// xorshift is a tiny deterministic PRNG used by breakPatterns. A fixed seed
// keeps runs reproducible.
// xorshift paper: https://www.jstatsoft.org/article/view/v008i14/xorshift.pdf
type xorshift uint64

func (r *xorshift) next() uint64 {
	*r ^= *r << 13
	*r ^= *r >> 17
	*r ^= *r << 5
	return uint64(*r)
}

func nextPowerOfTwo(length int) uint {
	return 1 << uint(bits.Len(uint(length)))
}

// choosePivot picks a pivot index in v[a:b].
//
// [0,8): a static pivot.
// [8,shortestNinther): simple median of three.
// [shortestNinther,∞): Tukey ninther, a median of three medians of three
// spread across the range, which resists inputs crafted against plain
// median-of-three selection.
//
// The swap count gathered while computing medians doubles as a sortedness
// probe: zero swaps hints the range is increasing, the maximum hints it is
// decreasing.
func choosePivot[T any](v []T, a, b int, less lessFn[T]) (pivot int, hint sortedHint) {
	const (
		shortestNinther = 50
		maxSwaps        = 4 * 3
	)

	l := b - a

	var (
		swaps int
		i     = a + l/4*1
		j     = a + l/4*2
		k     = a + l/4*3
	)

	if l >= 8 {
		if l >= shortestNinther {
			i = medianAdjacent(v, i, &swaps, less)
			j = medianAdjacent(v, j, &swaps, less)
			k = medianAdjacent(v, k, &swaps, less)
		}
		// Find the median among i, j, k and store it into j.
		j = median(v, i, j, k, &swaps, less)
	}

	switch swaps {
	case 0:
		return j, increasingHint
	case maxSwaps:
		return j, decreasingHint
	default:
		return j, unknownHint
	}
}

// order2 returns x,y where v[x] <= v[y], with x,y drawn from {a,b}.
func order2[T any](v []T, a, b int, swaps *int, less lessFn[T]) (int, int) {
	if less(v[b], v[a]) {
		*swaps++
		return b, a
	}
	return a, b
}

// median returns x where v[x] is the median of v[a], v[b], v[c].
func median[T any](v []T, a, b, c int, swaps *int, less lessFn[T]) int {
	a, b = order2(v, a, b, swaps, less)
	b, _ = order2(v, b, c, swaps, less)
	_, b = order2(v, a, b, swaps, less)
	return b
}

// medianAdjacent returns the index of the median of v[a-1], v[a], v[a+1].
func medianAdjacent[T any](v []T, a int, swaps *int, less lessFn[T]) int {
	return median(v, a-1, a, a+1, swaps, less)
}

// partition rearranges v[a:b] around p = v[pivot] so that v[i] < p for
// a <= i < mid and !(v[j] < p) for mid < j < b, with v[mid] == p on return.
// The second result reports whether the range was already partitioned, which
// the controller uses as an is-sorted heuristic.
//
// The two inner scans resolve every element to one side no matter what the
// comparator answers, so inconsistent comparators cannot lose elements or
// push the indices out of bounds.
func partition[T any](v []T, a, b, pivot int, less lessFn[T]) (mid int, alreadyPartitioned bool) {
	v[a], v[pivot] = v[pivot], v[a]
	i, j := a+1, b-1 // i and j are inclusive of the elements remaining to be partitioned

	for i <= j && less(v[i], v[a]) {
		i++
	}
	for i <= j && !less(v[j], v[a]) {
		j--
	}
	if i > j {
		v[j], v[a] = v[a], v[j]
		return j, true
	}
	v[i], v[j] = v[j], v[i]
	i++
	j--

	for {
		for i <= j && less(v[i], v[a]) {
			i++
		}
		for i <= j && !less(v[j], v[a]) {
			j--
		}
		if i > j {
			break
		}
		v[i], v[j] = v[j], v[i]
		i++
		j--
	}
	v[j], v[a] = v[a], v[j]
	return j, false
}

// partitionEqual partitions v[a:b] into elements equal to v[pivot] followed
// by elements greater than v[pivot], returning the first index of the greater
// half. It assumes v[a:b] holds no element smaller than v[pivot]; the
// controller only calls it when the pivot equals the range's ancestor pivot,
// the duplicate-heavy case that would otherwise degrade partitioning.
func partitionEqual[T any](v []T, a, b, pivot int, less lessFn[T]) (newpivot int) {
	v[a], v[pivot] = v[pivot], v[a]
	i, j := a+1, b-1 // i and j are inclusive of the elements remaining to be partitioned

	for {
		for i <= j && !less(v[a], v[i]) {
			i++
		}
		for i <= j && less(v[a], v[j]) {
			j--
		}
		if i > j {
			break
		}
		v[i], v[j] = v[j], v[i]
		i++
		j--
	}
	return i
}

// partialInsertionSort tries to finish sorting v[a:b] cheaply, assuming it is
// nearly sorted. It bails out after shifting a few out-of-order pairs,
// returning whether the range ended up sorted.
func partialInsertionSort[T any](v []T, a, b int, less lessFn[T]) bool {
	const (
		maxSteps         = 5  // maximum number of adjacent out-of-order pairs that will get shifted
		shortestShifting = 50 // don't shift any elements on short arrays
	)
	i := a + 1
	for j := 0; j < maxSteps; j++ {
		for i < b && !less(v[i], v[i-1]) {
			i++
		}

		if i == b {
			return true
		}

		if b-a < shortestShifting {
			return false
		}

		v[i], v[i-1] = v[i-1], v[i]

		// Shift the smaller one to the left.
		if i-a >= 2 {
			for j := i - 1; j >= 1; j-- {
				if !less(v[j], v[j-1]) {
					break
				}
				v[j], v[j-1] = v[j-1], v[j]
			}
		}
		// Shift the greater one to the right.
		if b-i >= 2 {
			for j := i + 1; j < b; j++ {
				if !less(v[j], v[j-1]) {
					break
				}
				v[j], v[j-1] = v[j-1], v[j]
			}
		}
	}
	return false
}

// breakPatterns scatters a few elements around the middle of v[a:b] to break
// patterns that repeatedly produce imbalanced partitions. No comparisons are
// performed.
func breakPatterns[T any](v []T, a, b int) {
	length := b - a
	if length >= 8 {
		random := xorshift(length)
		modulus := nextPowerOfTwo(length)

		for idx := a + (length/4)*2 - 1; idx <= a+(length/4)*2+1; idx++ {
			other := int(uint(random.next()) & (modulus - 1))
			if other >= length {
				other -= length
			}
			v[idx], v[a+other] = v[a+other], v[idx]
		}
	}
}
