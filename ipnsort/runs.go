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

// findStreak returns the length of the maximal presorted streak starting at
// v[0] and whether that streak is strictly decreasing. Ascending streaks are
// non-strict so runs of equal elements count as sorted; descending streaks
// are strict so reversing them stays stable. Cost is one comparison per
// element regardless of outcome.
func findStreak[T any](v []T, less lessFn[T]) (end int, reversed bool) {
	n := len(v)
	if n < 2 {
		return n, false
	}
	end = 2
	if less(v[1], v[0]) {
		for end < n && less(v[end], v[end-1]) {
			end++
		}
		return end, true
	}
	for end < n && !less(v[end], v[end-1]) {
		end++
	}
	return end, false
}

// nextRun returns the length of the run starting at v[0], reversing strictly
// descending runs in place so every produced run is ascending. Runs shorter
// than the small-sort threshold are widened with the small-sequence sorter so
// the merge engine never sees degenerate run lengths.
func nextRun[T any](v []T, less lessFn[T]) int {
	end, reversed := findStreak(v, less)
	if reversed {
		reverseRange(v[:end])
	}
	if end < maxSmallSort && end < len(v) {
		widened := min(len(v), maxSmallSort)
		binaryInsertSort(v[:widened], end, less)
		end = widened
	}
	return end
}

// reverseRange reverses v in place without comparisons.
func reverseRange[T any](v []T) {
	i, j := 0, len(v)-1
	for i < j {
		v[i], v[j] = v[j], v[i]
		i++
		j--
	}
}
