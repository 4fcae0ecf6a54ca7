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

// Package ipnsort provides adaptive hybrid comparison sorting for slices.
//
// It follows the design of ipnsort (instruction-parallel network sort) and
// the pattern-defeating quicksort family: fast on random data, linear on
// already-sorted, reversed and all-equal inputs, and O(n log n) in the worst
// case even against inputs crafted to defeat pivot selection.
//
// Two variants are provided:
//
//   - Sort / SortFunc: unstable, in place, no allocation.
//   - SortStable / SortStableFunc: stable, allocates scratch proportional to
//     the input; the WithBuffer variants accept caller-owned scratch and never
//     allocate, degrading to a slower in-place merge when the buffer is too
//     small.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-ipnsort/ipnsort"
//
//	xs := []int{5, 3, 1, 4, 2}
//	ipnsort.Sort(xs)
//
//	type user struct{ name string; age int }
//	users := []user{...}
//	ipnsort.SortStableFunc(users, func(a, b user) int { return a.age - b.age })
//
// Comparators are assumed to describe a strict weak ordering. If they do not
// (for example a comparator reading concurrently mutated state), the sort
// still terminates, stays in bounds and leaves the slice holding the same
// elements; only the resulting order is unspecified. Every logical element
// comparison invokes the user comparator exactly once, so wrapping a
// comparator with a counter yields an exact comparison count.
//
// All operations are single threaded and synchronous: a call sorts its slice
// to completion on the calling goroutine. The slice must not be accessed by
// other goroutines for the duration of the call.
package ipnsort
