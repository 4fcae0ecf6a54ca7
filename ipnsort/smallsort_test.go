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

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func intLess(a, b int) bool { return a < b }

func recordKeyLess(a, b record) bool { return a.key < b.key }

// forEachPermutation calls fn with every permutation of 0..n-1.
func forEachPermutation(n int, fn func(p []int)) {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	var rec func(k int)
	rec = func(k int) {
		if k == 1 {
			fn(p)
			return
		}
		for i := 0; i < k; i++ {
			rec(k - 1)
			if k%2 == 0 {
				p[i], p[k-1] = p[k-1], p[i]
			} else {
				p[0], p[k-1] = p[k-1], p[0]
			}
		}
	}
	if n > 0 {
		rec(n)
	}
}

func TestSmallSortAllPermutations(t *testing.T) {
	for n := 0; n <= 7; n++ {
		forEachPermutation(n, func(p []int) {
			v := slices.Clone(p)
			smallSort(v, intLess)
			if !slices.IsSorted(v) {
				t.Fatalf("smallSort(%v) = %v", p, v)
			}
		})
	}
}

// TestSmallSortStability drives every 0/1 key pattern for each length up to
// the threshold; any unstable exchange of equal keys shows up as a sequence
// number inversion.
func TestSmallSortStability(t *testing.T) {
	for n := 2; n <= maxSmallSort; n++ {
		patterns := 1 << n
		if patterns > 1<<12 {
			patterns = 1 << 12
		}
		for bitsPat := 0; bitsPat < patterns; bitsPat++ {
			v := make([]record, n)
			for i := range v {
				v[i] = record{key: (bitsPat >> i) & 1, seq: i}
			}
			smallSort(v, recordKeyLess)
			for i := 1; i < n; i++ {
				if v[i-1].key > v[i].key {
					t.Fatalf("n=%d pattern=%b: not sorted", n, bitsPat)
				}
				if v[i-1].key == v[i].key && v[i-1].seq > v[i].seq {
					t.Fatalf("n=%d pattern=%b: equal keys reordered", n, bitsPat)
				}
			}
		}
	}
}

func TestSort4(t *testing.T) {
	forEachPermutation(4, func(p []int) {
		v := slices.Clone(p)
		sort4(v, intLess)
		if !slices.IsSorted(v) {
			t.Fatalf("sort4(%v) = %v", p, v)
		}
	})
}

func TestInsertTail(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"already_in_place", []int{1, 2, 3}, []int{1, 2, 3}},
		{"to_front", []int{2, 3, 1}, []int{1, 2, 3}},
		{"to_middle", []int{1, 3, 2}, []int{1, 2, 3}},
		{"single", []int{5}, []int{5}},
		{"pair_swap", []int{9, 4}, []int{4, 9}},
		{"equal_tail", []int{1, 2, 2}, []int{1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := slices.Clone(tt.input)
			insertTail(v, intLess)
			if !slices.Equal(v, tt.want) {
				t.Errorf("insertTail(%v) = %v, want %v", tt.input, v, tt.want)
			}
		})
	}
}

func TestBinaryInsertSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))
	for n := 1; n <= 64; n++ {
		for sortedTo := 1; sortedTo <= n; sortedTo += 3 {
			v := make([]int, n)
			for i := range v {
				v[i] = int(rng.Int64N(16))
			}
			slices.Sort(v[:sortedTo])
			binaryInsertSort(v, sortedTo, intLess)
			if !slices.IsSorted(v) {
				t.Fatalf("n=%d sortedTo=%d: not sorted: %v", n, sortedTo, v)
			}
		}
	}
}
