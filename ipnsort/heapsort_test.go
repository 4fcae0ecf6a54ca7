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

func TestHeapSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 23))
	for _, n := range []int{0, 1, 2, 3, 10, 100, 1000} {
		v := make([]int, n)
		for i := range v {
			v[i] = int(rng.Int64N(256))
		}
		input := slices.Clone(v)
		heapSort(v, 0, n, intLess)
		checkSorted(t, input, v)
	}
}

func TestHeapSortSubrange(t *testing.T) {
	v := []int{9, 8, 5, 3, 1, 4, 2, 0, 7}
	heapSort(v, 2, 7, intLess)
	want := []int{9, 8, 1, 2, 3, 4, 5, 0, 7}
	if !slices.Equal(v, want) {
		t.Errorf("heapSort subrange = %v, want %v", v, want)
	}
}

func TestHeapSortDuplicates(t *testing.T) {
	v := []int{3, 1, 3, 1, 3, 1, 3, 1}
	input := slices.Clone(v)
	heapSort(v, 0, len(v), intLess)
	checkSorted(t, input, v)
}
