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

package main

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// patternFunc produces a deterministic input of the given size. The same
// (pattern, size) pair always yields the same slice so runs are comparable.
type patternFunc func(n int) []int64

var patterns = map[string]patternFunc{
	"random": func(n int) []int64 {
		rng := rand.New(rand.NewPCG(0x5eed, uint64(n)))
		v := make([]int64, n)
		for i := range v {
			v[i] = rng.Int64()
		}
		return v
	},
	"ascending": func(n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(i)
		}
		return v
	},
	"descending": func(n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(n - i)
		}
		return v
	},
	"organpipe": func(n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			if i < n/2 {
				v[i] = int64(i)
			} else {
				v[i] = int64(n - i)
			}
		}
		return v
	},
	"duplicates": func(n int) []int64 {
		rng := rand.New(rand.NewPCG(0xd0b, uint64(n)))
		v := make([]int64, n)
		for i := range v {
			v[i] = rng.Int64N(16)
		}
		return v
	},
	"equal": func(n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = 7
		}
		return v
	},
	"sawtooth": func(n int) []int64 {
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(i % 100)
		}
		return v
	},
}

// patternNames returns the known pattern names in stable order.
func patternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupPatterns(names []string) ([]string, error) {
	for _, name := range names {
		if _, ok := patterns[name]; !ok {
			return nil, fmt.Errorf("unknown pattern %q: must be one of %v", name, patternNames())
		}
	}
	return names, nil
}
