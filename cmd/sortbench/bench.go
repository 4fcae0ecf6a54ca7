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
	"cmp"
	"fmt"
	"io"
	"regexp"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-ipnsort/ipnsort"
)

// sortFunc sorts v with the given comparator.
type sortFunc func(v []int64, cmp func(a, b int64) int)

var sorters = map[string]sortFunc{
	"unstable":   ipnsort.SortFunc[int64],
	"stable":     ipnsort.SortStableFunc[int64],
	"std":        slices.SortFunc[[]int64, int64],
	"std-stable": slices.SortStableFunc[[]int64, int64],
}

func lookupSorters(names []string) ([]string, error) {
	for _, name := range names {
		if _, ok := sorters[name]; !ok {
			return nil, fmt.Errorf("unknown sort %q: must be one of %v", name, sorterNames())
		}
	}
	return names, nil
}

func sorterNames() []string {
	names := lo.Keys(sorters)
	slices.Sort(names)
	return names
}

// result is one cell of the benchmark matrix.
type result struct {
	Sort        string        `yaml:"sort"`
	Pattern     string        `yaml:"pattern"`
	Size        int           `yaml:"size"`
	Best        time.Duration `yaml:"best"`
	Comparisons int64         `yaml:"comparisons"`
}

// id is the name the --filter regexp matches against.
func (r result) id() string {
	return fmt.Sprintf("%s/%s/n=%d", r.Sort, r.Pattern, r.Size)
}

// runMatrix times every (sort, pattern, size) combination whose id matches
// filter. Each cell runs rounds times on a copy of the same deterministic
// input and keeps the best wall time, then one extra round counts comparator
// calls.
func runMatrix(opts *options, filter *regexp.Regexp) []result {
	var results []result
	for _, sortName := range opts.Sorts {
		for _, patternName := range opts.Patterns {
			for _, size := range opts.Sizes {
				r := result{Sort: sortName, Pattern: patternName, Size: size}
				if filter != nil && !filter.MatchString(r.id()) {
					continue
				}
				r.Best, r.Comparisons = runCell(sorters[sortName], patterns[patternName], size, opts.Rounds)
				results = append(results, r)
			}
		}
	}
	return results
}

func runCell(sorter sortFunc, pattern patternFunc, size, rounds int) (time.Duration, int64) {
	input := pattern(size)
	v := make([]int64, size)

	best := time.Duration(0)
	for round := 0; round < rounds; round++ {
		copy(v, input)
		start := time.Now()
		sorter(v, cmp.Compare[int64])
		elapsed := time.Since(start)
		if best == 0 || elapsed < best {
			best = elapsed
		}
	}

	var comparisons int64
	copy(v, input)
	sorter(v, func(a, b int64) int {
		comparisons++
		return cmp.Compare(a, b)
	})
	return best, comparisons
}

func writeTable(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SORT\tPATTERN\tSIZE\tBEST\tNS/ELEM\tCOMPARISONS")
	for _, r := range results {
		perElem := float64(0)
		if r.Size > 0 {
			perElem = float64(r.Best.Nanoseconds()) / float64(r.Size)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.2f\t%d\n",
			r.Sort, r.Pattern, r.Size, r.Best, perElem, r.Comparisons)
	}
	return tw.Flush()
}

// report is the yaml document: the matrix grouped by sort, plus totals.
type report struct {
	CPU     []string            `yaml:"cpu,omitempty"`
	Results map[string][]result `yaml:"results"`
	Total   time.Duration       `yaml:"total_best_time"`
}

func writeYAML(w io.Writer, results []result, cpu []string) error {
	rep := report{
		CPU:     cpu,
		Results: lo.GroupBy(results, func(r result) string { return r.Sort }),
		Total: lo.SumBy(results, func(r result) time.Duration {
			return r.Best
		}),
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(rep)
}
