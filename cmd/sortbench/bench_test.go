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
	"bytes"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPatterns(t *testing.T) {
	for name, fn := range patterns {
		t.Run(name, func(t *testing.T) {
			v := fn(100)
			require.Len(t, v, 100)
			// Deterministic across calls.
			assert.Equal(t, v, fn(100))
		})
	}

	assert.True(t, slices.IsSorted(patterns["ascending"](50)))
	assert.True(t, slices.IsSortedFunc(patterns["descending"](50), func(a, b int64) int {
		return int(b - a)
	}))
}

func TestLookupPatterns(t *testing.T) {
	_, err := lookupPatterns([]string{"random", "equal"})
	assert.NoError(t, err)

	_, err = lookupPatterns([]string{"nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pattern")
}

func TestRunMatrix(t *testing.T) {
	opts := &options{
		Sizes:    []int{100, 1000},
		Patterns: []string{"random", "ascending"},
		Sorts:    []string{"unstable", "stable"},
		Rounds:   1,
	}
	results := runMatrix(opts, nil)
	require.Len(t, results, 8)

	for _, r := range results {
		assert.Positive(t, r.Comparisons, "%s made no comparisons", r.id())
	}
}

func TestRunMatrixFilter(t *testing.T) {
	opts := &options{
		Sizes:    []int{100, 1000},
		Patterns: []string{"random", "ascending"},
		Sorts:    []string{"unstable", "stable"},
		Rounds:   1,
	}
	results := runMatrix(opts, regexp.MustCompile(`^stable/random/`))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "stable", r.Sort)
		assert.Equal(t, "random", r.Pattern)
	}
}

func TestRunCellCountsComparisons(t *testing.T) {
	// A presorted input costs exactly n-1 comparisons on the adaptive paths.
	_, comparisons := runCell(sorters["unstable"], patterns["ascending"], 1000, 1)
	assert.Equal(t, int64(999), comparisons)

	_, comparisons = runCell(sorters["stable"], patterns["equal"], 1000, 1)
	assert.Equal(t, int64(999), comparisons)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []result{
		{Sort: "stable", Pattern: "random", Size: 1000, Best: 12345, Comparisons: 9000},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "SORT")
	assert.Contains(t, out, "stable")
	assert.Contains(t, out, "9000")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	err := writeYAML(&buf, []result{
		{Sort: "stable", Pattern: "random", Size: 10, Best: 100, Comparisons: 30},
		{Sort: "unstable", Pattern: "random", Size: 10, Best: 50, Comparisons: 25},
	}, []string{"amd64", "avx2"})
	require.NoError(t, err)

	var rep report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, []string{"amd64", "avx2"}, rep.CPU)
	assert.Len(t, rep.Results["stable"], 1)
	assert.Len(t, rep.Results["unstable"], 1)
	assert.EqualValues(t, 150, rep.Total)
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--sizes", "100", "--patterns", "random", "--sorts", "unstable", "--rounds", "1"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "unstable")
}

func TestRootCommandRejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--format", "xml"},
		{"--patterns", "bogus"},
		{"--sorts", "bogus"},
		{"--rounds", "0"},
		{"--filter", "("},
		{"--filter", "matches-nothing", "--rounds", "1", "--sizes", "10"},
	} {
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}

func TestCPUFeatures(t *testing.T) {
	features := cpuFeatures()
	require.NotEmpty(t, features)
}
