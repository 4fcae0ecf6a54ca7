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

// Command sortbench times the sort variants over a matrix of input patterns
// and sizes and reports wall time and comparator call counts.
package main

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// options holds the benchmark matrix configuration.
type options struct {
	Sizes    []int
	Patterns []string
	Sorts    []string
	Filter   string
	Rounds   int
	Format   string
	CPU      bool
}

var validFormats = []string{"table", "yaml"}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark the sort variants across input patterns",
		Long: `Benchmark the sort variants across a matrix of input patterns and sizes.

Each matrix cell sorts the same deterministic input for the configured number
of rounds, keeps the best wall time, and separately counts comparator calls.

Example:
  sortbench --sizes 1000,100000 --patterns random,descending
  sortbench --filter 'stable/.*/n=1000000' --format yaml --cpu`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts, cmd)
		},
	}

	cmd.Flags().IntSliceVar(&opts.Sizes, "sizes", []int{1000, 100000, 1000000}, "input sizes to benchmark")
	cmd.Flags().StringSliceVar(&opts.Patterns, "patterns", patternNames(), "input patterns ("+strings.Join(patternNames(), ",")+")")
	cmd.Flags().StringSliceVar(&opts.Sorts, "sorts", sorterNames(), "sort variants ("+strings.Join(sorterNames(), ",")+")")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "regexp matched against sort/pattern/n=size cell ids")
	cmd.Flags().IntVar(&opts.Rounds, "rounds", 5, "timed rounds per cell, best is kept")
	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (table|yaml)")
	cmd.Flags().BoolVar(&opts.CPU, "cpu", false, "include detected CPU features in the report")

	return cmd
}

func runBench(opts *options, cmd *cobra.Command) error {
	if !slices.Contains(validFormats, opts.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
	}
	if opts.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", opts.Rounds)
	}
	if _, err := lookupPatterns(opts.Patterns); err != nil {
		return err
	}
	if _, err := lookupSorters(opts.Sorts); err != nil {
		return err
	}

	var filter *regexp.Regexp
	if opts.Filter != "" {
		var err error
		filter, err = regexp.Compile(opts.Filter)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	results := runMatrix(opts, filter)
	if len(results) == 0 {
		return fmt.Errorf("no matrix cells matched filter %q", opts.Filter)
	}

	out := cmd.OutOrStdout()
	var cpu []string
	if opts.CPU {
		cpu = cpuFeatures()
	}

	switch opts.Format {
	case "yaml":
		return writeYAML(out, results, cpu)
	default:
		if len(cpu) > 0 {
			fmt.Fprintf(out, "cpu: %s\n\n", strings.Join(cpu, " "))
		}
		return writeTable(out, results)
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
