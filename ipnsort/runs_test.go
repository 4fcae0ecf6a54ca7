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
	"slices"
	"testing"
)

func TestFindStreak(t *testing.T) {
	tests := []struct {
		name         string
		input        []int
		wantEnd      int
		wantReversed bool
	}{
		{"empty", []int{}, 0, false},
		{"single", []int{3}, 1, false},
		{"ascending", []int{1, 2, 3, 4}, 4, false},
		{"ascending_with_equals", []int{1, 1, 2, 2, 3}, 5, false},
		{"all_equal", []int{7, 7, 7}, 3, false},
		{"descending", []int{4, 3, 2, 1}, 4, true},
		{"descending_then_up", []int{4, 3, 2, 9}, 3, true},
		{"equal_pair_breaks_descending", []int{5, 5, 4}, 3, false},
		{"strictly_descending_pair", []int{5, 4}, 2, true},
		{"up_then_down", []int{1, 5, 2}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, reversed := findStreak(tt.input, intLess)
			if end != tt.wantEnd || reversed != tt.wantReversed {
				t.Errorf("findStreak(%v) = (%d, %v), want (%d, %v)",
					tt.input, end, reversed, tt.wantEnd, tt.wantReversed)
			}
		})
	}
}

func TestFindStreakEqualPair(t *testing.T) {
	// 5,5 is non-decreasing, so the streak must take the ascending branch;
	// treating it as descending would make the later reversal unstable.
	end, reversed := findStreak([]int{5, 5, 4, 3}, intLess)
	if reversed {
		t.Fatal("streak over equal pair classified as descending")
	}
	if end != 2 {
		t.Fatalf("end = %d, want 2", end)
	}
}

func TestNextRun(t *testing.T) {
	t.Run("descending_run_reversed", func(t *testing.T) {
		v := []int{30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 99, 1}
		n := nextRun(v, intLess)
		if n < maxSmallSort {
			t.Fatalf("run length = %d, want at least %d", n, maxSmallSort)
		}
		if !slices.IsSorted(v[:n]) {
			t.Fatalf("run prefix not ascending: %v", v[:n])
		}
	})

	t.Run("short_run_widened", func(t *testing.T) {
		v := []int{1, 2, 0, 9, 3, 8, 4, 7, 5, 6, 1, 2, 0, 9, 3, 8, 4, 7, 5, 6, 100, 0}
		n := nextRun(v, intLess)
		if n != maxSmallSort {
			t.Fatalf("run length = %d, want %d", n, maxSmallSort)
		}
		if !slices.IsSorted(v[:n]) {
			t.Fatalf("widened run not sorted: %v", v[:n])
		}
	})

	t.Run("whole_slice_single_run", func(t *testing.T) {
		v := []int{1, 2, 3}
		if n := nextRun(v, intLess); n != 3 {
			t.Fatalf("run length = %d, want 3", n)
		}
	})
}

// TestNextRunTilesSlice walks a mixed input collecting runs and checks they
// tile the slice with ascending content.
func TestNextRunTilesSlice(t *testing.T) {
	v := make([]int, 0, 120)
	for i := 0; i < 40; i++ {
		v = append(v, i)
	}
	for i := 40; i > 0; i-- {
		v = append(v, i)
	}
	for i := 0; i < 40; i++ {
		v = append(v, i%5)
	}

	total := 0
	for lo := 0; lo < len(v); {
		n := nextRun(v[lo:], intLess)
		if n <= 0 {
			t.Fatalf("run of length %d at %d", n, lo)
		}
		if !slices.IsSorted(v[lo : lo+n]) {
			t.Fatalf("run [%d:%d] not ascending", lo, lo+n)
		}
		lo += n
		total += n
	}
	if total != len(v) {
		t.Fatalf("runs cover %d elements, want %d", total, len(v))
	}
}

func TestReverseRange(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}
	reverseRange(v)
	if !slices.Equal(v, []int{5, 4, 3, 2, 1}) {
		t.Errorf("reverseRange = %v", v)
	}
	reverseRange(v[:0])
	reverseRange(v[:1])
}
