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

// lessFn is the internal comparison shape shared by every component. One call
// is one logical comparison: nothing below the facade compares elements any
// other way, so a counting comparator installed by a caller observes the
// exact number of comparisons the algorithm performed.
//
// The function must not retain its arguments.
type lessFn[T any] func(a, b T) bool

// lessFromCmp adapts a three-way comparator to the internal predicate.
// The adapter is built once per top-level call; each predicate invocation
// forwards to the user comparator exactly once.
func lessFromCmp[T any](cmp func(a, b T) int) lessFn[T] {
	return func(a, b T) bool { return cmp(a, b) < 0 }
}
