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

// Package fixedsort provides monomorphic sort entry points for the common
// fixed-width integer element types.
//
// The By variants accept a C-style comparator taking element pointers plus an
// opaque context pointer, which makes them directly callable from foreign
// bindings that cannot close over Go state. The plain variants sort in the
// natural ascending order.
//
// The per-type code in z_fixedsort.go is emitted by cmd/sortgen and committed;
// regenerate with go generate after changing the type table.
package fixedsort

//go:generate go run github.com/ajroetker/go-ipnsort/cmd/sortgen -output z_fixedsort.go
