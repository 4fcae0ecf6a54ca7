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

// Command sortgen generates monomorphic sort wrappers for fixed-width
// integer element types.
//
// Usage:
//
//	sortgen -output z_fixedsort.go
//	sortgen -types int32,int64 -pkg fixedsort -output z_fixedsort.go
//
// Or via go:generate:
//
//	//go:generate go run github.com/ajroetker/go-ipnsort/cmd/sortgen -output z_fixedsort.go
//
// For each element type it emits a C-style comparator type plus plain, By,
// stable, and stable-By entry points delegating to the generic engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputFile = flag.String("output", "z_fixedsort.go", "Output file")
	pkgOut     = flag.String("pkg", "fixedsort", "Output package name")
	typeNames  = flag.String("types", "int32,int64,uint32,uint64", "Comma-separated element types")
)

func main() {
	flag.Parse()

	types := parseTypes(*typeNames)
	if len(types) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid types specified\n\n")
		flag.Usage()
		os.Exit(1)
	}

	src, err := Generate(*pkgOut, types)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s for types: %s\n", *outputFile, *typeNames)
}

func parseTypes(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
