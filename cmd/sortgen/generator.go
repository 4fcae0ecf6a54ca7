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
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// typeSpec carries the names the template needs for one element type.
type typeSpec struct {
	// Elem is the Go element type, e.g. "int32".
	Elem string
	// Name is the exported suffix, e.g. "Int32".
	Name string
}

const fileTemplate = `// Code generated by sortgen. DO NOT EDIT.

package {{.Package}}

import (
	"unsafe"

	"github.com/ajroetker/go-ipnsort/ipnsort"
)
{{range .Types}}
// Cmp{{.Name}} compares the {{.Elem}} elements a and b, with ctx passed through
// untouched. It returns a negative value if *a orders before *b, zero if they
// are equivalent, and a positive value otherwise.
type Cmp{{.Name}} func(a, b *{{.Elem}}, ctx unsafe.Pointer) int

// Sort{{.Name}} sorts v in ascending order. The sort is not stable.
func Sort{{.Name}}(v []{{.Elem}}) {
	ipnsort.Sort(v)
}

// SortStable{{.Name}} sorts v in ascending order, keeping equal elements in their
// original order.
func SortStable{{.Name}}(v []{{.Elem}}) {
	ipnsort.SortStable(v)
}

// Sort{{.Name}}By sorts v using cmp, threading ctx through every comparison. The
// sort is not stable.
func Sort{{.Name}}By(v []{{.Elem}}, cmp Cmp{{.Name}}, ctx unsafe.Pointer) {
	ipnsort.SortFunc(v, func(a, b {{.Elem}}) int {
		return cmp(&a, &b, ctx)
	})
}

// SortStable{{.Name}}By sorts v using cmp, threading ctx through every
// comparison, keeping equivalent elements in their original order.
func SortStable{{.Name}}By(v []{{.Elem}}, cmp Cmp{{.Name}}, ctx unsafe.Pointer) {
	ipnsort.SortStableFunc(v, func(a, b {{.Elem}}) int {
		return cmp(&a, &b, ctx)
	})
}
{{end}}`

// Generate renders the wrapper file for the given element types and runs the
// result through the imports-aware formatter, so stale or missing imports in
// the template become a generation-time error rather than a broken commit.
func Generate(pkg string, elems []string) ([]byte, error) {
	tmpl, err := template.New("fixedsort").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	specs := make([]typeSpec, 0, len(elems))
	for _, e := range elems {
		name, err := exportedName(e)
		if err != nil {
			return nil, err
		}
		specs = append(specs, typeSpec{Elem: e, Name: name})
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Package string
		Types   []typeSpec
	}{Package: pkg, Types: specs})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := imports.Process("", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

// exportedName maps an element type to its exported identifier suffix.
func exportedName(elem string) (string, error) {
	switch elem {
	case "int8", "int16", "int32", "int64", "int",
		"uint8", "uint16", "uint32", "uint64", "uint":
		return string(elem[0]-'a'+'A') + elem[1:], nil
	default:
		return "", fmt.Errorf("unsupported element type %q", elem)
	}
}
