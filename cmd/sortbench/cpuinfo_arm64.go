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

//go:build arm64

package main

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func cpuFeatures() []string {
	// NEON is baseline on arm64; x/sys/cpu feature bits are only populated
	// on Linux, so report the guaranteed baseline elsewhere (e.g. darwin).
	features := []string{"arm64", "neon"}
	if runtime.GOOS != "linux" {
		return features
	}
	if cpu.ARM64.HasSVE {
		features = append(features, "sve")
	}
	if cpu.ARM64.HasATOMICS {
		features = append(features, "atomics")
	}
	if cpu.ARM64.HasCPUID {
		features = append(features, "cpuid")
	}
	return features
}
