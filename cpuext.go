// Copyright 2025 go-highway Authors
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

package resample

import "github.com/pixreskit/resample/internal/cpuext"

// CPUExtension is the public name for one SIMD level a Resizer or
// MulDiv can target, mirroring internal/cpuext.Extension across the
// package boundary so callers never need to import an internal package.
type CPUExtension int

const (
	CPUNone CPUExtension = iota
	CPUSSE41
	CPUAVX2
	CPUNEON
	CPUSimd128
)

func (e CPUExtension) toInternal() cpuext.Extension {
	return cpuext.Extension(e)
}

func (e CPUExtension) String() string {
	return e.toInternal().String()
}

// DefaultCPUExtension returns the best CPUExtension this host's CPU
// actually supports (or CPUNone if RESAMPLE_NO_SIMD is set or no
// accelerated path exists for this architecture).
func DefaultCPUExtension() CPUExtension {
	return CPUExtension(cpuext.Default())
}
