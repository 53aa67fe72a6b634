// Copyright 2025 go-half Authors
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

//go:build amd64 && !noasm

package half

import (
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-half/half/asm"
)

// hasF16C indicates F16C support: float16 <-> float32 conversions (Haswell+).
var hasF16C bool

func init() {
	detectF16C()
	if hasF16C {
		useNative("f16c", asm.EncodeF16C, asm.DecodeF16C)
		return
	}
	usePortable("no F16C")
}

func detectF16C() {
	// x/sys/cpu has no F16C flag; use FMA as a proxy (F16C is present on
	// all FMA-capable CPUs). HasAVX already accounts for OS support of the
	// YMM state that VEX-encoded instructions need.
	if cpu.X86.HasAVX {
		hasF16C = cpu.X86.HasFMA
	}
}

// HasF16C returns true if the CPU supports F16C instructions.
// Present on Intel Haswell+ and AMD Piledriver+ CPUs.
func HasF16C() bool {
	return hasF16C
}

// HasARMFP16 returns false on x86.
func HasARMFP16() bool {
	return false
}
