//go:build arm64 && !noasm

package half

import (
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-half/half/asm"
)

func init() {
	// Scalar FCVT between half and single precision is part of the ARMv8-A
	// base floating-point unit, which is always present with ASIMD.
	// cpu.ARM64.HasFP is checked for consistency.
	if cpu.ARM64.HasFP {
		useNative("fcvt", asm.EncodeFCVT, asm.DecodeFCVT)
		return
	}
	usePortable("no FP unit reported")
}

// HasF16C returns false on ARM (F16C is x86-specific).
func HasF16C() bool {
	return false
}

// HasARMFP16 returns true if the CPU implements half-precision conversions.
func HasARMFP16() bool {
	return hasNative
}
