//go:build (!amd64 && !arm64) || noasm

package half

func init() {
	// Other architectures, and builds with the noasm tag, use the portable
	// converter. Future implementations may add:
	// - riscv64: Zfh FCVT.H.S / FCVT.S.H
	// - ppc64le: POWER9 xscvdphp / xscvhpdp
	usePortable("no native conversion for this build")
}

// HasF16C returns false: no native conversion is compiled in.
func HasF16C() bool {
	return false
}

// HasARMFP16 returns false: no native conversion is compiled in.
func HasARMFP16() bool {
	return false
}
