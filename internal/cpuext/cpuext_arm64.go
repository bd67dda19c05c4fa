//go:build arm64

package cpuext

import "golang.org/x/sys/cpu"

func supportedForArch() []Extension {
	return []Extension{None, NEON}
}

func hardwareHas(e Extension) bool {
	switch e {
	case NEON:
		// AArch64 mandates Advanced SIMD (NEON) from the base ARMv8-A
		// architecture; cpu.ARM64.HasASIMD is true on every real target
		// but we still check it for consistency with the amd64 path.
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}
