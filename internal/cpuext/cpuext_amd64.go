//go:build amd64

package cpuext

import "golang.org/x/sys/cpu"

func supportedForArch() []Extension {
	return []Extension{None, SSE41, AVX2}
}

func hardwareHas(e Extension) bool {
	switch e {
	case SSE41:
		return cpu.X86.HasSSE41
	case AVX2:
		return cpu.X86.HasAVX2
	default:
		return false
	}
}
