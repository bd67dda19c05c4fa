//go:build !amd64 && !arm64 && !wasm

package cpuext

func supportedForArch() []Extension {
	return []Extension{None}
}

func hardwareHas(Extension) bool {
	return false
}
