//go:build wasm

package cpuext

// wasm32's SIMD128 proposal is a compile-time target feature, not a
// runtime-probed one: a module either was compiled with simd128 lowering
// or it wasn't, and there's nothing to ask the host at execution time.
// We treat it as always available on this target.
func supportedForArch() []Extension {
	return []Extension{None, Simd128}
}

func hardwareHas(e Extension) bool {
	return e == Simd128
}
