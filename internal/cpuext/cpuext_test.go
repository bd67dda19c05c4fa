package cpuext

import "testing"

func TestSupportedStartsWithNone(t *testing.T) {
	exts := Supported()
	if len(exts) == 0 || exts[0] != None {
		t.Fatalf("Supported() = %v, want None first", exts)
	}
}

func TestNoneAlwaysSupported(t *testing.T) {
	if !IsSupported(None) {
		t.Fatal("IsSupported(None) = false, want true")
	}
}

func TestDefaultRespectsNoSimdEnv(t *testing.T) {
	t.Setenv("RESAMPLE_NO_SIMD", "1")
	if got := Default(); got != None {
		t.Errorf("Default() with RESAMPLE_NO_SIMD=1 = %v, want None", got)
	}
}

func TestNoSimdEnvParsing(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true}, // unparseable values count as set
	}
	for _, c := range cases {
		t.Run("val="+c.val, func(t *testing.T) {
			t.Setenv("RESAMPLE_NO_SIMD", c.val)
			if got := NoSimdEnv(); got != c.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestDefaultIsActuallySupported(t *testing.T) {
	t.Setenv("RESAMPLE_NO_SIMD", "")
	if ext := Default(); !IsSupported(ext) {
		t.Errorf("Default() = %v but IsSupported reports false", ext)
	}
}

func TestExtensionStrings(t *testing.T) {
	cases := map[Extension]string{
		None:    "none",
		SSE41:   "sse4.1",
		AVX2:    "avx2",
		NEON:    "neon",
		Simd128: "simd128",
	}
	for ext, want := range cases {
		if got := ext.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ext, got, want)
		}
	}
}
