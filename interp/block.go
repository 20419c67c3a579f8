package interp

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// LerpBlock computes dst[i] = src0[i] + (src1[i]-src0[i]) * (1/t).
// Slices must have equal length. Panics if lengths differ.
// dst may be src0 or src1 for in-place use; partial overlap is not supported.
func LerpBlock(dst, src0, src1 []float64, t float64) {
	if len(src0) != len(dst) || len(src1) != len(dst) {
		panic("interp: LerpBlock slice length mismatch")
	}

	inv := 1 / t
	if sameStorage(dst, src0) || sameStorage(dst, src1) {
		lerpBlockInPlace(dst, src0, src1, inv)
		return
	}

	vecmath.ScaleBlock(dst, src0, -1)
	vecmath.AddBlockInPlace(dst, src1)
	vecmath.ScaleBlockInPlace(dst, inv)
	vecmath.AddBlockInPlace(dst, src0)
}

// lerpBlockInPlace reads both inputs before each write, so dst may be either
// of them.
func lerpBlockInPlace(dst, src0, src1 []float64, inv float64) {
	for i := range dst {
		a := src0[i]
		dst[i] = a + float64((src1[i]-a)*inv)
	}
}

func sameStorage(a, b []float64) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// SlerpBlock computes dst[i] = Slerp(src0[i], src1[i], t) in float64.
// Slices must have equal length. Panics if lengths differ.
// dst may alias src0 or src1.
func SlerpBlock(dst, src0, src1 []float64, t float64) {
	if len(src0) != len(dst) || len(src1) != len(dst) {
		panic("interp: SlerpBlock slice length mismatch")
	}

	for i := range dst {
		base := src0[i]
		if base < MinBase {
			base = MinBase
		}
		dst[i] = math.Pow(src1[i]/base, t) * base
	}
}
