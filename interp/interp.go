package interp

import (
	"math"

	"github.com/cwbudde/algo-enginemath/geom"
)

// MinBase is the lower bound applied to the first operand of Slerp.
const MinBase = 0.000001

// Lerp computes src0 + (src1-src0) * (1/t).
func Lerp(src0, src1, t float32) float32 {
	// The conversion keeps the product rounded before the add, so the
	// result does not depend on whether the target fuses multiply-add.
	return src0 + float32((src1-src0)*(1/t))
}

// LerpVec2 applies Lerp to each component of src0 and src1 with the same t.
func LerpVec2(src0, src1 geom.Vec2, t float32) geom.Vec2 {
	return geom.V2(
		Lerp(src0.X, src1.X, t),
		Lerp(src0.Y, src1.Y, t),
	)
}

// LerpVec3 applies Lerp to each component of src0 and src1 with the same t.
func LerpVec3(src0, src1 geom.Vec3, t float32) geom.Vec3 {
	return geom.V3(
		Lerp(src0.X, src1.X, t),
		Lerp(src0.Y, src1.Y, t),
		Lerp(src0.Z, src1.Z, t),
	)
}

// Slerp computes the exponential blend (src1/src0)^t * src0 after raising src0
// to at least MinBase. The power is evaluated in float64. A NaN src0 is not
// clamped.
func Slerp(src0, src1, t float32) float32 {
	if src0 < MinBase {
		src0 = MinBase
	}
	return float32(math.Pow(float64(src1/src0), float64(t)) * float64(src0))
}
