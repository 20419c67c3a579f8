// Package interp provides the interpolation primitives used by animation,
// camera and transform code.
//
// Scalar and vector forms operate on float32:
//
//   - [Lerp], [LerpVec2], [LerpVec3]: src0 + (src1-src0) * (1/t)
//   - [Slerp]: exponential blend (src1/src0)^t * src0, with src0 clamped to [MinBase]
//
// Note that [Lerp] divides by t rather than multiplying by it, and that [Slerp]
// has no spherical semantics; both names and formulas are kept for
// compatibility with existing callers. A t of zero makes [Lerp] return Inf or
// NaN. Apart from the [MinBase] clamp nothing is validated, so special values
// propagate.
//
// [LerpBlock] and [SlerpBlock] apply the same formulas in float64 over whole
// buffers, e.g. when baking animation channels.
//
// Every function is pure and safe for concurrent use.
package interp
