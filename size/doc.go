// Package size names the byte footprint of common vector and square-matrix
// layouts, for sizing raw buffers that are uploaded to a graphics device.
//
// Every constant assumes 4-byte (float32) components:
//
//   - [Vec2], [Vec3], [Vec4]: component count × 4
//   - [Mat2], [Mat3], [Mat4]: dimension² × 4
//
// [Vec4] and [Mat2] are both 16 bytes. The constants are untyped so they can be
// used directly as slice lengths or byte offsets.
package size
