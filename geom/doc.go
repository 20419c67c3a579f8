// Package geom provides the small float32 vector value types consumed by the
// interpolation helpers.
//
// Components are 4-byte floats so that a [Vec2] or [Vec3] occupies exactly
// size.Vec2 or size.Vec3 bytes when uploaded to a graphics device. The types
// carry only componentwise arithmetic; there is no normalization, dot or
// cross product here.
package geom
