package size

// Float is the size in bytes of a single component.
const Float = 4

const (
	Vec2 = Float * 2
	Vec3 = Float * 3
	Vec4 = Float * 4
	Mat2 = Float * 4
	Mat3 = Float * 9
	Mat4 = Float * 16
)

// Vec returns the size in bytes of an n-component vector.
// Returns 0 for n <= 0.
func Vec(n int) int {
	if n <= 0 {
		return 0
	}
	return n * Float
}

// Mat returns the size in bytes of an n×n matrix.
// Returns 0 for n <= 0.
func Mat(n int) int {
	if n <= 0 {
		return 0
	}
	return n * n * Float
}

// Buffer returns the number of bytes needed to store count elements of the
// given layout size, e.g. Buffer(Mat4, instances).
func Buffer(layout, count int) int {
	if layout <= 0 || count <= 0 {
		return 0
	}
	return layout * count
}
