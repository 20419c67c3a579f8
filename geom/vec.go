package geom

// Vec2 is a 2-component vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float32
}

// V2 returns the vector (x, y).
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// V3 returns the vector (x, y, z).
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v scaled by s.
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Components returns the vector as a slice in X, Y order.
func (v Vec2) Components() []float32 { return []float32{v.X, v.Y} }

// Components returns the vector as a slice in X, Y, Z order.
func (v Vec3) Components() []float32 { return []float32{v.X, v.Y, v.Z} }
