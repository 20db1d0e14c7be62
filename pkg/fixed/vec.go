package fixed

import "fmt"

// Vec2 is an integer pair, used for pixel coordinates and offsets
type Vec2 struct {
	X, Y int32
}

// Vec3 is an integer triple, used for world positions and ray directions
type Vec3 struct {
	X, Y, Z int32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z int32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Scale multiplies every component by s using plain integer multiplication.
// The result is not rescaled by 256.
func (v Vec3) Scale(s int32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// IsZero reports whether all components are zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Dot returns the plain integer dot product of two vectors.
// For two unit vectors the result is scaled by 256*256.
func Dot(a, b Vec3) int32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Norm returns the integer magnitude of v
func Norm(v Vec3) int32 {
	return Isqrt(uint32(v.X*v.X + v.Y*v.Y + v.Z*v.Z))
}

// Normalize returns v scaled to a Q8.8 unit vector (magnitude close to One).
// A zero-length vector has no direction and makes Normalize panic with an
// integer divide by zero.
func Normalize(v Vec3) Vec3 {
	n := Norm(v)
	return Vec3{
		X: Div(v.X, n),
		Y: Div(v.Y, n),
		Z: Div(v.Z, n),
	}
}
