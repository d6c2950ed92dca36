package geometry

import "github.com/go-gl/mathgl/mgl32"

// Vector3 is a point or direction in world space. Y is up.
type Vector3 struct {
	X, Y, Z float32
}

// Vector2 is a texture coordinate. U runs left to right, V bottom to top.
type Vector2 struct {
	U, V float32
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// vec and fromVec convert to and from mgl32, which does the arithmetic.
func (v Vector3) vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromVec(w mgl32.Vec3) Vector3 {
	return Vector3{X: w[0], Y: w[1], Z: w[2]}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return fromVec(v.vec().Add(o.vec()))
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return fromVec(v.vec().Sub(o.vec()))
}

func (v Vector3) Scale(s float32) Vector3 {
	return fromVec(v.vec().Mul(s))
}

func (v Vector3) Dot(o Vector3) float32 {
	return v.vec().Dot(o.vec())
}

// Cross returns v x o (right-handed).
func (v Vector3) Cross(o Vector3) Vector3 {
	return fromVec(v.vec().Cross(o.vec()))
}

func (v Vector3) Length() float32 {
	return v.vec().Len()
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	if v.Dot(v) == 0 {
		return v
	}
	return fromVec(v.vec().Normalize())
}

// Min returns the component-wise minimum of v and o.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Array returns the vector as [x, y, z], the layout used by shader uniforms.
func (v Vector3) Array() [3]float32 {
	return [3]float32(v.vec())
}
