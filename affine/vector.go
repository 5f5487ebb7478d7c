package affine

// Vector3 is a scale, an Euler rotation in radians, or a translation.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is a homogeneous point.
type Vector4 struct {
	X, Y, Z, W float32
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// IsZero reports whether all three components are zero.
func (v Vector3) IsZero() bool {
	return v == Vector3{}
}

// Vec4 extends v with the given w.
func (v Vector3) Vec4(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

// Vec3 drops w without dividing.
func (v Vector4) Vec3() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}
