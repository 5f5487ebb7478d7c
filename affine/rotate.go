package affine

import "math"

func sincos(rad float32) (float32, float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}

// RotateX returns the rotation about the x axis by rad radians.
func RotateX(rad float32) Matrix4x4 {
	var m Matrix4x4
	s, c := sincos(rad)
	m[0][0] = 1
	m[1][1] = c
	m[1][2] = s
	m[2][1] = -s
	m[2][2] = c
	m[3][3] = 1
	return m
}

// RotateY returns the rotation about the y axis by rad radians.
func RotateY(rad float32) Matrix4x4 {
	var m Matrix4x4
	s, c := sincos(rad)
	m[0][0] = c
	m[0][2] = -s
	m[1][1] = 1
	m[2][0] = s
	m[2][2] = c
	m[3][3] = 1
	return m
}

// RotateZ returns the rotation about the z axis by rad radians.
func RotateZ(rad float32) Matrix4x4 {
	var m Matrix4x4
	s, c := sincos(rad)
	m[0][0] = c
	m[0][1] = s
	m[1][0] = -s
	m[1][1] = c
	m[2][2] = 1
	m[3][3] = 1
	return m
}

// Rotate composes the three axis rotations as Rx * (Ry * Rz).
// The order is fixed; callers rely on z being applied first.
func Rotate(rotation Vector3) Matrix4x4 {
	return Multiply(RotateX(rotation.X), Multiply(RotateY(rotation.Y), RotateZ(rotation.Z)))
}
