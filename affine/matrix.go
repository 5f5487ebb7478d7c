package affine

import "math"

// Matrix4x4 is a row-major 4x4 matrix. The zero value is the zero matrix.
type Matrix4x4 [4][4]float32

func Identity() Matrix4x4 {
	return Matrix4x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the row-by-column product a * b.
func Multiply(a, b Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][0]*b[0][j] +
				a[i][1]*b[1][j] +
				a[i][2]*b[2][j] +
				a[i][3]*b[3][j]
		}
	}
	return out
}

func Transpose(m Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Scale returns a diagonal scale matrix.
func Scale(v Vector3) Matrix4x4 {
	var m Matrix4x4
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	m[3][3] = 1
	return m
}

// Translate returns an identity matrix with v in row 3.
func Translate(v Vector3) Matrix4x4 {
	m := Identity()
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
	return m
}

// TransformVector4 multiplies the row vector v by m.
func TransformVector4(v Vector4, m Matrix4x4) Vector4 {
	return Vector4{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// TransformPoint transforms v as a point (w = 1) and divides by the
// resulting w unless it is zero.
func TransformPoint(v Vector3, m Matrix4x4) Vector3 {
	p := TransformVector4(v.Vec4(1), m)
	if p.W == 0 || p.W == 1 {
		return p.Vec3()
	}
	inv := 1 / p.W
	return Vector3{p.X * inv, p.Y * inv, p.Z * inv}
}

// ApproxEqual compares a and b entry by entry with an absolute tolerance.
// NaN never compares equal.
func ApproxEqual(a, b Matrix4x4, eps float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := float64(a[i][j] - b[i][j])
			if math.IsNaN(d) || math.Abs(d) > float64(eps) {
				return false
			}
		}
	}
	return true
}
