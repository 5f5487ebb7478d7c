package affine

import "github.com/go-gl/mathgl/mgl32"

// FromMgl converts an mgl32 matrix. mgl32 stores column-major data for
// column vectors, which read row-major is the row-vector form used here.
func FromMgl(m mgl32.Mat4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i*4+j]
		}
	}
	return out
}

// Mgl is the inverse of FromMgl.
func (m Matrix4x4) Mgl() mgl32.Mat4 {
	var out mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m[i][j]
		}
	}
	return out
}

func (v Vector3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
