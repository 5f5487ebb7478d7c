package affine

// MakeAffine builds a world matrix that scales, then rotates (see Rotate),
// then translates.
//
// Scale is folded into the rotation rows rather than multiplied in, so only
// per-axis scale is representable.
func MakeAffine(scale, rotation, translation Vector3) Matrix4x4 {
	r := Rotate(rotation)

	var m Matrix4x4
	for j := 0; j < 3; j++ {
		m[0][j] = scale.X * r[0][j]
		m[1][j] = scale.Y * r[1][j]
		m[2][j] = scale.Z * r[2][j]
	}
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	m[3][3] = 1
	return m
}
