/*
Package affine holds the 4x4 matrix and vector math used to place blocks in the scene.

Matrices are row-major and use the row-vector convention: a point is
transformed as v' = v * M, so translation lives in row 3 and transforms
compose left to right.

	world := affine.MakeAffine(
		affine.Vector3{X: 1, Y: 1, Z: 1},
		affine.Vector3{Y: math.Pi / 4},
		affine.Vector3{X: 2, Y: 4},
	)
	p := affine.TransformPoint(affine.Vector3{X: 1}, world)

Matrices produced by github.com/go-gl/mathgl/mgl32 convert with FromMgl and
Matrix4x4.Mgl without any reordering.
*/
package affine
