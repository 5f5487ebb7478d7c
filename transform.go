package blockscene

import "github.com/TheBitDrifter/blockscene/affine"

// WorldTransform places one block in the scene.
type WorldTransform struct {
	Scale       affine.Vector3
	Rotation    affine.Vector3
	Translation affine.Vector3

	// MatWorld is derived; UpdateMatrix overwrites it.
	MatWorld affine.Matrix4x4

	Cell Cell
}

// Spin is added to a block's rotation once per frame.
type Spin struct {
	Delta affine.Vector3
}

func (wt *WorldTransform) Initialize() {
	wt.Scale = affine.Vector3{X: 1, Y: 1, Z: 1}
	wt.Rotation = affine.Vector3{}
	wt.Translation = affine.Vector3{}
	wt.MatWorld = affine.Identity()
}

func (wt *WorldTransform) UpdateMatrix() {
	wt.MatWorld = affine.MakeAffine(wt.Scale, wt.Rotation, wt.Translation)
}
