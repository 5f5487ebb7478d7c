package blockscene

import (
	"github.com/TheBitDrifter/blockscene/affine"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewProjection holds a camera and the matrices derived from it.
type ViewProjection struct {
	Eye    affine.Vector3
	Target affine.Vector3
	Up     affine.Vector3

	// FovY is the vertical field of view in radians.
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32

	MatView       affine.Matrix4x4
	MatProjection affine.Matrix4x4
}

// Initialize copies the camera settings and builds the matrices.
func (vp *ViewProjection) Initialize(cfg CameraConfig) {
	vp.Eye = cfg.Eye
	vp.Target = cfg.Target
	vp.Up = cfg.Up
	vp.FovY = mgl32.DegToRad(cfg.FovY)
	vp.Aspect = cfg.Aspect
	vp.Near = cfg.Near
	vp.Far = cfg.Far
	vp.UpdateMatrix()
}

func (vp *ViewProjection) UpdateMatrix() {
	up := vp.Up
	if up.IsZero() {
		up = affine.Vector3{Y: 1}
	}
	aspect := vp.Aspect
	if aspect == 0 {
		aspect = 1
	}
	vp.MatView = affine.FromMgl(mgl32.LookAtV(vp.Eye.Mgl(), vp.Target.Mgl(), up.Mgl()))
	vp.MatProjection = affine.FromMgl(mgl32.Perspective(vp.FovY, aspect, vp.Near, vp.Far))
}

// Matrix returns view * projection.
func (vp *ViewProjection) Matrix() affine.Matrix4x4 {
	return affine.Multiply(vp.MatView, vp.MatProjection)
}
