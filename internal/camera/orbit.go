// Package camera provides the orbiting debug camera.
package camera

import (
	"math"

	"github.com/TheBitDrifter/blockscene"
	"github.com/TheBitDrifter/blockscene/affine"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Degrees per held frame.
	TurnSpeed = 2
	ZoomSpeed = 1

	MinDistance = 1
	MaxPitch    = 89
)

var _ blockscene.DebugCamera = &Orbit{}

// Orbit circles Target at Distance. Arrow keys turn it, equal and minus
// zoom. Pitch and Yaw are in degrees; zero for both puts the eye on -Z.
type Orbit struct {
	Target   mgl32.Vec3
	Distance float32
	Pitch    float32
	Yaw      float32

	input blockscene.Input
	vp    blockscene.ViewProjection
}

func New(width, height int, input blockscene.Input, target affine.Vector3, distance float32) *Orbit {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	o := &Orbit{
		Target:   target.Mgl(),
		Distance: max(distance, MinDistance),
		input:    input,
	}
	o.vp.Target = target
	o.vp.Up = affine.Vector3{Y: 1}
	o.vp.FovY = mgl32.DegToRad(45)
	o.vp.Aspect = aspect
	o.vp.Near = 0.1
	o.vp.Far = 1000
	o.refresh()
	return o
}

func (o *Orbit) Update() {
	if o.input != nil {
		if o.input.PushKey(blockscene.KeyLeft) {
			o.Yaw -= TurnSpeed
		}
		if o.input.PushKey(blockscene.KeyRight) {
			o.Yaw += TurnSpeed
		}
		if o.input.PushKey(blockscene.KeyUp) {
			o.Pitch += TurnSpeed
		}
		if o.input.PushKey(blockscene.KeyDown) {
			o.Pitch -= TurnSpeed
		}
		if o.input.PushKey(blockscene.KeyEqual) {
			o.Distance -= ZoomSpeed
		}
		if o.input.PushKey(blockscene.KeyMinus) {
			o.Distance += ZoomSpeed
		}
	}
	o.Pitch = mgl32.Clamp(o.Pitch, -MaxPitch, MaxPitch)
	o.Distance = max(o.Distance, MinDistance)
	o.Yaw = float32(math.Mod(float64(o.Yaw), 360))
	o.refresh()
}

func (o *Orbit) Position() mgl32.Vec3 {
	pitch := float64(mgl32.DegToRad(o.Pitch))
	yaw := float64(mgl32.DegToRad(o.Yaw))
	return mgl32.Vec3{
		o.Distance * float32(math.Cos(pitch)*math.Sin(yaw)),
		o.Distance * float32(math.Sin(pitch)),
		-o.Distance * float32(math.Cos(pitch)*math.Cos(yaw)),
	}.Add(o.Target)
}

func (o *Orbit) ViewProjection() *blockscene.ViewProjection {
	return &o.vp
}

func (o *Orbit) refresh() {
	p := o.Position()
	o.vp.Eye = affine.Vector3{X: p[0], Y: p[1], Z: p[2]}
	o.vp.Target = affine.Vector3{X: o.Target[0], Y: o.Target[1], Z: o.Target[2]}
	o.vp.UpdateMatrix()
}
