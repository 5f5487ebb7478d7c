package softgl

import (
	"image"
	"image/color"
	"testing"

	"github.com/TheBitDrifter/blockscene"
	"github.com/TheBitDrifter/blockscene/affine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

type textureMap map[blockscene.TextureHandle]*blockscene.Texture

func (m textureMap) Texture(h blockscene.TextureHandle) (*blockscene.Texture, bool) {
	t, ok := m[h]
	return t, ok
}

func solid(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func testTextures() textureMap {
	return textureMap{
		0: {Path: "red.png", Image: solid(red)},
		1: {Path: "blue.png", Image: solid(blue)},
	}
}

func testCamera() *blockscene.ViewProjection {
	var vp blockscene.ViewProjection
	vp.Initialize(blockscene.CameraConfig{
		Eye:    affine.Vector3{Z: -5},
		Up:     affine.Vector3{Y: 1},
		FovY:   45,
		Aspect: 1,
		Near:   0.1,
		Far:    100,
	})
	return &vp
}

func cubeAt(z float32) *blockscene.WorldTransform {
	var wt blockscene.WorldTransform
	wt.Initialize()
	wt.Translation = affine.Vector3{Z: z}
	wt.UpdateMatrix()
	return &wt
}

type rig struct {
	device *Device
	phase  *Phase
	model  *CubeModel
}

func newRig(constants *Constants) rig {
	device := NewDevice(64, 64)
	device.BeginFrame()
	phase := NewPhase("model")
	return rig{
		device: device,
		phase:  phase,
		model:  NewCubeModel(phase, testTextures(), constants),
	}
}

func (r rig) center() color.RGBA {
	return r.device.Frame().Image().RGBAAt(32, 32)
}

func TestFrameSizeAndClear(t *testing.T) {
	device := NewDevice(8, 4)
	w, h := device.CommandList().Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 4, h)

	device.BeginFrame()
	assert.Equal(t, device.ClearColor, device.Frame().Image().RGBAAt(7, 3))
}

func TestCubeModelDrawsCube(t *testing.T) {
	r := newRig(nil)
	vp := testCamera()

	r.phase.PreDraw(r.device.CommandList())
	r.model.Draw(cubeAt(0), vp, 0)
	r.phase.PostDraw()

	c := r.center()
	assert.NotEqual(t, r.device.ClearColor, c)
	assert.Greater(t, c.R, uint8(0))
	assert.Zero(t, c.G)
	assert.Zero(t, c.B)
	assert.Equal(t, r.device.ClearColor, r.device.Frame().Image().RGBAAt(0, 0))

	drawn, dropped, triangles := r.model.Stats()
	assert.Equal(t, 1, drawn)
	assert.Zero(t, dropped)
	assert.Greater(t, triangles, 0)
}

func TestCubeModelDepthTest(t *testing.T) {
	for _, order := range []string{"near first", "far first"} {
		t.Run(order, func(t *testing.T) {
			r := newRig(nil)
			vp := testCamera()
			r.phase.PreDraw(r.device.CommandList())
			if order == "near first" {
				r.model.Draw(cubeAt(0), vp, 0)
				r.model.Draw(cubeAt(4), vp, 1)
			} else {
				r.model.Draw(cubeAt(4), vp, 1)
				r.model.Draw(cubeAt(0), vp, 0)
			}
			r.phase.PostDraw()

			c := r.center()
			assert.Greater(t, c.R, uint8(0))
			assert.Zero(t, c.B)
		})
	}
}

func TestCubeModelClearDepthBuffer(t *testing.T) {
	r := newRig(nil)
	vp := testCamera()
	r.phase.PreDraw(r.device.CommandList())
	r.model.Draw(cubeAt(0), vp, 0)
	r.device.ClearDepthBuffer()
	r.model.Draw(cubeAt(4), vp, 1)
	r.phase.PostDraw()

	c := r.center()
	assert.Greater(t, c.B, uint8(0))
	assert.Zero(t, c.R)
}

func TestCubeModelDropsOutsidePhase(t *testing.T) {
	r := newRig(nil)
	r.model.Draw(cubeAt(0), testCamera(), 0)

	assert.Equal(t, r.device.ClearColor, r.center())
	drawn, dropped, _ := r.model.Stats()
	assert.Zero(t, drawn)
	assert.Equal(t, 1, dropped)
}

func TestCubeModelSkipsGeometryBehindCamera(t *testing.T) {
	r := newRig(nil)
	r.phase.PreDraw(r.device.CommandList())
	r.model.Draw(cubeAt(-20), testCamera(), 0)
	r.phase.PostDraw()

	_, _, triangles := r.model.Stats()
	assert.Zero(t, triangles)
	assert.Equal(t, r.device.ClearColor, r.center())
}

func TestCubeModelPrefersUploadedMatrices(t *testing.T) {
	constants := NewConstants()
	r := newRig(constants)
	vp := testCamera()

	wt := cubeAt(0)
	constants.TransferWorld(wt.Cell, cubeAt(-20).MatWorld)
	constants.TransferViewProjection(vp.MatView, vp.MatProjection)

	r.phase.PreDraw(r.device.CommandList())
	r.model.Draw(wt, vp, 0)
	r.phase.PostDraw()
	assert.Equal(t, r.device.ClearColor, r.center())

	constants.Reset()
	_, ok := constants.World(wt.Cell)
	assert.False(t, ok)
	_, ok = constants.ViewProjection()
	assert.False(t, ok)
}

func TestConstantsViewProjection(t *testing.T) {
	constants := NewConstants()
	view := affine.Translate(affine.Vector3{X: 1})
	proj := affine.Scale(affine.Vector3{X: 2, Y: 2, Z: 2})
	constants.TransferViewProjection(view, proj)

	got, ok := constants.ViewProjection()
	require.True(t, ok)
	assert.Equal(t, affine.Multiply(view, proj), got)
}

func TestPhaseCounts(t *testing.T) {
	device := NewDevice(4, 4)
	p := NewPhase("sprite")
	p.PreDraw(device.CommandList())
	assert.Same(t, device.Frame(), p.Target())
	p.PostDraw()
	assert.Nil(t, p.Target())

	begun, ended := p.Counts()
	assert.Equal(t, 1, begun)
	assert.Equal(t, 1, ended)
}

func TestAverageColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, red)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, blue)

	assert.Equal(t, color.RGBA{R: 127, B: 127, A: 0xff}, averageColor(img))
	assert.Equal(t, color.RGBA{A: 0xff}, averageColor(image.NewRGBA(image.Rectangle{})))
}

func TestMissingTextureDrawsWhite(t *testing.T) {
	r := newRig(nil)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, r.model.tint(9))
}
