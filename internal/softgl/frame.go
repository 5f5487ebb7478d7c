package softgl

import (
	"image"
	"image/color"
	"math"
)

// Frame is a color target plus a depth buffer of the same size. It is the
// command list handed to draw phases.
type Frame struct {
	img   *image.RGBA
	depth []float32
}

func NewFrame(w, h int) *Frame {
	f := &Frame{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		depth: make([]float32, w*h),
	}
	f.ClearDepth()
	return f
}

func (f *Frame) Size() (w, h int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

func (f *Frame) Image() *image.RGBA {
	return f.img
}

// SetPixel ignores out-of-bounds coordinates.
func (f *Frame) SetPixel(x, y int, c color.RGBA) {
	f.img.SetRGBA(x, y, c)
}

func (f *Frame) Clear(c color.RGBA) {
	pix := f.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

func (f *Frame) ClearDepth() {
	for i := range f.depth {
		f.depth[i] = math.MaxFloat32
	}
}

// depthTest maps NDC z from [-1,1] to [0,1] and keeps the fragment when it
// is nearer than what is stored.
func (f *Frame) depthTest(x, y int, z float32) bool {
	w, h := f.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	d := z*0.5 + 0.5
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	idx := y*w + x
	if d >= f.depth[idx] {
		return false
	}
	f.depth[idx] = d
	return true
}
