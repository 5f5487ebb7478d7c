package softgl

import (
	"image/color"

	"github.com/TheBitDrifter/blockscene"
)

var _ blockscene.Device = &Device{}

// Device owns the single frame every draw phase records into.
type Device struct {
	ClearColor color.RGBA

	frame *Frame
}

func NewDevice(w, h int) *Device {
	return &Device{
		ClearColor: color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff},
		frame:      NewFrame(w, h),
	}
}

// BeginFrame clears color and depth. Hosts call it before Scene.Draw.
func (d *Device) BeginFrame() {
	d.frame.Clear(d.ClearColor)
	d.frame.ClearDepth()
}

func (d *Device) CommandList() blockscene.CommandList {
	return d.frame
}

func (d *Device) ClearDepthBuffer() {
	d.frame.ClearDepth()
}

func (d *Device) Frame() *Frame {
	return d.frame
}
