package softgl

import (
	"github.com/TheBitDrifter/blockscene"
	"github.com/TheBitDrifter/blockscene/affine"
)

var _ blockscene.Transferer = &Constants{}

// Constants plays the role of the per-object and per-frame constant buffers.
type Constants struct {
	worlds     map[blockscene.Cell]affine.Matrix4x4
	view, proj affine.Matrix4x4
	hasVP      bool
}

func NewConstants() *Constants {
	return &Constants{worlds: make(map[blockscene.Cell]affine.Matrix4x4)}
}

func (c *Constants) TransferWorld(cell blockscene.Cell, world affine.Matrix4x4) {
	c.worlds[cell] = world
}

func (c *Constants) TransferViewProjection(view, proj affine.Matrix4x4) {
	c.view, c.proj = view, proj
	c.hasVP = true
}

func (c *Constants) World(cell blockscene.Cell) (affine.Matrix4x4, bool) {
	m, ok := c.worlds[cell]
	return m, ok
}

// ViewProjection returns view * projection as last uploaded.
func (c *Constants) ViewProjection() (affine.Matrix4x4, bool) {
	if !c.hasVP {
		return affine.Matrix4x4{}, false
	}
	return affine.Multiply(c.view, c.proj), true
}

// Reset forgets every uploaded matrix.
func (c *Constants) Reset() {
	clear(c.worlds)
	c.view, c.proj = affine.Matrix4x4{}, affine.Matrix4x4{}
	c.hasVP = false
}
