package blockscene

import (
	"iter"

	"github.com/TheBitDrifter/blockscene/affine"
	"github.com/TheBitDrifter/table"
)

type Storage interface {
	Rows() int
	Columns() int
	Len() int
	Block(Cell) (Block, bool)
	NewBlock(Cell, ...Component) (Block, error)
	EnqueueNewBlock(Cell, ...Component) error
	DestroyBlocks(...Cell) error
	EnqueueDestroyBlocks(...Cell) error
	Clear() error
	Archetypes(...Component) []ArchetypeCount
	RowIndexFor(Component) uint32
	Locked() bool
	AddLock(bit uint32)
	RemoveLock(bit uint32)
}

type Block interface {
	ID() int
	Entry() table.Entry
	Table() table.Table
	Cell() Cell
	AddComponent(Component) error
	RemoveComponent(Component) error
	EnqueueAddComponent(Component) error
	EnqueueRemoveComponent(Component) error
}

type Pattern interface {
	Evaluate(Cell) bool
}

type PatternBuilder interface {
	Pattern
	And(...Pattern) Pattern
	Or(...Pattern) Pattern
	Not(...Pattern) Pattern
}

type iCursor interface {
	Blocks() iter.Seq2[Cell, Block]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
	Len() int
}

// CommandList is the recording target handed to draw phases.
type CommandList interface {
	Size() (w, h int)
}

// Device owns the per-frame command list and depth buffer.
type Device interface {
	CommandList() CommandList
	ClearDepthBuffer()
}

// Input reports keyboard state for the current frame.
type Input interface {
	// TriggerKey reports whether key went down this frame.
	TriggerKey(Key) bool
	// PushKey reports whether key is held.
	PushKey(Key) bool
}

// Audio is the sound service. The scene holds it for its lifetime.
type Audio interface {
	IsReady() bool
}

// TextureStore resolves texture paths to handles, loading on first use.
type TextureStore interface {
	Load(path string) (TextureHandle, error)
}

// DrawPhase brackets a group of draw calls, e.g. sprites or 3D models.
type DrawPhase interface {
	PreDraw(CommandList)
	PostDraw()
}

type Model interface {
	Draw(wt *WorldTransform, vp *ViewProjection, texture TextureHandle)
}

// Transferer uploads matrices to the rendering backend.
type Transferer interface {
	TransferWorld(cell Cell, world affine.Matrix4x4)
	TransferViewProjection(view, projection affine.Matrix4x4)
}

type DebugCamera interface {
	Update()
	ViewProjection() *ViewProjection
}
