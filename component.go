package blockscene

import (
	"github.com/TheBitDrifter/table"
)

// Component represents a data attribute/state that can be attached to blocks
// Components can be used to filter cursors
type Component interface {
	table.ElementType
}

// AccessibleComponent extends a base Component with table-based accessibility
// It provides methods to retrieve components using different access patterns
type AccessibleComponent[T any] struct {
	Component
	table.Accessor[T] // concrete.
}

var (
	// Transform is the WorldTransform every block carries.
	Transform = FactoryNewComponent[WorldTransform]()
	// Spinning marks blocks that rotate a little every frame.
	Spinning = FactoryNewComponent[Spin]()
)

// GetFromCursor retrieves a component value for the block at the cursor position
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	return c.GetFromBlock(cursor.current)
}

// GetFromCursorSafe safely retrieves a component value, checking if the component exists
// Returns a boolean indicating success and the component pointer if found
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if cursor.current == nil {
		return false, nil
	}
	ok := c.Accessor.Check(cursor.current.Table())
	if ok {
		return true, c.GetFromCursor(cursor)
	}
	return false, nil
}

// CheckCursor determines if the component exists on the block at the cursor position
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	if cursor.current == nil {
		return false
	}
	return c.Accessor.Check(cursor.current.Table())
}

// GetFromBlock retrieves a component value for the specified block
func (c AccessibleComponent[T]) GetFromBlock(b Block) *T {
	en := b.Entry()
	return c.Get(en.Index(), en.Table())
}

// CheckBlock determines if the component exists on the block
func (c AccessibleComponent[T]) CheckBlock(b Block) bool {
	return c.Accessor.Check(b.Table())
}
