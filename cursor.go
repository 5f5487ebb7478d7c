package blockscene

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

var _ iCursor = &Cursor{}

// Cursor walks occupied cells in row-major order, skipping blocks whose
// archetype lacks any of the requested components. The storage stays locked
// from the first step until the cursor is exhausted or Reset.
type Cursor struct {
	storage    *storage
	components []Component

	filter  mask.Mask
	matches map[table.Table]bool

	slotIndex int
	current   *block

	initialized bool
}

func newCursor(sto Storage, components ...Component) *Cursor {
	return &Cursor{
		storage:    sto.(*storage),
		components: components,
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.filter = mask.Mask{}
	for _, comp := range c.components {
		c.storage.schema.Register(comp)
		c.filter.Mark(c.storage.schema.RowIndexFor(comp))
	}
	c.matches = make(map[table.Table]bool)
	c.slotIndex = 0
	c.current = nil
	c.storage.acquire()
	c.initialized = true
}

func (c *Cursor) match(b *block) bool {
	tbl := b.Table()
	ok, seen := c.matches[tbl]
	if !seen {
		ok = tbl.(mask.Maskable).Mask().ContainsAll(c.filter)
		c.matches[tbl] = ok
	}
	return ok
}

// Next advances to the following matching block. It returns false, and
// releases the storage, once every cell has been visited.
func (c *Cursor) Next() bool {
	c.initialize()
	slots := c.storage.slots
	for c.slotIndex < len(slots) {
		b := &slots[c.slotIndex]
		c.slotIndex++
		if b.occupied() && c.match(b) {
			c.current = b
			return true
		}
	}
	c.Reset()
	return false
}

func (c *Cursor) Blocks() iter.Seq2[Cell, Block] {
	return func(yield func(Cell, Block) bool) {
		for c.Next() {
			if !yield(c.current.cell, c.current) {
				c.Reset()
				return
			}
		}
	}
}

// Reset rewinds the cursor and releases its storage lock.
func (c *Cursor) Reset() {
	if !c.initialized {
		return
	}
	c.slotIndex = 0
	c.current = nil
	c.matches = nil
	c.initialized = false
	c.storage.release()
}

func (c *Cursor) Cell() Cell {
	return c.current.cell
}

func (c *Cursor) CurrentBlock() Block {
	return c.current
}

// TotalMatched counts matching blocks without moving the cursor.
func (c *Cursor) TotalMatched() int {
	var filter mask.Mask
	for _, comp := range c.components {
		c.storage.schema.Register(comp)
		filter.Mark(c.storage.schema.RowIndexFor(comp))
	}
	total := 0
	for i := range c.storage.slots {
		b := &c.storage.slots[i]
		if b.occupied() && b.Table().(mask.Maskable).Mask().ContainsAll(filter) {
			total++
		}
	}
	return total
}
