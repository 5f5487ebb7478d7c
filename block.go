package blockscene

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ Block = &block{}

// block is one grid slot. It holds the 1-based id of its table entry, zero
// while the slot is empty. Row and table move whenever a table compacts or
// the entry changes archetype, so they are always looked up through the
// entry index.
type block struct {
	sto  *storage
	cell Cell
	id   int
}

func (b *block) occupied() bool {
	return b.id != 0
}

func (b *block) Cell() Cell {
	return b.cell
}

func (b *block) ID() int {
	return b.id
}

// Entry resolves the block's current table entry.
func (b *block) Entry() table.Entry {
	en, err := b.sto.entryIndex.Entry(b.id - 1)
	if err != nil {
		panic(fmt.Errorf("block %v lost entry %d: %w", b.cell, b.id, err))
	}
	return en
}

func (b *block) Table() table.Table {
	return b.Entry().Table()
}

// transfer moves the block's entry into dest. Entry ids may be recycled by
// the move, so the id is re-read from dest's last row.
func (b *block) transfer(dest archetype) error {
	en := b.Entry()
	if err := en.Table().TransferEntries(dest.table, en.Index()); err != nil {
		return fmt.Errorf("failed to transfer block %v: %w", b.cell, err)
	}
	moved, err := dest.table.Entry(dest.table.Length() - 1)
	if err != nil {
		return fmt.Errorf("failed to locate block %v after transfer: %w", b.cell, err)
	}
	b.id = int(moved.ID())
	return nil
}

func (b *block) AddComponent(c Component) error {
	if b.sto.Locked() {
		return LockedStorageError{}
	}
	originTable := b.Table()
	if originTable.Contains(c) {
		return ComponentExistsError{Component: c}
	}

	b.sto.schema.Register(c)
	destMask := originTable.(mask.Maskable).Mask()
	destMask.Mark(b.sto.schema.RowIndexFor(c))

	originalComps := iter_util.Collect(originTable.ElementTypes())
	comps := make([]Component, 0, len(originalComps)+1)
	for _, ogComp := range originalComps {
		comps = append(comps, ogComp)
	}
	comps = append(comps, c)

	dest, err := b.sto.archetypeFor(destMask, comps...)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}
	return b.transfer(dest)
}

func (b *block) RemoveComponent(c Component) error {
	if b.sto.Locked() {
		return LockedStorageError{}
	}
	originTable := b.Table()
	if !originTable.Contains(c) {
		return ComponentNotFoundError{Component: c}
	}

	removed := b.sto.schema.RowIndexFor(c)
	destMask := originTable.(mask.Maskable).Mask()
	destMask.Unmark(removed)

	originalComps := iter_util.Collect(originTable.ElementTypes())
	comps := make([]Component, 0, len(originalComps))
	for _, comp := range originalComps {
		if b.sto.schema.RowIndexFor(comp) != removed {
			comps = append(comps, comp)
		}
	}
	if len(comps) == 0 {
		return NoComponentsError{}
	}

	dest, err := b.sto.archetypeFor(destMask, comps...)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}
	return b.transfer(dest)
}

func (b *block) EnqueueAddComponent(c Component) error {
	if !b.sto.Locked() {
		return b.AddComponent(c)
	}
	b.sto.opQueue.EnqueueComponentOp(opAddComponent, b.cell, c)
	return nil
}

func (b *block) EnqueueRemoveComponent(c Component) error {
	if !b.sto.Locked() {
		return b.RemoveComponent(c)
	}
	b.sto.opQueue.EnqueueComponentOp(opRemoveComponent, b.cell, c)
	return nil
}
