package blockscene

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

var _ Storage = &storage{}

type storage struct {
	rows, columns int

	schema     table.Schema
	entryIndex table.EntryIndex
	archetypes *archetypes
	opQueue    opQueue

	// slots is row-major; an empty slot has id 0.
	slots []block
	count int

	locks     mask.Mask
	lockCount int
	cursors   int
}

func newStorage(schema table.Schema, rows, columns int) *storage {
	sto := &storage{
		rows:       rows,
		columns:    columns,
		schema:     schema,
		entryIndex: table.Factory.NewEntryIndex(),
		archetypes: newArchetypes(),
		opQueue:    newOpQueue(),
		slots:      make([]block, rows*columns),
	}
	for i := range sto.slots {
		sto.slots[i].sto = sto
		sto.slots[i].cell = Cell{Row: i / columns, Column: i % columns}
	}
	return sto
}

func (sto *storage) Rows() int    { return sto.rows }
func (sto *storage) Columns() int { return sto.columns }
func (sto *storage) Len() int     { return sto.count }

func (sto *storage) slot(c Cell) (*block, error) {
	if c.Row < 0 || c.Row >= sto.rows || c.Column < 0 || c.Column >= sto.columns {
		return nil, CellOutOfRangeError{Cell: c, Rows: sto.rows, Columns: sto.columns}
	}
	return &sto.slots[c.Row*sto.columns+c.Column], nil
}

func (sto *storage) Block(c Cell) (Block, bool) {
	b, err := sto.slot(c)
	if err != nil || !b.occupied() {
		return nil, false
	}
	return b, true
}

func (sto *storage) NewBlock(c Cell, components ...Component) (Block, error) {
	if sto.Locked() {
		return nil, LockedStorageError{}
	}
	if len(components) == 0 {
		return nil, NoComponentsError{}
	}
	b, err := sto.slot(c)
	if err != nil {
		return nil, err
	}
	if b.occupied() {
		return nil, CellOccupiedError{Cell: c}
	}

	var blockMask mask.Mask
	for _, component := range components {
		sto.schema.Register(component)
		blockMask.Mark(sto.schema.RowIndexFor(component))
	}
	arch, err := sto.archetypeFor(blockMask, components...)
	if err != nil {
		return nil, err
	}
	entries, err := arch.table.NewEntries(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry for %v: %w", c, err)
	}
	b.id = int(entries[0].ID())
	sto.count++
	return b, nil
}

func (sto *storage) archetypeFor(m mask.Mask, components ...Component) (archetype, error) {
	if arch, found := sto.archetypes.lookup(m); found {
		return arch, nil
	}
	return sto.archetypes.create(sto.schema, sto.entryIndex, m, components...)
}

// Archetypes reports the populated component sets that carry every given
// component. With no arguments every populated set is listed.
func (sto *storage) Archetypes(components ...Component) []ArchetypeCount {
	var filter mask.Mask
	for _, comp := range components {
		sto.schema.Register(comp)
		filter.Mark(sto.schema.RowIndexFor(comp))
	}
	return sto.archetypes.counts(filter)
}

func (sto *storage) EnqueueNewBlock(c Cell, components ...Component) error {
	if !sto.Locked() {
		_, err := sto.NewBlock(c, components...)
		if err != nil {
			return fmt.Errorf("failed to create block directly: %w", err)
		}
		return nil
	}
	if len(components) == 0 {
		return NoComponentsError{}
	}
	b, err := sto.slot(c)
	if err != nil {
		return err
	}
	if b.occupied() || sto.opQueue.creating(c) {
		return CellOccupiedError{Cell: c}
	}
	sto.opQueue.EnqueueCreate(c, components)
	return nil
}

func (sto *storage) DestroyBlocks(cells ...Cell) error {
	if sto.Locked() {
		return LockedStorageError{}
	}
	doomed := make([]*block, 0, len(cells))
	seen := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		b, err := sto.slot(c)
		if err != nil {
			return err
		}
		if !b.occupied() {
			return CellEmptyError{Cell: c}
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		doomed = append(doomed, b)
	}

	// Each delete compacts its table, so rows are resolved one block at a time.
	for _, b := range doomed {
		en := b.Entry()
		if _, err := en.Table().DeleteEntries(en.Index()); err != nil {
			return fmt.Errorf("failed to delete block %v: %w", b.cell, err)
		}
		b.id = 0
		sto.count--
	}
	return nil
}

func (sto *storage) EnqueueDestroyBlocks(cells ...Cell) error {
	if !sto.Locked() {
		return sto.DestroyBlocks(cells...)
	}
	for _, c := range cells {
		if _, err := sto.slot(c); err != nil {
			return err
		}
	}
	sto.opQueue.EnqueueDestroy(cells)
	return nil
}

// Clear destroys every block.
func (sto *storage) Clear() error {
	occupied := make([]Cell, 0, sto.count)
	for i := range sto.slots {
		if sto.slots[i].occupied() {
			occupied = append(occupied, sto.slots[i].cell)
		}
	}
	if len(occupied) == 0 {
		return nil
	}
	return sto.DestroyBlocks(occupied...)
}

func (sto *storage) RowIndexFor(c Component) uint32 {
	return sto.schema.RowIndexFor(c)
}

func (sto *storage) Locked() bool {
	return sto.lockCount > 0 || sto.cursors > 0
}

// AddLock marks bit as held. Adding a held bit is a no-op.
func (sto *storage) AddLock(bit uint32) {
	var m mask.Mask
	m.Mark(bit)
	if sto.locks.ContainsAll(m) {
		return
	}
	sto.locks.Mark(bit)
	sto.lockCount++
}

// RemoveLock releases bit. Queued operations run once nothing holds the storage.
func (sto *storage) RemoveLock(bit uint32) {
	var m mask.Mask
	m.Mark(bit)
	if !sto.locks.ContainsAll(m) {
		return
	}
	sto.locks.Unmark(bit)
	sto.lockCount--
	sto.flush()
}

func (sto *storage) acquire() {
	sto.cursors++
}

func (sto *storage) release() {
	if sto.cursors == 0 {
		return
	}
	sto.cursors--
	sto.flush()
}

func (sto *storage) flush() {
	if sto.Locked() {
		return
	}
	if err := sto.processOperationQueue(); err != nil {
		panic(err)
	}
}
