package blockscene

import (
	"fmt"
)

type operation struct {
	typ   operationType
	cells []Cell
	comps []Component
}

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAddComponent
	opRemoveComponent
	opNoop
)

type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingCreate  map[Cell]struct{}
	pendingDestroy map[Cell]struct{}
	pendingMods    map[Cell]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingCreate:  make(map[Cell]struct{}),
		pendingDestroy: make(map[Cell]struct{}),
		pendingMods:    make(map[Cell]int),
	}
}

func (q *opQueue) creating(c Cell) bool {
	_, ok := q.pendingCreate[c]
	return ok
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 &&
		len(q.componentOps) == 0 &&
		len(q.destroyOps) == 0
}

func (sto *storage) processOperationQueue() error {
	if sto.opQueue.empty() {
		return nil
	}
	q := &sto.opQueue

	// Creates first so queued component ops can target new blocks
	for _, op := range q.createOps {
		if _, err := sto.NewBlock(op.cells[0], op.comps...); err != nil {
			return fmt.Errorf("failed to process queued block creation: %w", err)
		}
	}

	for _, op := range q.componentOps {
		if op.typ == opNoop {
			continue
		}
		b, ok := sto.Block(op.cells[0])
		if !ok {
			continue
		}
		switch op.typ {
		case opAddComponent:
			if err := b.AddComponent(op.comps[0]); err != nil {
				return fmt.Errorf("failed to add queued component: %w", err)
			}
		case opRemoveComponent:
			if err := b.RemoveComponent(op.comps[0]); err != nil {
				return fmt.Errorf("failed to remove queued component: %w", err)
			}
		}
	}

	// Destroys last
	for _, op := range q.destroyOps {
		var cells []Cell
		for _, c := range op.cells {
			if _, ok := sto.Block(c); ok {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			if err := sto.DestroyBlocks(cells...); err != nil {
				return fmt.Errorf("failed to delete queued blocks: %w", err)
			}
		}
	}

	q.createOps = q.createOps[:0]
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingCreate)
	clear(q.pendingDestroy)
	clear(q.pendingMods)
	return nil
}

func (q *opQueue) EnqueueCreate(c Cell, comps []Component) {
	q.pendingCreate[c] = struct{}{}
	q.createOps = append(q.createOps, operation{
		typ:   opCreate,
		cells: []Cell{c},
		comps: comps,
	})
}

func (q *opQueue) EnqueueDestroy(cells []Cell) {
	// Filter out already queued cells
	var fresh []Cell
	for _, c := range cells {
		if _, exists := q.pendingDestroy[c]; exists {
			continue
		}
		fresh = append(fresh, c)
		q.pendingDestroy[c] = struct{}{}

		// Pending component operations on a doomed block are dropped
		if idx, hasMods := q.pendingMods[c]; hasMods {
			q.componentOps[idx].typ = opNoop
			delete(q.pendingMods, c)
		}
	}

	if len(fresh) > 0 {
		q.destroyOps = append(q.destroyOps, operation{
			typ:   opDestroy,
			cells: fresh,
		})
	}
}

func (q *opQueue) EnqueueComponentOp(typ operationType, c Cell, comp Component) {
	// If the block is pending destroy, ignore component operations
	if _, isDestroyed := q.pendingDestroy[c]; isDestroyed {
		return
	}

	// A later operation on the same block replaces the earlier one
	if existingIdx, exists := q.pendingMods[c]; exists {
		existingOp := &q.componentOps[existingIdx]
		existingOp.comps = []Component{comp}
		existingOp.typ = typ
		return
	}

	q.pendingMods[c] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{
		typ:   typ,
		cells: []Cell{c},
		comps: []Component{comp},
	})
}
