package blockscene

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
)

type archetypeID uint32

// archetype is the table shared by every block carrying the same component
// set. A block's archetype changes whenever a component is added or removed.
type archetype struct {
	id    archetypeID
	mask  mask.Mask
	table table.Table
}

func newArchetype(schema table.Schema, entryIndex table.EntryIndex, id archetypeID, m mask.Mask, components ...Component) (archetype, error) {
	elementTypes := make([]table.ElementType, len(components))
	for i, comp := range components {
		elementTypes[i] = comp
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(entryIndex).
		WithElementTypes(elementTypes...).
		WithEvents(Settings.tableEvents).
		Build()
	if err != nil {
		return archetype{}, err
	}
	return archetype{
		id:    id,
		mask:  m,
		table: tbl,
	}, nil
}

func (a archetype) ID() uint32 {
	return uint32(a.id)
}

func (a archetype) Table() table.Table {
	return a.table
}

// Blocks is the number of grid cells currently stored in the archetype.
func (a archetype) Blocks() int {
	return a.table.Length()
}

func (a archetype) matches(filter mask.Mask) bool {
	return a.mask.ContainsAll(filter)
}

// ArchetypeCount reports how many blocks share one component set.
type ArchetypeCount struct {
	Components []Component
	Blocks     int
}

// archetypes is the storage's registry, keyed by component mask.
// Archetypes are never removed, so an emptied one is reused by the next
// block with the same components.
type archetypes struct {
	nextID           archetypeID
	asSlice          []archetype
	idsGroupedByMask map[mask.Mask]archetypeID
}

func newArchetypes() *archetypes {
	return &archetypes{
		nextID:           1,
		idsGroupedByMask: make(map[mask.Mask]archetypeID),
	}
}

func (reg *archetypes) lookup(m mask.Mask) (archetype, bool) {
	id, found := reg.idsGroupedByMask[m]
	if !found {
		return archetype{}, false
	}
	return reg.asSlice[id-1], true
}

func (reg *archetypes) create(schema table.Schema, entryIndex table.EntryIndex, m mask.Mask, components ...Component) (archetype, error) {
	created, err := newArchetype(schema, entryIndex, reg.nextID, m, components...)
	if err != nil {
		return archetype{}, fmt.Errorf("failed to create archetype: %w", err)
	}
	reg.asSlice = append(reg.asSlice, created)
	reg.idsGroupedByMask[m] = reg.nextID
	reg.nextID++
	return created, nil
}

// counts lists the archetypes holding at least one block, filtered to those
// carrying every bit in filter, in creation order.
func (reg *archetypes) counts(filter mask.Mask) []ArchetypeCount {
	var out []ArchetypeCount
	for _, arch := range reg.asSlice {
		if arch.Blocks() == 0 || !arch.matches(filter) {
			continue
		}
		types := iter_util.Collect(arch.table.ElementTypes())
		comps := make([]Component, len(types))
		for i, et := range types {
			comps[i] = et
		}
		out = append(out, ArchetypeCount{Components: comps, Blocks: arch.Blocks()})
	}
	return out
}
