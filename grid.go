package blockscene

import (
	"fmt"

	"github.com/TheBitDrifter/blockscene/affine"
)

// Layout spaces blocks on a regular lattice.
type Layout struct {
	BlockWidth  float32
	BlockHeight float32
	// Spin, when non-zero, is attached to every block as a Spin component.
	Spin affine.Vector3
}

// PopulateGrid creates a block in every cell pattern selects, visiting rows
// then columns. Cell (row, col) starts at (BlockWidth*col, BlockHeight*row, 0)
// with unit scale. It returns the number of blocks created.
func PopulateGrid(sto Storage, pattern Pattern, layout Layout) (int, error) {
	comps := []Component{Transform}
	if !layout.Spin.IsZero() {
		comps = append(comps, Spinning)
	}

	created := 0
	for i := 0; i < sto.Rows(); i++ {
		for j := 0; j < sto.Columns(); j++ {
			cell := Cell{Row: i, Column: j}
			if !pattern.Evaluate(cell) {
				continue
			}
			b, err := sto.NewBlock(cell, comps...)
			if err != nil {
				return created, fmt.Errorf("failed to populate %v: %w", cell, err)
			}
			wt := Transform.GetFromBlock(b)
			wt.Initialize()
			wt.Cell = cell
			wt.Translation.X = layout.BlockWidth * float32(j)
			wt.Translation.Y = layout.BlockHeight * float32(i)
			if !layout.Spin.IsZero() {
				Spinning.GetFromBlock(b).Delta = layout.Spin
			}
			created++
		}
	}
	return created, nil
}
