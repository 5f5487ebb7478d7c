package blockscene

import "fmt"

// Cell addresses one slot of the block grid.
type Cell struct {
	Row, Column int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Parity is (row+column) mod 2.
func (c Cell) Parity() int {
	p := (c.Row + c.Column) % 2
	if p < 0 {
		p = -p
	}
	return p
}
