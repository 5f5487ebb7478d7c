package blockscene

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
)

const (
	PatternCheckerboard = "checkerboard"
	PatternInverse      = "inverse"
	PatternFull         = "full"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

// Checkerboard selects cells whose row+column is odd.
type Checkerboard struct{}

func (Checkerboard) Evaluate(c Cell) bool {
	return c.Parity() == 1
}

// All selects every cell.
type All struct{}

func (All) Evaluate(Cell) bool {
	return true
}

// RowSet selects every cell in the marked rows.
type RowSet struct {
	rows mask.Mask
}

func NewRowSet(rows ...int) RowSet {
	var s RowSet
	for _, r := range rows {
		s.rows.Mark(uint32(r))
	}
	return s
}

func (s RowSet) Evaluate(c Cell) bool {
	return c.Row >= 0 && containsBit(s.rows, c.Row)
}

// ColumnSet selects every cell in the marked columns.
type ColumnSet struct {
	columns mask.Mask
}

func NewColumnSet(columns ...int) ColumnSet {
	var s ColumnSet
	for _, col := range columns {
		s.columns.Mark(uint32(col))
	}
	return s
}

func (s ColumnSet) Evaluate(c Cell) bool {
	return c.Column >= 0 && containsBit(s.columns, c.Column)
}

func containsBit(m mask.Mask, bit int) bool {
	var bitMask mask.Mask
	bitMask.Mark(uint32(bit))
	return m.ContainsAll(bitMask)
}

type compositeNode struct {
	op       Operation
	children []Pattern
}

func (n *compositeNode) Evaluate(c Cell) bool {
	switch n.op {
	case OpAnd:
		for _, child := range n.children {
			if !child.Evaluate(c) {
				return false
			}
		}
		return true
	case OpOr:
		for _, child := range n.children {
			if child.Evaluate(c) {
				return true
			}
		}
		return false
	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(c) {
				return false
			}
		}
		return true
	}
	return false
}

// patternBuilder keeps the first node it builds as its root, the way a
// query does.
type patternBuilder struct {
	root Pattern
}

func newPatternBuilder() PatternBuilder {
	return &patternBuilder{}
}

func (b *patternBuilder) node(op Operation, children []Pattern) Pattern {
	node := &compositeNode{op: op, children: children}
	if b.root == nil {
		b.root = node
	}
	return node
}

func (b *patternBuilder) And(children ...Pattern) Pattern {
	return b.node(OpAnd, children)
}

func (b *patternBuilder) Or(children ...Pattern) Pattern {
	return b.node(OpOr, children)
}

// Not selects cells matched by none of children.
func (b *patternBuilder) Not(children ...Pattern) Pattern {
	return b.node(OpNot, children)
}

func (b *patternBuilder) Evaluate(c Cell) bool {
	if b.root == nil {
		return false
	}
	return b.root.Evaluate(c)
}

// PatternByName maps a config name to a Pattern.
func PatternByName(name string) (Pattern, error) {
	switch name {
	case PatternCheckerboard, "":
		return Checkerboard{}, nil
	case PatternInverse:
		return Factory.NewPattern().Not(Checkerboard{}), nil
	case PatternFull:
		return All{}, nil
	}
	return nil, fmt.Errorf("unknown pattern %q", name)
}
