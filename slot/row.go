package slot

import (
	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/weight"
)

// RowSlotTable holds two rows of slots — the previous and the current —
// indexed by (right, depth). Find resolves a node whose Down coordinate
// is either row; AdvanceRow swaps them and clears the new current row,
// giving a forward walker constant memory per row regardless of how
// many rows the grid has.
type RowSlotTable[W weight.Weight[W]] struct {
	rightCount, depthCount int
	currentRow             int
	prev, curr             []Slot[W]
}

// NewRowSlotTable builds a table primed at row 0 with both rows empty.
func NewRowSlotTable[W weight.Weight[W]](rightCount, depthCount int) *RowSlotTable[W] {
	size := rightCount * depthCount
	return &RowSlotTable[W]{
		rightCount: rightCount,
		depthCount: depthCount,
		prev:       make([]Slot[W], size),
		curr:       make([]Slot[W], size),
	}
}

func (t *RowSlotTable[W]) index(right, depth int) int { return right*t.depthCount + depth }

// CurrentRow is the Down coordinate of the row currently being filled.
func (t *RowSlotTable[W]) CurrentRow() int { return t.currentRow }

// Find returns n's slot if n.Down is the previous or current row.
func (t *RowSlotTable[W]) Find(n graph.Node) (Slot[W], bool) {
	switch n.Down {
	case t.currentRow:
		return t.curr[t.index(n.Right, n.Depth)], true
	case t.currentRow - 1:
		return t.prev[t.index(n.Right, n.Depth)], true
	default:
		return Slot[W]{}, false
	}
}

// Set writes s into n's slot. n must be on the current row; writing to
// the previous row is a programmer error since it is about to be
// discarded on the next AdvanceRow.
func (t *RowSlotTable[W]) Set(n graph.Node, s Slot[W]) {
	if n.Down != t.currentRow {
		panic("slot: RowSlotTable.Set on a row other than the current one")
	}
	t.curr[t.index(n.Right, n.Depth)] = s
}

// AdvanceRow swaps previous <-> current, clears the new current row to
// its zero value, and increments CurrentRow.
func (t *RowSlotTable[W]) AdvanceRow() {
	t.prev, t.curr = t.curr, t.prev
	for i := range t.curr {
		t.curr[i] = Slot[W]{}
	}
	t.currentRow++
}
