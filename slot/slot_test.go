package slot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/slot"
	"github.com/katalvlaran/alignath/weight"
)

func TestRowSlotTable_FindCurrentAndPreviousRow(t *testing.T) {
	table := slot.NewRowSlotTable[weight.Int](3, 1)

	n0 := graph.Node{Down: 0, Right: 1}
	table.Set(n0, slot.Slot[weight.Int]{AccumulatedWeight: weight.Int(5), Found: true})

	got, ok := table.Find(n0)
	assert.True(t, ok)
	assert.Equal(t, weight.Int(5), got.AccumulatedWeight)

	table.AdvanceRow()
	assert.Equal(t, 1, table.CurrentRow())

	// n0 is now the previous row and still visible.
	got, ok = table.Find(n0)
	assert.True(t, ok)
	assert.Equal(t, weight.Int(5), got.AccumulatedWeight)

	// The new current row starts cleared.
	n1 := graph.Node{Down: 1, Right: 1}
	got, ok = table.Find(n1)
	assert.True(t, ok)
	assert.False(t, got.Found)

	// A row further back than "previous" is not visible.
	_, ok = table.Find(graph.Node{Down: -1, Right: 0})
	assert.False(t, ok)
}

func TestRowSlotTable_SetOnPreviousRowPanics(t *testing.T) {
	table := slot.NewRowSlotTable[weight.Int](2, 1)
	table.AdvanceRow()
	assert.Panics(t, func() {
		table.Set(graph.Node{Down: 0, Right: 0}, slot.Slot[weight.Int]{})
	})
}

func TestResidentSlotTable_UpdateOnlyOnImprovement(t *testing.T) {
	root := graph.Node{Down: 0, Right: 0}
	leaf := graph.Node{Down: 5, Right: 5}
	table := slot.NewResidentSlotTable[weight.Int]([]graph.Node{root, leaf})

	_, ok := table.Find(leaf)
	assert.False(t, ok, "an unwritten resident slot must not be found")

	e := graph.Edge{From: root, To: leaf, Kind: graph.KindFreeride}
	assert.True(t, table.Update(leaf, e, weight.Int(3)), "first write always improves an uninitialized slot")
	assert.False(t, table.Update(leaf, e, weight.Int(2)), "a worse weight must not overwrite")
	assert.True(t, table.Update(leaf, e, weight.Int(4)), "a strictly better weight must overwrite")

	got, ok := table.Find(leaf)
	assert.True(t, ok)
	assert.Equal(t, weight.Int(4), got.AccumulatedWeight)
}

func TestResidentSlotTable_InitMarksWrittenWithDefaultWeight(t *testing.T) {
	root := graph.Node{Down: 0, Right: 0}
	leaf := graph.Node{Down: 3, Right: 3}
	table := slot.NewResidentSlotTable[weight.Int]([]graph.Node{root, leaf})

	table.Init(root)

	// Initialized: findable with a zero weight but no back edge.
	got, ok := table.Find(root)
	assert.True(t, ok)
	assert.False(t, got.Found)
	assert.Equal(t, weight.Int(0), got.AccumulatedWeight)

	// Init on one resident must not leak into the others.
	_, ok = table.Find(leaf)
	assert.False(t, ok)
}

func TestResidentSlotTable_InitOnNonResidentPanics(t *testing.T) {
	table := slot.NewResidentSlotTable[weight.Int]([]graph.Node{{Down: 0, Right: 0}})
	assert.Panics(t, func() {
		table.Init(graph.Node{Down: 9, Right: 9})
	})
}

func TestResidentSlotTable_UpdateOnNonResidentPanics(t *testing.T) {
	table := slot.NewResidentSlotTable[weight.Int]([]graph.Node{{Down: 0, Right: 0}})
	assert.Panics(t, func() {
		table.Update(graph.Node{Down: 9, Right: 9}, graph.Edge{}, weight.Int(1))
	})
}
