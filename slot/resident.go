package slot

import (
	"sort"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/weight"
)

// ResidentSlotTable holds one slot per resident node, sorted by
// graph.Node.Less so Find can binary-search. Each slot carries an
// initialized bit distinct from the slot's own Found flag: initialized
// distinguishes "never written" from "written with default weight" —
// a root seeded via Init is findable with a zero
// accumulated weight and no back edge, while an uninitialized resident
// is not findable at all.
type ResidentSlotTable[W weight.Weight[W]] struct {
	nodes       []graph.Node
	slots       []Slot[W]
	initialized []bool
}

// NewResidentSlotTable builds a table with one unwritten slot per node
// in residents.
func NewResidentSlotTable[W weight.Weight[W]](residents []graph.Node) *ResidentSlotTable[W] {
	nodes := make([]graph.Node, len(residents))
	copy(nodes, residents)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Less(nodes[j]) })
	return &ResidentSlotTable[W]{
		nodes:       nodes,
		slots:       make([]Slot[W], len(nodes)),
		initialized: make([]bool, len(nodes)),
	}
}

func (t *ResidentSlotTable[W]) search(n graph.Node) int {
	return sort.Search(len(t.nodes), func(i int) bool { return !t.nodes[i].Less(n) })
}

// Find returns n's slot if n is a resident and has been initialized.
// The returned slot's Found flag is false for a resident seeded via
// Init and never improved by Update — the accumulated weight is usable,
// the back edge is not.
func (t *ResidentSlotTable[W]) Find(n graph.Node) (Slot[W], bool) {
	i := t.search(n)
	if i < len(t.nodes) && t.nodes[i] == n && t.initialized[i] {
		return t.slots[i], true
	}
	return Slot[W]{}, false
}

// Init marks n "written with default weight": findable with a zero
// accumulated weight and no back edge. A walker seeds its graph's root
// this way, since the root has no in-edge that could ever Update it.
// n must be a resident in this table; a non-resident panics.
func (t *ResidentSlotTable[W]) Init(n graph.Node) {
	i := t.search(n)
	if i >= len(t.nodes) || t.nodes[i] != n {
		panic("slot: Init on a node absent from the resident table")
	}
	t.initialized[i] = true
}

// Update writes (edge, candidateWeight) into n's slot when the slot was
// never written or candidateWeight improves on it. n must be a resident
// in this table; calling Update on a non-resident is a programmer error
// and panics.
func (t *ResidentSlotTable[W]) Update(n graph.Node, edge graph.Edge, candidateWeight W) bool {
	i := t.search(n)
	if i >= len(t.nodes) || t.nodes[i] != n {
		panic("slot: Update on a node absent from the resident table")
	}
	if t.initialized[i] && !t.slots[i].AccumulatedWeight.Less(candidateWeight) {
		return false
	}
	t.slots[i] = Slot[W]{BackEdge: edge, AccumulatedWeight: candidateWeight, Found: true}
	t.initialized[i] = true
	return true
}
