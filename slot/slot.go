package slot

import (
	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/weight"
)

// Slot is the per-node record every walker and backtracker fills in:
// the best edge arriving at a node and the accumulated weight of the
// best path to it so far. BackEdge.Kind is meaningless until Found is
// true; a node with no predecessor (the root) has Found=false and a
// zero AccumulatedWeight.
type Slot[W weight.Weight[W]] struct {
	BackEdge          graph.Edge
	AccumulatedWeight W
	Found             bool
}
