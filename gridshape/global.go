package gridshape

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// GlobalGraph aligns the whole of D against the whole of R (Needleman–
// Wunsch style): no freerides, every path runs corner to corner.
type GlobalGraph[T any, W weight.Weight[W]] struct {
	baseGrid[T, W]
}

// NewGlobalGraph builds a global alignment graph over down and right,
// scored by sub (substitutions/matches) and gap (insertions/deletions).
func NewGlobalGraph[T any, W weight.Weight[W]](down, right seq.Sequence[T], sub, gap score.Scorer[T, W]) *GlobalGraph[T, W] {
	return &GlobalGraph[T, W]{baseGrid: baseGrid[T, W]{down: down, right: right, sub: sub, gap: gap}}
}

func (g *GlobalGraph[T, W]) Root() graph.Node { return graph.Node{} }
func (g *GlobalGraph[T, W]) Leaf() graph.Node {
	return graph.Node{Down: g.down.Size(), Right: g.right.Size()}
}

func (g *GlobalGraph[T, W]) EdgeWeight(e graph.Edge) W { return g.localWeight(e) }

func (g *GlobalGraph[T, W]) InEdges(n graph.Node) iter.Seq[graph.Edge]  { return g.normalIn(n) }
func (g *GlobalGraph[T, W]) OutEdges(n graph.Node) iter.Seq[graph.Edge] { return g.normalOut(n) }
func (g *GlobalGraph[T, W]) InDegree(n graph.Node) int                  { return g.normalInDegree(n) }
func (g *GlobalGraph[T, W]) OutDegree(n graph.Node) int                 { return g.normalOutDegree(n) }

// ResidentNodes is {root, leaf} even though global has no long-range
// edges: keeping the set uniform lets segment/slicebt treat every shape
// identically.
func (g *GlobalGraph[T, W]) ResidentNodes() []graph.Node {
	return []graph.Node{g.Root(), g.Leaf()}
}

func (g *GlobalGraph[T, W]) OutEdgesToResidents(n graph.Node) []graph.Edge {
	return graph.FilterOutToResidents(g.OutEdges(n), g.ResidentNodes())
}

func (g *GlobalGraph[T, W]) InEdgesFromResidents(n graph.Node) []graph.Edge {
	return graph.FilterInFromResidents(g.InEdges(n), g.ResidentNodes())
}

func (g *GlobalGraph[T, W]) Capacities() graph.Capacities {
	return graph.Capacities{
		ResidentNodes:     2,
		PathEdges:         basePathCapacity(g.GridDownCount(), g.GridRightCount()),
		NodeIncomingEdges: 3,
		NodeOutgoingEdges: 3,
	}
}
