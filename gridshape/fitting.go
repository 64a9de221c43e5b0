package gridshape

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// FittingGraph aligns all of right against some substring of down: down
// may freeride through any prefix (left column) and any suffix (right
// column) of itself for free. AlignRotational builds on this shape by
// running it over a doubled down sequence.
type FittingGraph[T any, W weight.Weight[W]] struct {
	baseGrid[T, W]
}

// NewFittingGraph builds a fitting alignment graph.
func NewFittingGraph[T any, W weight.Weight[W]](down, right seq.Sequence[T], sub, gap, freeride score.Scorer[T, W]) *FittingGraph[T, W] {
	return &FittingGraph[T, W]{baseGrid: baseGrid[T, W]{down: down, right: right, sub: sub, gap: gap, freeride: freeride}}
}

func (g *FittingGraph[T, W]) Root() graph.Node { return graph.Node{} }
func (g *FittingGraph[T, W]) Leaf() graph.Node {
	return graph.Node{Down: g.down.Size(), Right: g.right.Size()}
}

func (g *FittingGraph[T, W]) EdgeWeight(e graph.Edge) W { return g.localWeight(e) }

func (g *FittingGraph[T, W]) OutEdges(n graph.Node) iter.Seq[graph.Edge] {
	root, leaf := g.Root(), g.Leaf()
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	extra := func(yield func(graph.Edge) bool) {
		if n == root {
			for d := 1; d < downCount; d++ {
				if !yield(graph.Edge{From: n, To: graph.Node{Down: d, Right: 0}, Kind: graph.KindFreeride}) {
					return
				}
			}
		}
		if n.Right == rightCount-1 && n != leaf {
			yield(graph.Edge{From: n, To: leaf, Kind: graph.KindFreeride})
		}
	}
	return chain(g.normalOut(n), extra)
}

func (g *FittingGraph[T, W]) InEdges(n graph.Node) iter.Seq[graph.Edge] {
	root, leaf := g.Root(), g.Leaf()
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	extra := func(yield func(graph.Edge) bool) {
		if n.Right == 0 && n != root {
			if !yield(graph.Edge{From: root, To: n, Kind: graph.KindFreeride}) {
				return
			}
		}
		if n == leaf {
			for d := 0; d < downCount-1; d++ {
				if !yield(graph.Edge{From: graph.Node{Down: d, Right: rightCount - 1}, To: n, Kind: graph.KindFreeride}) {
					return
				}
			}
		}
	}
	return chain(g.normalIn(n), extra)
}

func (g *FittingGraph[T, W]) InDegree(n graph.Node) int {
	c := g.normalInDegree(n)
	if n.Right == 0 && n != g.Root() {
		c++
	}
	if n == g.Leaf() {
		c += g.GridDownCount() - 1
	}
	return c
}

func (g *FittingGraph[T, W]) OutDegree(n graph.Node) int {
	c := g.normalOutDegree(n)
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	if n == g.Root() {
		c += downCount - 1
	}
	if n.Right == rightCount-1 && n != g.Leaf() {
		c++
	}
	return c
}

func (g *FittingGraph[T, W]) ResidentNodes() []graph.Node {
	return []graph.Node{g.Root(), g.Leaf()}
}

func (g *FittingGraph[T, W]) OutEdgesToResidents(n graph.Node) []graph.Edge {
	return graph.FilterOutToResidents(g.OutEdges(n), g.ResidentNodes())
}

func (g *FittingGraph[T, W]) InEdgesFromResidents(n graph.Node) []graph.Edge {
	return graph.FilterInFromResidents(g.InEdges(n), g.ResidentNodes())
}

// Capacities reflects the boundary fans: the root's out-degree and the
// leaf's in-degree grow with the grid's down count.
func (g *FittingGraph[T, W]) Capacities() graph.Capacities {
	return graph.Capacities{
		ResidentNodes:     2,
		PathEdges:         basePathCapacity(g.GridDownCount(), g.GridRightCount()),
		NodeIncomingEdges: 3 + g.GridDownCount(),
		NodeOutgoingEdges: 3 + g.GridDownCount(),
	}
}
