package gridshape

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// OverlapGraph aligns a suffix of down against a prefix of right: root
// freerides down the left column, the bottom row freerides into leaf.
type OverlapGraph[T any, W weight.Weight[W]] struct {
	baseGrid[T, W]
}

// NewOverlapGraph builds an overlap alignment graph.
func NewOverlapGraph[T any, W weight.Weight[W]](down, right seq.Sequence[T], sub, gap, freeride score.Scorer[T, W]) *OverlapGraph[T, W] {
	return &OverlapGraph[T, W]{baseGrid: baseGrid[T, W]{down: down, right: right, sub: sub, gap: gap, freeride: freeride}}
}

func (g *OverlapGraph[T, W]) Root() graph.Node { return graph.Node{} }
func (g *OverlapGraph[T, W]) Leaf() graph.Node {
	return graph.Node{Down: g.down.Size(), Right: g.right.Size()}
}

func (g *OverlapGraph[T, W]) EdgeWeight(e graph.Edge) W { return g.localWeight(e) }

func (g *OverlapGraph[T, W]) OutEdges(n graph.Node) iter.Seq[graph.Edge] {
	root, leaf := g.Root(), g.Leaf()
	downCount := g.GridDownCount()
	extra := func(yield func(graph.Edge) bool) {
		if n == root {
			for d := 1; d < downCount; d++ {
				if !yield(graph.Edge{From: n, To: graph.Node{Down: d, Right: 0}, Kind: graph.KindFreeride}) {
					return
				}
			}
		}
		if n.Down == downCount-1 && n != leaf {
			yield(graph.Edge{From: n, To: leaf, Kind: graph.KindFreeride})
		}
	}
	return chain(g.normalOut(n), extra)
}

func (g *OverlapGraph[T, W]) InEdges(n graph.Node) iter.Seq[graph.Edge] {
	root, leaf := g.Root(), g.Leaf()
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	extra := func(yield func(graph.Edge) bool) {
		if n.Right == 0 && n != root {
			if !yield(graph.Edge{From: root, To: n, Kind: graph.KindFreeride}) {
				return
			}
		}
		if n == leaf {
			for r := 0; r < rightCount-1; r++ {
				if !yield(graph.Edge{From: graph.Node{Down: downCount - 1, Right: r}, To: n, Kind: graph.KindFreeride}) {
					return
				}
			}
		}
	}
	return chain(g.normalIn(n), extra)
}

func (g *OverlapGraph[T, W]) InDegree(n graph.Node) int {
	c := g.normalInDegree(n)
	if n.Right == 0 && n != g.Root() {
		c++
	}
	if n == g.Leaf() {
		c += g.GridRightCount() - 1
	}
	return c
}

func (g *OverlapGraph[T, W]) OutDegree(n graph.Node) int {
	c := g.normalOutDegree(n)
	downCount := g.GridDownCount()
	if n == g.Root() {
		c += downCount - 1
	}
	if n.Down == downCount-1 && n != g.Leaf() {
		c++
	}
	return c
}

func (g *OverlapGraph[T, W]) ResidentNodes() []graph.Node {
	return []graph.Node{g.Root(), g.Leaf()}
}

func (g *OverlapGraph[T, W]) OutEdgesToResidents(n graph.Node) []graph.Edge {
	return graph.FilterOutToResidents(g.OutEdges(n), g.ResidentNodes())
}

func (g *OverlapGraph[T, W]) InEdgesFromResidents(n graph.Node) []graph.Edge {
	return graph.FilterInFromResidents(g.InEdges(n), g.ResidentNodes())
}

// Capacities reflects the boundary fans: the root's out-degree grows with
// the grid's down count, the leaf's in-degree with its right count.
func (g *OverlapGraph[T, W]) Capacities() graph.Capacities {
	return graph.Capacities{
		ResidentNodes:     2,
		PathEdges:         basePathCapacity(g.GridDownCount(), g.GridRightCount()),
		NodeIncomingEdges: 3 + g.GridRightCount(),
		NodeOutgoingEdges: 3 + g.GridDownCount(),
	}
}
