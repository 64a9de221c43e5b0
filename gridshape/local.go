package gridshape

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// LocalGraph finds the best-scoring substring-to-substring alignment
// (Smith–Waterman style): root freerides to every node, every node
// freerides to leaf.
type LocalGraph[T any, W weight.Weight[W]] struct {
	baseGrid[T, W]
}

// NewLocalGraph builds a local alignment graph. freeride scores the
// boundary edges root->n and n->leaf (typically a zero weight).
func NewLocalGraph[T any, W weight.Weight[W]](down, right seq.Sequence[T], sub, gap, freeride score.Scorer[T, W]) *LocalGraph[T, W] {
	return &LocalGraph[T, W]{baseGrid: baseGrid[T, W]{down: down, right: right, sub: sub, gap: gap, freeride: freeride}}
}

func (g *LocalGraph[T, W]) Root() graph.Node { return graph.Node{} }
func (g *LocalGraph[T, W]) Leaf() graph.Node {
	return graph.Node{Down: g.down.Size(), Right: g.right.Size()}
}

func (g *LocalGraph[T, W]) EdgeWeight(e graph.Edge) W { return g.localWeight(e) }

// OutEdges yields n's diagonal/down/right edges plus its freerides. The
// root fans a freeride out to every other node of the grid (root->leaf
// included, once — it belongs to both freeride families but is a single
// edge); every other node freerides to the leaf.
func (g *LocalGraph[T, W]) OutEdges(n graph.Node) iter.Seq[graph.Edge] {
	root, leaf := g.Root(), g.Leaf()
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	extra := func(yield func(graph.Edge) bool) {
		if n == root {
			for d := 0; d < downCount; d++ {
				for r := 0; r < rightCount; r++ {
					to := graph.Node{Down: d, Right: r}
					if to == root {
						continue
					}
					if !yield(graph.Edge{From: root, To: to, Kind: graph.KindFreeride}) {
						return
					}
				}
			}
			return
		}
		if n != leaf {
			yield(graph.Edge{From: n, To: leaf, Kind: graph.KindFreeride})
		}
	}
	return chain(g.normalOut(n), extra)
}

// InEdges is the exact mirror of OutEdges: the leaf fans a freeride in
// from every other node, every other non-root node has one freeride in
// from the root.
func (g *LocalGraph[T, W]) InEdges(n graph.Node) iter.Seq[graph.Edge] {
	root, leaf := g.Root(), g.Leaf()
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	extra := func(yield func(graph.Edge) bool) {
		if n == leaf {
			for d := 0; d < downCount; d++ {
				for r := 0; r < rightCount; r++ {
					from := graph.Node{Down: d, Right: r}
					if from == leaf {
						continue
					}
					if !yield(graph.Edge{From: from, To: leaf, Kind: graph.KindFreeride}) {
						return
					}
				}
			}
			return
		}
		if n != root {
			yield(graph.Edge{From: root, To: n, Kind: graph.KindFreeride})
		}
	}
	return chain(g.normalIn(n), extra)
}

func (g *LocalGraph[T, W]) InDegree(n graph.Node) int {
	c := g.normalInDegree(n)
	switch n {
	case g.Root():
	case g.Leaf():
		c += g.GridDownCount()*g.GridRightCount() - 1
	default:
		c++
	}
	return c
}

func (g *LocalGraph[T, W]) OutDegree(n graph.Node) int {
	c := g.normalOutDegree(n)
	switch n {
	case g.Leaf():
	case g.Root():
		c += g.GridDownCount()*g.GridRightCount() - 1
	default:
		c++
	}
	return c
}

func (g *LocalGraph[T, W]) ResidentNodes() []graph.Node {
	return []graph.Node{g.Root(), g.Leaf()}
}

func (g *LocalGraph[T, W]) OutEdgesToResidents(n graph.Node) []graph.Edge {
	return graph.FilterOutToResidents(g.OutEdges(n), g.ResidentNodes())
}

func (g *LocalGraph[T, W]) InEdgesFromResidents(n graph.Node) []graph.Edge {
	return graph.FilterInFromResidents(g.InEdges(n), g.ResidentNodes())
}

// Capacities reflects the freeride fans: the root's out-degree and the
// leaf's in-degree both scale with the grid, so the per-node edge bounds
// do too.
func (g *LocalGraph[T, W]) Capacities() graph.Capacities {
	fan := g.GridDownCount()*g.GridRightCount() - 1
	return graph.Capacities{
		ResidentNodes:     2,
		PathEdges:         basePathCapacity(g.GridDownCount(), g.GridRightCount()),
		NodeIncomingEdges: 3 + fan,
		NodeOutgoingEdges: 3 + fan,
	}
}
