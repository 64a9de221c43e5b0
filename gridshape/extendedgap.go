package gridshape

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// ExtendedGapGraph is the three-depth affine-gap shape:
// depth 0 is match/mismatch, depth 1 accumulates an insertion run, depth 2
// accumulates a deletion run. It is local in the boundary sense (root
// freerides to every depth-0 node, every depth-0 node freerides to
// leaf); the freeride scorer only ever fires on those depth-0 boundary
// edges, never inside a gap run.
//
// An insertion run consumes elements of down (moves along the Down
// axis only); a deletion run consumes elements of right. Closing a run (depth 1|2 -> depth 0)
// consumes nothing and costs zero: the open/extend edges already paid for
// the gap.
type ExtendedGapGraph[T any, W weight.Weight[W]] struct {
	down, right                        seq.Sequence[T]
	sub, initialGap, extendedGap, free score.Scorer[T, W]
}

// NewExtendedGapGraph builds an affine-gap alignment graph. initialGap
// scores a gap's first element (depth 0 -> 1 or 0 -> 2); extendedGap
// scores every subsequent element of the same run; freeride scores the
// local-style boundary edges, as in NewLocalGraph.
func NewExtendedGapGraph[T any, W weight.Weight[W]](down, right seq.Sequence[T], sub, initialGap, extendedGap, freeride score.Scorer[T, W]) *ExtendedGapGraph[T, W] {
	return &ExtendedGapGraph[T, W]{
		down: down, right: right,
		sub: sub, initialGap: initialGap, extendedGap: extendedGap, free: freeride,
	}
}

func (g *ExtendedGapGraph[T, W]) GridDownCount() int  { return g.down.Size() + 1 }
func (g *ExtendedGapGraph[T, W]) GridRightCount() int { return g.right.Size() + 1 }
func (g *ExtendedGapGraph[T, W]) GridDepthCount() int { return 3 }

func (g *ExtendedGapGraph[T, W]) Root() graph.Node { return graph.Node{} }
func (g *ExtendedGapGraph[T, W]) Leaf() graph.Node {
	return graph.Node{Down: g.down.Size(), Right: g.right.Size()}
}

func (g *ExtendedGapGraph[T, W]) EdgeFrom(e graph.Edge) graph.Node { return e.From }
func (g *ExtendedGapGraph[T, W]) EdgeTo(e graph.Edge) graph.Node   { return e.To }

func (g *ExtendedGapGraph[T, W]) IsReachable(a, b graph.Node) bool {
	return a.Down <= b.Down && a.Right <= b.Right
}

func (g *ExtendedGapGraph[T, W]) EdgeWeight(e graph.Edge) W {
	switch e.Kind {
	case graph.KindSubstitution:
		return g.sub.Score(
			score.Present(e.From.Down, g.down.At(e.From.Down)),
			score.Present(e.From.Right, g.right.At(e.From.Right)),
		)
	case graph.KindGapOpenIns:
		return g.initialGap.Score(score.Present(e.From.Down, g.down.At(e.From.Down)), score.Absent[T]())
	case graph.KindGapExtendIns:
		return g.extendedGap.Score(score.Present(e.From.Down, g.down.At(e.From.Down)), score.Absent[T]())
	case graph.KindGapOpenDel:
		return g.initialGap.Score(score.Absent[T](), score.Present(e.From.Right, g.right.At(e.From.Right)))
	case graph.KindGapExtendDel:
		return g.extendedGap.Score(score.Absent[T](), score.Present(e.From.Right, g.right.At(e.From.Right)))
	case graph.KindFreeride:
		return g.free.Score(score.Absent[T](), score.Absent[T]())
	}
	var zero W // KindGapCloseIns, KindGapCloseDel: depth-change only, no cost.
	return zero
}

func (g *ExtendedGapGraph[T, W]) EdgeToElementOffsets(e graph.Edge) (int, int, bool, bool, bool) {
	switch e.Kind {
	case graph.KindSubstitution:
		return e.From.Down, e.From.Right, true, true, true
	case graph.KindGapOpenIns, graph.KindGapExtendIns:
		return e.From.Down, 0, true, false, true
	case graph.KindGapOpenDel, graph.KindGapExtendDel:
		return 0, e.From.Right, false, true, true
	default:
		return 0, 0, false, false, false
	}
}

// OutEdges yields n's affine transitions plus the local-style boundary
// freerides: the root fans one out to every other depth-0 node, every
// other depth-0 node freerides to the leaf. A depth-1 node at Down 0 (or
// a depth-2 node at Right 0) can never be entered — no open or extend
// edge reaches it — so it has no edges at all rather than a dangling
// close edge out of an unreachable cell.
func (g *ExtendedGapGraph[T, W]) OutEdges(n graph.Node) iter.Seq[graph.Edge] {
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	root, leaf := g.Root(), g.Leaf()
	return func(yield func(graph.Edge) bool) {
		switch n.Depth {
		case 0:
			if n.Down+1 < downCount && n.Right+1 < rightCount {
				if !yield(graph.Edge{From: n, To: graph.Node{Down: n.Down + 1, Right: n.Right + 1}, Kind: graph.KindSubstitution}) {
					return
				}
			}
			if n.Down+1 < downCount {
				if !yield(graph.Edge{From: n, To: graph.Node{Down: n.Down + 1, Right: n.Right, Depth: 1}, Kind: graph.KindGapOpenIns}) {
					return
				}
			}
			if n.Right+1 < rightCount {
				if !yield(graph.Edge{From: n, To: graph.Node{Down: n.Down, Right: n.Right + 1, Depth: 2}, Kind: graph.KindGapOpenDel}) {
					return
				}
			}
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
		case 1:
			if n.Down == 0 {
				return
			}
			if n.Down+1 < downCount {
				if !yield(graph.Edge{From: n, To: graph.Node{Down: n.Down + 1, Right: n.Right, Depth: 1}, Kind: graph.KindGapExtendIns}) {
					return
				}
			}
			yield(graph.Edge{From: n, To: graph.Node{Down: n.Down, Right: n.Right}, Kind: graph.KindGapCloseIns})
		case 2:
			if n.Right == 0 {
				return
			}
			if n.Right+1 < rightCount {
				if !yield(graph.Edge{From: n, To: graph.Node{Down: n.Down, Right: n.Right + 1, Depth: 2}, Kind: graph.KindGapExtendDel}) {
					return
				}
			}
			yield(graph.Edge{From: n, To: graph.Node{Down: n.Down, Right: n.Right}, Kind: graph.KindGapCloseDel})
		}
	}
}

// InEdges is the exact mirror of OutEdges.
func (g *ExtendedGapGraph[T, W]) InEdges(n graph.Node) iter.Seq[graph.Edge] {
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	root, leaf := g.Root(), g.Leaf()
	return func(yield func(graph.Edge) bool) {
		switch n.Depth {
		case 0:
			if n.Down > 0 && n.Right > 0 {
				if !yield(graph.Edge{From: graph.Node{Down: n.Down - 1, Right: n.Right - 1}, To: n, Kind: graph.KindSubstitution}) {
					return
				}
			}
			if n.Down > 0 {
				if !yield(graph.Edge{From: graph.Node{Down: n.Down, Right: n.Right, Depth: 1}, To: n, Kind: graph.KindGapCloseIns}) {
					return
				}
			}
			if n.Right > 0 {
				if !yield(graph.Edge{From: graph.Node{Down: n.Down, Right: n.Right, Depth: 2}, To: n, Kind: graph.KindGapCloseDel}) {
					return
				}
			}
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
		case 1:
			if n.Down > 0 {
				if !yield(graph.Edge{From: graph.Node{Down: n.Down - 1, Right: n.Right, Depth: 0}, To: n, Kind: graph.KindGapOpenIns}) {
					return
				}
				if n.Down > 1 {
					yield(graph.Edge{From: graph.Node{Down: n.Down - 1, Right: n.Right, Depth: 1}, To: n, Kind: graph.KindGapExtendIns})
				}
			}
		case 2:
			if n.Right > 0 {
				if !yield(graph.Edge{From: graph.Node{Down: n.Down, Right: n.Right - 1, Depth: 0}, To: n, Kind: graph.KindGapOpenDel}) {
					return
				}
				if n.Right > 1 {
					yield(graph.Edge{From: graph.Node{Down: n.Down, Right: n.Right - 1, Depth: 2}, To: n, Kind: graph.KindGapExtendDel})
				}
			}
		}
	}
}

func (g *ExtendedGapGraph[T, W]) InDegree(n graph.Node) int {
	c := 0
	for range g.InEdges(n) {
		c++
	}
	return c
}

func (g *ExtendedGapGraph[T, W]) OutDegree(n graph.Node) int {
	c := 0
	for range g.OutEdges(n) {
		c++
	}
	return c
}

// ResidentNodes is {root, leaf}: affine transitions are local, so no
// node beyond root/leaf has a long-range edge other than the boundary
// freerides, and those all touch root or leaf.
func (g *ExtendedGapGraph[T, W]) ResidentNodes() []graph.Node {
	return []graph.Node{g.Root(), g.Leaf()}
}

func (g *ExtendedGapGraph[T, W]) OutEdgesToResidents(n graph.Node) []graph.Edge {
	return graph.FilterOutToResidents(g.OutEdges(n), g.ResidentNodes())
}

func (g *ExtendedGapGraph[T, W]) InEdgesFromResidents(n graph.Node) []graph.Edge {
	return graph.FilterInFromResidents(g.InEdges(n), g.ResidentNodes())
}

// Capacities bounds the path length at two edges per consumed element
// (a worst case of single-element gap runs, each paying one open and one
// close) plus the two boundary freerides; the per-node edge bounds
// reflect the root/leaf freeride fans.
func (g *ExtendedGapGraph[T, W]) Capacities() graph.Capacities {
	fan := g.GridDownCount()*g.GridRightCount() - 1
	return graph.Capacities{
		ResidentNodes:     2,
		PathEdges:         basePathCapacity(g.GridDownCount(), g.GridRightCount())*2 + 2,
		NodeIncomingEdges: 3 + fan,
		NodeOutgoingEdges: 3 + fan,
	}
}
