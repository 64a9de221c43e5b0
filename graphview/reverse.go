package graphview

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
)

// Reverse walks parent backwards: every edge direction flips, root and
// leaf swap, and a node's coordinates mirror across the grid so that
// (down, right) becomes (gridDownCnt-1-down, gridRightCnt-1-right),
// the coordinate transform the bidirectional walker's backward half
// runs on. Depth is left untouched (affine depth is not mirrored).
type Reverse[T any, W any] struct {
	parent graph.AlignmentGraph[T, W]
}

// NewReverse wraps parent. Reversing twice is the identity view, up to
// the node values it produces.
func NewReverse[T any, W any](parent graph.AlignmentGraph[T, W]) *Reverse[T, W] {
	return &Reverse[T, W]{parent: parent}
}

// MirrorNode mirrors a node across a downCount x rightCount grid:
// (down, right, depth) -> (downCount-1-down, rightCount-1-right, depth).
// Exposed so callers that build their own reverse-view bidi walker (the
// resident segmenter) can translate a slot's
// back-edge out of reversed coordinates without constructing a Reverse.
func MirrorNode(downCount, rightCount int, n graph.Node) graph.Node {
	return graph.Node{Down: downCount - 1 - n.Down, Right: rightCount - 1 - n.Right, Depth: n.Depth}
}

// MirrorEdge mirrors both endpoints of e and swaps its direction, the
// inverse of the transform OutEdges/InEdges apply below.
func MirrorEdge(downCount, rightCount int, e graph.Edge) graph.Edge {
	return graph.Edge{From: MirrorNode(downCount, rightCount, e.To), To: MirrorNode(downCount, rightCount, e.From), Kind: e.Kind}
}

func (r *Reverse[T, W]) mirror(n graph.Node) graph.Node {
	return MirrorNode(r.parent.GridDownCount(), r.parent.GridRightCount(), n)
}

func (r *Reverse[T, W]) GridDownCount() int  { return r.parent.GridDownCount() }
func (r *Reverse[T, W]) GridRightCount() int { return r.parent.GridRightCount() }
func (r *Reverse[T, W]) GridDepthCount() int { return r.parent.GridDepthCount() }

func (r *Reverse[T, W]) Root() graph.Node { return r.mirror(r.parent.Leaf()) }
func (r *Reverse[T, W]) Leaf() graph.Node { return r.mirror(r.parent.Root()) }

func (r *Reverse[T, W]) EdgeFrom(e graph.Edge) graph.Node { return e.From }
func (r *Reverse[T, W]) EdgeTo(e graph.Edge) graph.Node   { return e.To }

// toParentEdge recovers the parent edge a reversed Edge stands for: a
// reverse-view edge n->m corresponds to parent edge mirror(m)->mirror(n).
func (r *Reverse[T, W]) toParentEdge(e graph.Edge) graph.Edge {
	return MirrorEdge(r.parent.GridDownCount(), r.parent.GridRightCount(), e)
}

func (r *Reverse[T, W]) EdgeWeight(e graph.Edge) W {
	return r.parent.EdgeWeight(r.toParentEdge(e))
}

func (r *Reverse[T, W]) EdgeToElementOffsets(e graph.Edge) (int, int, bool, bool, bool) {
	return r.parent.EdgeToElementOffsets(r.toParentEdge(e))
}

func (r *Reverse[T, W]) OutEdges(n graph.Node) iter.Seq[graph.Edge] {
	pn := r.mirror(n)
	return func(yield func(graph.Edge) bool) {
		for pe := range r.parent.InEdges(pn) {
			if !yield(graph.Edge{From: n, To: r.mirror(pe.From), Kind: pe.Kind}) {
				return
			}
		}
	}
}

func (r *Reverse[T, W]) InEdges(n graph.Node) iter.Seq[graph.Edge] {
	pn := r.mirror(n)
	return func(yield func(graph.Edge) bool) {
		for pe := range r.parent.OutEdges(pn) {
			if !yield(graph.Edge{From: r.mirror(pe.To), To: n, Kind: pe.Kind}) {
				return
			}
		}
	}
}

func (r *Reverse[T, W]) InDegree(n graph.Node) int  { return r.parent.OutDegree(r.mirror(n)) }
func (r *Reverse[T, W]) OutDegree(n graph.Node) int { return r.parent.InDegree(r.mirror(n)) }

func (r *Reverse[T, W]) IsReachable(a, b graph.Node) bool {
	return r.parent.IsReachable(r.mirror(b), r.mirror(a))
}

func (r *Reverse[T, W]) ResidentNodes() []graph.Node {
	parentResidents := r.parent.ResidentNodes()
	out := make([]graph.Node, len(parentResidents))
	for i, pr := range parentResidents {
		out[i] = r.mirror(pr)
	}
	return out
}

func (r *Reverse[T, W]) OutEdgesToResidents(n graph.Node) []graph.Edge {
	return graph.FilterOutToResidents(r.OutEdges(n), r.ResidentNodes())
}

func (r *Reverse[T, W]) InEdgesFromResidents(n graph.Node) []graph.Edge {
	return graph.FilterInFromResidents(r.InEdges(n), r.ResidentNodes())
}

func (r *Reverse[T, W]) Capacities() graph.Capacities { return r.parent.Capacities() }
