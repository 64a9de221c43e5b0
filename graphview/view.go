package graphview

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
)

// View restricts a parent graph to the closed box [from, to]: its own
// root is from translated to the origin, its own leaf is to translated
// the same way, and every edge or resident landing outside the box is
// hidden. Middle, Prefix, and Suffix are the three constructors the
// resident segmenter and sliced subdivider use.
type View[T any, W any] struct {
	parent   graph.AlignmentGraph[T, W]
	from, to graph.Node
}

// Middle views the sub-range [from, to] of parent. from must not come
// after to in the (Down, Right) partial order; violating that is a
// programmer error, the same invariant-fatal contract the rest of the
// module uses.
func Middle[T any, W any](parent graph.AlignmentGraph[T, W], from, to graph.Node) *View[T, W] {
	if to.Down < from.Down || to.Right < from.Right {
		panic("graphview: to precedes from")
	}
	return &View[T, W]{parent: parent, from: from, to: to}
}

// Prefix views [parent.Root(), to].
func Prefix[T any, W any](parent graph.AlignmentGraph[T, W], to graph.Node) *View[T, W] {
	return Middle[T, W](parent, parent.Root(), to)
}

// Suffix views [from, parent.Leaf()].
func Suffix[T any, W any](parent graph.AlignmentGraph[T, W], from graph.Node) *View[T, W] {
	return Middle[T, W](parent, from, parent.Leaf())
}

func (v *View[T, W]) toParent(n graph.Node) graph.Node {
	return graph.Node{Down: n.Down + v.from.Down, Right: n.Right + v.from.Right, Depth: n.Depth}
}

func (v *View[T, W]) toLocal(n graph.Node) graph.Node {
	return graph.Node{Down: n.Down - v.from.Down, Right: n.Right - v.from.Right, Depth: n.Depth}
}

// Local translates a parent-coordinate node into this view's coordinates.
func (v *View[T, W]) Local(n graph.Node) graph.Node { return v.toLocal(n) }

// ParentNode translates one of this view's nodes back into the parent's
// coordinates.
func (v *View[T, W]) ParentNode(n graph.Node) graph.Node { return v.toParent(n) }

// ParentEdge translates both endpoints of one of this view's edges back
// into the parent's coordinates, keeping Kind unchanged.
func (v *View[T, W]) ParentEdge(e graph.Edge) graph.Edge {
	return graph.Edge{From: v.toParent(e.From), To: v.toParent(e.To), Kind: e.Kind}
}

// inBox reports whether a parent-coordinate node lies within [from, to]
// on both axes; edges leaving the box (e.g. a local shape's freeride to
// the global leaf) are not part of this view.
func (v *View[T, W]) inBox(n graph.Node) bool {
	return n.Down >= v.from.Down && n.Down <= v.to.Down && n.Right >= v.from.Right && n.Right <= v.to.Right
}

func (v *View[T, W]) GridDownCount() int  { return v.to.Down - v.from.Down + 1 }
func (v *View[T, W]) GridRightCount() int { return v.to.Right - v.from.Right + 1 }
func (v *View[T, W]) GridDepthCount() int { return v.parent.GridDepthCount() }

func (v *View[T, W]) Root() graph.Node { return v.toLocal(v.from) }
func (v *View[T, W]) Leaf() graph.Node { return v.toLocal(v.to) }

func (v *View[T, W]) EdgeFrom(e graph.Edge) graph.Node { return e.From }
func (v *View[T, W]) EdgeTo(e graph.Edge) graph.Node   { return e.To }

func (v *View[T, W]) EdgeWeight(e graph.Edge) W {
	return v.parent.EdgeWeight(graph.Edge{From: v.toParent(e.From), To: v.toParent(e.To), Kind: e.Kind})
}

func (v *View[T, W]) EdgeToElementOffsets(e graph.Edge) (int, int, bool, bool, bool) {
	return v.parent.EdgeToElementOffsets(graph.Edge{From: v.toParent(e.From), To: v.toParent(e.To), Kind: e.Kind})
}

func (v *View[T, W]) OutEdges(n graph.Node) iter.Seq[graph.Edge] {
	pn := v.toParent(n)
	return func(yield func(graph.Edge) bool) {
		for pe := range v.parent.OutEdges(pn) {
			if !v.inBox(pe.To) {
				continue
			}
			if !yield(graph.Edge{From: n, To: v.toLocal(pe.To), Kind: pe.Kind}) {
				return
			}
		}
	}
}

func (v *View[T, W]) InEdges(n graph.Node) iter.Seq[graph.Edge] {
	pn := v.toParent(n)
	return func(yield func(graph.Edge) bool) {
		for pe := range v.parent.InEdges(pn) {
			if !v.inBox(pe.From) {
				continue
			}
			if !yield(graph.Edge{From: v.toLocal(pe.From), To: n, Kind: pe.Kind}) {
				return
			}
		}
	}
}

func (v *View[T, W]) InDegree(n graph.Node) int {
	c := 0
	for range v.InEdges(n) {
		c++
	}
	return c
}

func (v *View[T, W]) OutDegree(n graph.Node) int {
	c := 0
	for range v.OutEdges(n) {
		c++
	}
	return c
}

func (v *View[T, W]) IsReachable(a, b graph.Node) bool {
	return v.parent.IsReachable(v.toParent(a), v.toParent(b))
}

// ResidentNodes is the parent's residents that fall within the box,
// translated to local coordinates, always including the view's own
// root and leaf (root and leaf are always residents when any exist).
func (v *View[T, W]) ResidentNodes() []graph.Node {
	out := make([]graph.Node, 0, len(v.parent.ResidentNodes())+2)
	seenRoot, seenLeaf := false, false
	root, leaf := v.Root(), v.Leaf()
	for _, pr := range v.parent.ResidentNodes() {
		if !v.inBox(pr) {
			continue
		}
		local := v.toLocal(pr)
		if local == root {
			seenRoot = true
		}
		if local == leaf {
			seenLeaf = true
		}
		out = append(out, local)
	}
	if !seenRoot {
		out = append(out, root)
	}
	if !seenLeaf {
		out = append(out, leaf)
	}
	return out
}

func (v *View[T, W]) OutEdgesToResidents(n graph.Node) []graph.Edge {
	return graph.FilterOutToResidents(v.OutEdges(n), v.ResidentNodes())
}

func (v *View[T, W]) InEdgesFromResidents(n graph.Node) []graph.Edge {
	return graph.FilterInFromResidents(v.InEdges(n), v.ResidentNodes())
}

// Capacities reuses the parent's per-node degree bounds (a sub-range
// cannot exceed them) and recomputes PathEdges for the view's own,
// smaller grid.
func (v *View[T, W]) Capacities() graph.Capacities {
	c := v.parent.Capacities()
	c.PathEdges = v.GridDownCount() + v.GridRightCount() - 2
	if c.PathEdges < 0 {
		c.PathEdges = 0
	}
	c.ResidentNodes = len(v.ResidentNodes())
	return c
}
