package graph

import (
	"errors"
	"iter"
)

// Sentinel errors surfaced by graph shapes and the components that
// consume them.
var (
	// ErrIndexWidthTooNarrow indicates the chosen grid-coordinate type
	// cannot represent max(|D|,|R|)+1 without overflow.
	ErrIndexWidthTooNarrow = errors.New("graph: index width too narrow for input size")

	// ErrNodeOutOfRange indicates a Node's coordinates exceed the grid.
	ErrNodeOutOfRange = errors.New("graph: node coordinates out of range")

	// ErrDisconnected indicates no edge exists where the contract requires
	// in-degree or out-degree >= 1.
	ErrDisconnected = errors.New("graph: root/leaf disconnected")

	// ErrNonFiniteTolerance indicates a NaN or infinite tolerance was
	// supplied to a shape (overlap, extended-gap) that needs one.
	ErrNonFiniteTolerance = errors.New("graph: tolerance must be finite")
)

// Node is a coordinate in the (down, right, depth) grid. Depth is 0 for
// every single-depth shape (global, local, fitting, overlap, rotational)
// and one of {0,1,2} for the extended-gap (affine) shape. Node is
// comparable and totally ordered, so it is cheap to use as a map key or
// a binary-search key in the resident-slot table.
type Node struct {
	Down, Right, Depth int
}

// Less orders nodes lexicographically by (Down, Right, Depth). This is
// the order resident-slot tables sort by for binary search.
func (n Node) Less(o Node) bool {
	if n.Down != o.Down {
		return n.Down < o.Down
	}
	if n.Right != o.Right {
		return n.Right < o.Right
	}
	return n.Depth < o.Depth
}

// EdgeKind discriminates the kind of step an edge takes through the grid.
type EdgeKind uint8

const (
	// KindSubstitution moves diagonally: consumes one D element and one R
	// element (a match or mismatch, scored by the substitution scorer).
	KindSubstitution EdgeKind = iota
	// KindDownGap moves down only: consumes one D element, gap in R.
	KindDownGap
	// KindRightGap moves right only: consumes one R element, gap in D.
	KindRightGap
	// KindFreeride skips without consuming anything as a substitution or
	// gap: the zero/configurable-cost boundary edge used by the local,
	// fitting, overlap, and rotational shapes.
	KindFreeride
	// KindGapOpenIns opens an insertion run: depth 0 -> depth 1.
	KindGapOpenIns
	// KindGapExtendIns extends an insertion run within depth 1.
	KindGapExtendIns
	// KindGapCloseIns closes an insertion run: depth 1 -> depth 0.
	KindGapCloseIns
	// KindGapOpenDel opens a deletion run: depth 0 -> depth 2.
	KindGapOpenDel
	// KindGapExtendDel extends a deletion run within depth 2.
	KindGapExtendDel
	// KindGapCloseDel closes a deletion run: depth 2 -> depth 0.
	KindGapCloseDel
)

// Edge names a directed step between two nodes. Edge carries no weight:
// weight is computed on demand by AlignmentGraph.EdgeWeight so that no
// graph ever materializes a full grid of scores up front.
type Edge struct {
	From, To Node
	Kind     EdgeKind
}

// Capacities are the maxima stack-based container factories size their
// fixed arrays from. They are computed once per graph shape at
// construction and are not invariants the core library enforces beyond
// path-edge length (see AlignmentGraph.Capacities' doc and PathEdges'
// contract below).
type Capacities struct {
	// ResidentNodes bounds len(ResidentNodes()).
	ResidentNodes int
	// PathEdges bounds the longest root-to-leaf path; always >=
	// GridDownCount+GridRightCount-2 for single-depth graphs.
	PathEdges int
	// NodeIncomingEdges bounds in-degree of any single node.
	NodeIncomingEdges int
	// NodeOutgoingEdges bounds out-degree of any single node.
	NodeOutgoingEdges int
}

// AlignmentGraph is a lazy DAG over a (down × right × depth) grid,
// parameterized by the sequence element type T and the weight type W.
type AlignmentGraph[T any, W any] interface {
	// GridDownCount, GridRightCount, GridDepthCount give the grid's shape.
	GridDownCount() int
	GridRightCount() int
	GridDepthCount() int

	// Root and Leaf are each unique to the graph.
	Root() Node
	Leaf() Node

	// EdgeFrom, EdgeTo, EdgeWeight describe an edge previously obtained
	// from InEdges/OutEdges. EdgeWeight invokes the graph's scorer.
	EdgeFrom(e Edge) Node
	EdgeTo(e Edge) Node
	EdgeWeight(e Edge) W

	// EdgeToElementOffsets maps an edge to the element indices it
	// consumes. ok is false for a freeride edge (neither index means
	// anything); downOK/rightOK are false for the gap side of a
	// substitution/gap edge.
	EdgeToElementOffsets(e Edge) (downIdx, rightIdx int, downOK, rightOK, ok bool)

	// InEdges and OutEdges are lazy ranges over a node's incident edges,
	// using Go's range-over-func iterators so that a node with many
	// synthetic edges (e.g. local's root, which freerides to every node)
	// never materializes the full edge list unless the caller ranges over
	// all of it.
	InEdges(n Node) iter.Seq[Edge]
	OutEdges(n Node) iter.Seq[Edge]

	// InDegree and OutDegree must be cheap (O(1) or O(depth)).
	InDegree(n Node) int
	OutDegree(n Node) int

	// IsReachable is a partial order consistent with the DAG; cheap.
	IsReachable(a, b Node) bool

	// ResidentNodes are the (typically few) nodes whose edges violate the
	// "only previous and current row matter" property. Root and Leaf are
	// always included when residents exist.
	ResidentNodes() []Node
	// OutEdgesToResidents and InEdgesFromResidents are the subset of a
	// node's edges that touch a resident.
	OutEdgesToResidents(n Node) []Edge
	InEdgesFromResidents(n Node) []Edge

	// Capacities reports the stack-allocation maxima for this graph.
	Capacities() Capacities
}
