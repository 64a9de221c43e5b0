package segment

import (
	"context"
	"sort"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/graphview"
	"github.com/katalvlaran/alignath/walker"
	"github.com/katalvlaran/alignath/weight"
)

// Kind discriminates an Element: a resident-free sub-DAG (Segment) or a
// single resident-touching edge (Hop).
type Kind uint8

const (
	// KindSegment marks an Element whose From/To fields bound a sub-range
	// with no internal resident-touching edges.
	KindSegment Kind = iota
	// KindHop marks an Element whose Edge field is the resident-touching
	// edge itself.
	KindHop
)

// Element is one item of Partition's ordered decomposition.
type Element struct {
	Kind     Kind
	From, To graph.Node // valid when Kind == KindSegment
	Edge     graph.Edge // valid when Kind == KindHop
}

// Partition walks g's maximum-weight path and reports it as an ordered
// list of Elements, plus the path's total weight. tolerance absorbs
// floating-point rounding when testing whether a resident lies on some
// maximum path (walker.IsNodeOnMaxPath).
//
// Partition returns graph.ErrDisconnected if the leaf is unreachable
// from the root.
func Partition[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], tolerance float64) ([]Element, W, error) {
	maxWeight, ok, err := walker.ConvergeWeight[T, W](ctx, g, g.Leaf())
	if err != nil {
		var zero W
		return nil, zero, err
	}
	if !ok {
		var zero W
		return nil, zero, graph.ErrDisconnected
	}

	residents := append([]graph.Node(nil), g.ResidentNodes()...)
	sort.Slice(residents, func(i, j int) bool { return residents[i].Less(residents[j]) })

	var onPath []graph.Node
	for _, r := range residents {
		on, err := walker.IsNodeOnMaxPath[T, W](ctx, g, r, maxWeight, tolerance)
		if err != nil {
			var zero W
			return nil, zero, err
		}
		if on {
			onPath = append(onPath, r)
		}
	}

	residentEdges, err := collectResidentEdges[T, W](ctx, g, onPath)
	if err != nil {
		var zero W
		return nil, zero, err
	}

	return buildElements[T, W](g, residentEdges), maxWeight, nil
}

// collectResidentEdges visits every surviving resident:
// in order, build a middle view spanning [lastToNode, leaf], converge on
// the resident inside that view, and record its best edge — backward
// (mirrored to a forward-facing edge) when the resident is the graph's
// own root, since the root has no incoming edge to record; forward
// otherwise.
func collectResidentEdges[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], onPath []graph.Node) ([]graph.Edge, error) {
	var edges []graph.Edge
	lastTo := g.Root()
	for _, r := range onPath {
		sub := graphview.Middle[T, W](g, lastTo, g.Leaf())
		local := sub.Local(r)
		fwd, bwd, ok, err := walker.Converge[T, W](ctx, sub, local)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		var e graph.Edge
		switch {
		case r == g.Root():
			if !bwd.Found {
				continue
			}
			mirrored := graphview.MirrorEdge(sub.GridDownCount(), sub.GridRightCount(), bwd.BackEdge)
			e = sub.ParentEdge(mirrored)
		default:
			if !fwd.Found {
				continue
			}
			e = sub.ParentEdge(fwd.BackEdge)
		}

		edges = append(edges, e)
		lastTo = e.To
	}
	return edges, nil
}

// buildElements interleaves segments between
// consecutive resident edges (skipping a segment when the edges are
// already adjacent), with hops for the resident edges themselves, and a
// leading/trailing segment to root/from leaf when needed.
func buildElements[T any, W weight.Weight[W]](g graph.AlignmentGraph[T, W], residentEdges []graph.Edge) []Element {
	elements := make([]Element, 0, 2*len(residentEdges)+1)
	prevTo := g.Root()
	for _, e := range residentEdges {
		if e.From != prevTo {
			elements = append(elements, Element{Kind: KindSegment, From: prevTo, To: e.From})
		}
		elements = append(elements, Element{Kind: KindHop, Edge: e})
		prevTo = e.To
	}
	if prevTo != g.Leaf() {
		elements = append(elements, Element{Kind: KindSegment, From: prevTo, To: g.Leaf()})
	}
	return elements
}
