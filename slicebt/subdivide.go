package slicebt

import (
	"context"

	"github.com/katalvlaran/alignath/container"
	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/graphview"
	"github.com/katalvlaran/alignath/walker"
	"github.com/katalvlaran/alignath/weight"
)

// Subdivide computes the maximum-weight path through the segment
// [from,to] of g — a sub-range with no internal resident-touching edges,
// as produced by package segment — in O(gridDown+gridRight) extra
// memory via recursive row bisection. Every recursive call
// re-views g directly (never a view-of-a-view), so edges recorded into
// path are always already expressed in g's own coordinates. ctx is
// checked, via the bidirectional walkers it builds, between the rows of
// every recursive step.
func Subdivide[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], from, to graph.Node, factory container.Factory[pathNode]) (*PathContainer, error) {
	path := NewPathContainer(factory, g.Capacities().PathEdges)
	if err := subdivide[T, W](ctx, g, from, to, path); err != nil {
		return nil, err
	}
	return path, nil
}

// subdivide is the recursive step. It views [from,to], finds the row at
// its vertical midpoint, and picks the single edge crossing that row
// which maximizes the end-to-end path weight, computed as the sum of a
// bidirectional walker's two halves. It then recurses
// on the two halves either side of that edge.
func subdivide[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], from, to graph.Node, path *PathContainer) error {
	if from == to {
		return nil
	}

	sub := graphview.Middle[T, W](g, from, to)
	mid := (sub.GridDownCount() - 1) / 2
	bidi, err := walker.NewBidiWalker[T, W](ctx, sub, mid)
	if err != nil {
		return err
	}

	bestEdge, found := bestCrossingEdge[T, W](sub, bidi, mid)
	if !found {
		return nil
	}

	if err := subdivide[T, W](ctx, g, from, bestEdge.From, path); err != nil {
		return err
	}
	path.PushSuffix(bestEdge)
	return subdivide[T, W](ctx, g, bestEdge.To, to, path)
}

// bestCrossingEdge scans every node on sub's mid row and returns, in g's
// coordinates, the edge that maximizes forward weight + backward weight
// through that node. A node's own forward back-edge (the edge arriving
// at it) is used when present; otherwise its mirrored backward back-edge
// (the edge leaving it) is used — the fallback only fires for a node with
// no predecessor within sub, i.e. sub's own root when mid is row 0.
// Ties keep the first node in iteration order.
func bestCrossingEdge[T any, W weight.Weight[W]](sub *graphview.View[T, W], bidi *walker.BidiWalker[T, W], mid int) (graph.Edge, bool) {
	var bestEdge graph.Edge
	var bestWeight W
	found := false

	for right := 0; right < sub.GridRightCount(); right++ {
		for depth := 0; depth < sub.GridDepthCount(); depth++ {
			n := graph.Node{Down: mid, Right: right, Depth: depth}
			fwd, bwd, ok := bidi.Find(n)
			if !ok {
				continue
			}

			var localCrossing graph.Edge
			switch {
			case fwd.Found:
				localCrossing = fwd.BackEdge
			case bwd.Found:
				localCrossing = graphview.MirrorEdge(sub.GridDownCount(), sub.GridRightCount(), bwd.BackEdge)
			default:
				continue
			}

			total := fwd.AccumulatedWeight.Add(bwd.AccumulatedWeight)
			if !found || bestWeight.Less(total) {
				bestEdge, bestWeight, found = sub.ParentEdge(localCrossing), total, true
			}
		}
	}
	return bestEdge, found
}
