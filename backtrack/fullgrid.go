package backtrack

import (
	"context"

	"github.com/katalvlaran/alignath/container"
	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/slot"
	"github.com/katalvlaran/alignath/weight"
)

// entry is one element of the dense per-node slot table: an
// unvisited-parent countdown plus the slot itself.
type entry[W weight.Weight[W]] struct {
	node      graph.Node
	remaining int
	slot      slot.Slot[W]
}

// FindMaxPath walks the whole of g in topological order, computed via
// unvisited-parent counting, and reconstructs the maximum-weight path
// from root to leaf. pathFactory builds the container that collects the
// path's edges during the walk back from leaf to root, sized from
// g.Capacities().PathEdges; the returned slice is a fresh copy of those
// edges in root-to-leaf order.
//
// FindMaxPath returns graph.ErrDisconnected if the leaf is unreachable
// from the root. ctx is checked once per node popped off the ready
// queue, so a caller-driven cancellation takes effect between nodes of
// the topological walk rather than only before it starts; a nil ctx is
// treated as context.Background.
func FindMaxPath[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], pathFactory container.Factory[graph.Edge]) ([]graph.Edge, W, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	downCount, rightCount, depthCount := g.GridDownCount(), g.GridRightCount(), g.GridDepthCount()
	total := downCount * rightCount * depthCount

	offset := func(n graph.Node) int { return (n.Down*rightCount+n.Right)*depthCount + n.Depth }

	entries := make([]entry[W], total)
	for down := 0; down < downCount; down++ {
		for right := 0; right < rightCount; right++ {
			for depth := 0; depth < depthCount; depth++ {
				n := graph.Node{Down: down, Right: right, Depth: depth}
				entries[offset(n)] = entry[W]{node: n, remaining: g.InDegree(n)}
			}
		}
	}

	readyFactory, err := container.NewFactory[int](container.Heap, 0)
	if err != nil {
		var zero W
		return nil, zero, err
	}
	ready := readyFactory.NewEmpty()
	ready.Push(offset(g.Root()))

	for ready.Len() > 0 {
		if err := ctx.Err(); err != nil {
			var zero W
			return nil, zero, err
		}
		i := ready.Pop()
		e := &entries[i]
		if e.remaining != 0 {
			continue // defensive: push-to-ready is idempotent, this branch should not fire.
		}

		var bestEdge graph.Edge
		var bestWeight W
		found := false
		for edge := range g.InEdges(e.node) {
			from := &entries[offset(edge.From)]
			if !from.slot.Found && edge.From != g.Root() {
				continue
			}
			candidate := from.slot.AccumulatedWeight.Add(g.EdgeWeight(edge))
			if !found || bestWeight.Less(candidate) {
				bestEdge, bestWeight, found = edge, candidate, true
			}
		}
		if found {
			e.slot = slot.Slot[W]{BackEdge: bestEdge, AccumulatedWeight: bestWeight, Found: true}
		}

		for out := range g.OutEdges(e.node) {
			dst := &entries[offset(out.To)]
			dst.remaining--
			if dst.remaining == 0 {
				ready.Push(offset(out.To))
			}
		}
	}

	leaf := &entries[offset(g.Leaf())]
	if !leaf.slot.Found && g.Leaf() != g.Root() {
		var zero W
		return nil, zero, graph.ErrDisconnected
	}

	path := pathFactory.WithCapacity(g.Capacities().PathEdges)
	for n := g.Leaf(); n != g.Root(); {
		s := entries[offset(n)].slot
		path.Push(s.BackEdge)
		n = s.BackEdge.From
	}
	reversed := make([]graph.Edge, path.Len())
	for i, j := 0, path.Len()-1; j >= 0; i, j = i+1, j-1 {
		reversed[i] = path.At(j)
	}

	return reversed, leaf.slot.AccumulatedWeight, nil
}
