package walker

import (
	"context"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/slot"
	"github.com/katalvlaran/alignath/weight"
)

// Converge constructs a bidi walker targeting n's row and returns its
// Find(n).
func Converge[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], n graph.Node) (forward, backward slot.Slot[W], ok bool, err error) {
	b, err := NewBidiWalker[T, W](ctx, g, n.Down)
	if err != nil {
		return slot.Slot[W]{}, slot.Slot[W]{}, false, err
	}
	forward, backward, ok = b.Find(n)
	return forward, backward, ok, nil
}

// ConvergeWeight is the sum of Converge's two halves.
func ConvergeWeight[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], n graph.Node) (W, bool, error) {
	forward, backward, ok, err := Converge[T, W](ctx, g, n)
	if err != nil {
		var zero W
		return zero, false, err
	}
	if !ok {
		var zero W
		return zero, false, nil
	}
	return forward.AccumulatedWeight.Add(backward.AccumulatedWeight), true, nil
}

// IsNodeOnMaxPath reports whether some node on n's row has a converged
// weight equal to maxWeight within tolerance, absorbing floating-point
// rounding.
func IsNodeOnMaxPath[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], n graph.Node, maxWeight W, tolerance float64) (bool, error) {
	b, err := NewBidiWalker[T, W](ctx, g, n.Down)
	if err != nil {
		return false, err
	}
	for right := 0; right < g.GridRightCount(); right++ {
		for depth := 0; depth < g.GridDepthCount(); depth++ {
			candidate := graph.Node{Down: n.Down, Right: right, Depth: depth}
			forward, backward, ok := b.Find(candidate)
			if !ok {
				continue
			}
			if forward.AccumulatedWeight.Add(backward.AccumulatedWeight).WithinTolerance(maxWeight, tolerance) {
				return true, nil
			}
		}
	}
	return false, nil
}
