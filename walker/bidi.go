package walker

import (
	"context"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/graphview"
	"github.com/katalvlaran/alignath/slot"
	"github.com/katalvlaran/alignath/weight"
)

// BidiWalker pairs a forward walker targeting one row with a forward
// walker over the reversed view targeting the mirrored row, so that for
// any node n on the target row, forward weight + backward weight is the
// best root-to-leaf path weight passing through n.
type BidiWalker[T any, W weight.Weight[W]] struct {
	g         graph.AlignmentGraph[T, W]
	forward   *ForwardWalker[T, W]
	backward  *ForwardWalker[T, W]
	targetRow int
}

// NewBidiWalker builds a bidirectional walker targeting targetRow.
// graphview.Reverse[T, W] satisfies graph.AlignmentGraph[T, W] itself,
// so the backward half is an ordinary ForwardWalker over that view. ctx
// cancellation is checked by each half's own row loop.
func NewBidiWalker[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], targetRow int) (*BidiWalker[T, W], error) {
	rev := graphview.NewReverse[T, W](g)
	forward, err := New[T, W](ctx, g, targetRow)
	if err != nil {
		return nil, err
	}
	backward, err := New[T, W](ctx, rev, g.GridDownCount()-1-targetRow)
	if err != nil {
		return nil, err
	}
	return &BidiWalker[T, W]{
		g:         g,
		forward:   forward,
		backward:  backward,
		targetRow: targetRow,
	}, nil
}

func (b *BidiWalker[T, W]) mirror(n graph.Node) graph.Node {
	return graph.Node{
		Down:  b.g.GridDownCount() - 1 - n.Down,
		Right: b.g.GridRightCount() - 1 - n.Right,
		Depth: n.Depth,
	}
}

// Find returns the forward and backward slots for n. ok is false unless
// both halves have a slot, i.e. n is on the target row (or, for the
// backward half, a resident reachable from it).
func (b *BidiWalker[T, W]) Find(n graph.Node) (forward, backward slot.Slot[W], ok bool) {
	fs, fok := b.forward.Find(n)
	bs, bok := b.backward.Find(b.mirror(n))
	if !fok || !bok {
		return slot.Slot[W]{}, slot.Slot[W]{}, false
	}
	return fs, bs, true
}
