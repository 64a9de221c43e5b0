package alignath

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
)

// Item is one element of an Alignment: Freeride marks a
// zero-index step that consumes nothing on either side; otherwise DownOK
// and RightOK each independently report whether that side consumed an
// element (both true is a substitution/match, exactly one true is a
// gap).
type Item struct {
	Freeride bool
	DownIdx  int
	DownOK   bool
	RightIdx int
	RightOK  bool
}

// Alignment is the lazy forward sequence of Items a façade returns.
type Alignment = iter.Seq[Item]

// sequence lazily maps path's edges to Items via g's
// EdgeToElementOffsets, in order.
func sequence[T any, W any](g graph.AlignmentGraph[T, W], path []graph.Edge) Alignment {
	return func(yield func(Item) bool) {
		for _, e := range path {
			downIdx, rightIdx, downOK, rightOK, ok := g.EdgeToElementOffsets(e)
			item := Item{Freeride: !ok, DownIdx: downIdx, DownOK: downOK, RightIdx: rightIdx, RightOK: rightOK}
			if !yield(item) {
				return
			}
		}
	}
}

// rotationalSequence is sequence, additionally folding any down index
// in the doubled sequence's second copy back into [0, downLen).
func rotationalSequence[T any, W any](g graph.AlignmentGraph[T, W], path []graph.Edge, downLen int) Alignment {
	return func(yield func(Item) bool) {
		for _, e := range path {
			downIdx, rightIdx, downOK, rightOK, ok := g.EdgeToElementOffsets(e)
			if downOK && downIdx >= downLen {
				downIdx -= downLen
			}
			item := Item{Freeride: !ok, DownIdx: downIdx, DownOK: downOK, RightIdx: rightIdx, RightOK: rightOK}
			if !yield(item) {
				return
			}
		}
	}
}
