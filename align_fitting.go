package alignath

import (
	"github.com/katalvlaran/alignath/gridshape"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// AlignFitting aligns all of right against some substring of down: down
// may freeride through any prefix or suffix of itself for free.
func AlignFitting[T any, W weight.Weight[W]](
	down, right seq.Sequence[T],
	sub, gap, freeride score.Scorer[T, W],
	opts ...Option,
) (Alignment, W, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var zero W
	if err := CheckIndexWidth(o.IndexWidth, down.Size(), right.Size()); err != nil {
		return nil, zero, err
	}

	g := gridshape.NewFittingGraph[T, W](down, right, sub, gap, freeride)
	path, total, err := runBacktrack[T, W](g, o)
	if err != nil {
		return nil, zero, err
	}
	return sequence[T, W](g, path), total, nil
}
