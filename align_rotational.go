package alignath

import (
	"github.com/katalvlaran/alignath/gridshape"
	"github.com/katalvlaran/alignath/rotational"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// AlignRotational finds the best-scoring alignment of right against some
// cyclic rotation of down: down is doubled via
// rotational.Repeat and every scorer is promoted to a GatedScorer that
// rejects any path consuming more than one full copy of down. Unlike
// AlignOverlap and AlignExtendedGap, tolerance is not a parameter here;
// pass
// WithTolerance as an Option if the sliced backtracker needs one.
func AlignRotational[T any, W weight.Weight[W]](
	down, right seq.Sequence[T],
	sub, gap, freeride score.Scorer[T, W],
	opts ...Option,
) (Alignment, W, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var zero W
	doubled := rotational.NewRepeat[T](down, 2)
	if err := CheckIndexWidth(o.IndexWidth, doubled.Size(), right.Size()); err != nil {
		return nil, zero, err
	}

	limits := rotational.NewLimits(down.Size(), right.Size())
	gatedSub := rotational.NewGatedScorer[T, W](sub, limits)
	gatedGap := rotational.NewGatedScorer[T, W](gap, limits)
	gatedFreeride := rotational.NewGatedScorer[T, W](freeride, limits)

	g := gridshape.NewFittingGraph[T, rotational.GatedWeight[W]](doubled, right, gatedSub, gatedGap, gatedFreeride)
	path, total, err := runBacktrack[T, rotational.GatedWeight[W]](g, o)
	if err != nil {
		return nil, zero, err
	}
	return rotationalSequence[T, rotational.GatedWeight[W]](g, path, down.Size()), total.Real, nil
}
