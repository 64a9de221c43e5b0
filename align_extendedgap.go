package alignath

import (
	"github.com/katalvlaran/alignath/gridshape"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// AlignExtendedGap computes a local, affine-gap alignment:
// initialGap scores a run's first element, extendedGap scores every
// subsequent element of the same run, and freeride scores the local-style
// boundary edges. tolerance governs the sliced backtracker's resident
// comparisons exactly as AlignOverlap's does.
func AlignExtendedGap[T any, W weight.Weight[W]](
	down, right seq.Sequence[T],
	sub, initialGap, extendedGap, freeride score.Scorer[T, W],
	tolerance float64,
	opts ...Option,
) (Alignment, W, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var zero W
	if err := checkTolerance(tolerance); err != nil {
		return nil, zero, err
	}
	if err := CheckIndexWidth(o.IndexWidth, down.Size(), right.Size()); err != nil {
		return nil, zero, err
	}
	o.Tolerance = tolerance

	g := gridshape.NewExtendedGapGraph[T, W](down, right, sub, initialGap, extendedGap, freeride)
	path, total, err := runBacktrack[T, W](g, o)
	if err != nil {
		return nil, zero, err
	}
	return sequence[T, W](g, path), total, nil
}
