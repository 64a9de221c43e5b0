package alignath

import (
	"github.com/katalvlaran/alignath/gridshape"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// AlignOverlap aligns a suffix of down against a prefix of right: root
// freerides down the left column, the bottom row freerides into leaf. tolerance is validated independently of
// o.Tolerance since overlap's graph is frequently used unsliced, where
// the option would otherwise go unchecked.
func AlignOverlap[T any, W weight.Weight[W]](
	down, right seq.Sequence[T],
	sub, gap, freeride score.Scorer[T, W],
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

	g := gridshape.NewOverlapGraph[T, W](down, right, sub, gap, freeride)
	path, total, err := runBacktrack[T, W](g, o)
	if err != nil {
		return nil, zero, err
	}
	return sequence[T, W](g, path), total, nil
}
