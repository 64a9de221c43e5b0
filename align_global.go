package alignath

import (
	"github.com/katalvlaran/alignath/gridshape"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// AlignGlobal computes a Needleman–Wunsch-style alignment of the whole
// of down against the whole of right.
func AlignGlobal[T any, W weight.Weight[W]](
	down, right seq.Sequence[T],
	sub, gap score.Scorer[T, W],
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

	g := gridshape.NewGlobalGraph[T, W](down, right, sub, gap)
	path, total, err := runBacktrack[T, W](g, o)
	if err != nil {
		return nil, zero, err
	}
	return sequence[T, W](g, path), total, nil
}
