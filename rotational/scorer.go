package rotational

import (
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/weight"
)

// GatedScorer promotes an underlying Scorer[T,W] to Scorer[T,GatedWeight[W]],
// setting DownConsumed := 1 iff the down side is present and RightConsumed
// := 1 iff the right side is present.
type GatedScorer[T any, W weight.Weight[W]] struct {
	inner  score.Scorer[T, W]
	limits *Limits
}

// NewGatedScorer wraps inner, gating consumption against limits.
func NewGatedScorer[T any, W weight.Weight[W]](inner score.Scorer[T, W], limits *Limits) *GatedScorer[T, W] {
	return &GatedScorer[T, W]{inner: inner, limits: limits}
}

func (s *GatedScorer[T, W]) Score(down, right score.Side[T]) GatedWeight[W] {
	out := GatedWeight[W]{Real: s.inner.Score(down, right), limits: s.limits}
	if down.Present {
		out.DownConsumed = 1
	}
	if right.Present {
		out.RightConsumed = 1
	}
	return out
}
