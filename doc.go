// Package alignath computes maximum-weight pairwise sequence alignments
// over user-supplied sequences and scoring functions.
//
// Given two finite sequences D ("down") and R ("right") and scorers for
// substitutions, gaps, and (where the shape allows) freerides, the six
// façade functions — AlignGlobal, AlignLocal, AlignFitting, AlignOverlap,
// AlignRotational, AlignExtendedGap — build the matching alignment graph
// (package gridshape), run a backtracker over it (package backtrack for
// the full-grid dynamic-programming algorithm, package slicebt for the
// linear-memory Hirschberg-style algorithm selected via WithSliced), and
// report the result as a lazy sequence of index-pair Items plus the
// alignment's total score.
//
//	down, right := seq.String("panama"), seq.String("banana")
//	sub := score.Func[byte, weight.Int](func(d, r score.Side[byte]) weight.Int {
//		if d.Present && r.Present && d.Elem.Value == r.Elem.Value {
//			return weight.Int(1)
//		}
//		return weight.Int(-1)
//	})
//	gap := score.Func[byte, weight.Int](func(d, r score.Side[byte]) weight.Int { return weight.Int(-1) })
//	items, score, err := alignath.AlignGlobal[byte, weight.Int](down, right, sub, gap)
//
// go get github.com/katalvlaran/alignath
package alignath
