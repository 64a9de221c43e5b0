package rotational

import "github.com/katalvlaran/alignath/weight"

// Limits are the immutable per-alignment caps a GatedWeight compares
// consumption against: DownConsumedMax is normally len(D), so that a
// path consuming more than one full rotation of D is always rejected.
type Limits struct {
	DownConsumedMax, RightConsumedMax int
}

// NewLimits builds Limits from the two consumption caps.
func NewLimits(downConsumedMax, rightConsumedMax int) *Limits {
	return &Limits{DownConsumedMax: downConsumedMax, RightConsumedMax: rightConsumedMax}
}

// GatedWeight wraps an underlying weight W with how much of each
// sequence the path carrying it has consumed so far.
// Addition sums both the real weight and the two consumption counts.
// Ordering is asymmetric: if exactly one operand has exceeded either
// limit, that operand compares as strictly less than the other,
// regardless of real weight; otherwise real weights are compared. This
// makes a backtracker's ordinary argmax naturally discard any partial
// path that has already over-consumed D or R.
type GatedWeight[W weight.Weight[W]] struct {
	Real                        W
	DownConsumed, RightConsumed int
	limits                      *Limits
}

// NewGatedWeight builds a GatedWeight with zero real weight and zero
// consumption, bound to limits. Walkers do not use it: they start
// accumulation from the bare zero value, which has no limits attached.
func NewGatedWeight[W weight.Weight[W]](limits *Limits) GatedWeight[W] {
	var zero W
	return GatedWeight[W]{Real: zero, limits: limits}
}

func (a GatedWeight[W]) exceeded() bool {
	if a.limits == nil {
		return false
	}
	return a.DownConsumed > a.limits.DownConsumedMax || a.RightConsumed > a.limits.RightConsumedMax
}

// pickLimits prefers a's limits, falling back to b's. Both operands of
// any comparison in this package normally share the same *Limits
// instance, since they descend from one Align call — except the
// library-wide "var zero W" idiom every generic algorithm uses for a
// node with no predecessor (the root), which produces a GatedWeight
// with a nil limits pointer. Falling back to b's limits there keeps
// that nil from propagating into every accumulated weight downstream.
func pickLimits(a, b *Limits) *Limits {
	if a != nil {
		return a
	}
	return b
}

// Add sums real weights and consumption counts.
func (a GatedWeight[W]) Add(b GatedWeight[W]) GatedWeight[W] {
	return GatedWeight[W]{
		Real:          a.Real.Add(b.Real),
		DownConsumed:  a.DownConsumed + b.DownConsumed,
		RightConsumed: a.RightConsumed + b.RightConsumed,
		limits:        pickLimits(a.limits, b.limits),
	}
}

// Sub subtracts real weights and consumption counts.
func (a GatedWeight[W]) Sub(b GatedWeight[W]) GatedWeight[W] {
	return GatedWeight[W]{
		Real:          a.Real.Sub(b.Real),
		DownConsumed:  a.DownConsumed - b.DownConsumed,
		RightConsumed: a.RightConsumed - b.RightConsumed,
		limits:        pickLimits(a.limits, b.limits),
	}
}

// Less is deliberately asymmetric: an operand that has
// exceeded either limit always orders before one that has not, no matter
// the real weights; when both or neither have exceeded, real weight
// decides.
func (a GatedWeight[W]) Less(b GatedWeight[W]) bool {
	ae, be := a.exceeded(), b.exceeded()
	if ae != be {
		return ae
	}
	return a.Real.Less(b.Real)
}

// Equal reports equality of exceeded-status and real weight.
func (a GatedWeight[W]) Equal(b GatedWeight[W]) bool {
	return a.exceeded() == b.exceeded() && a.Real.Equal(b.Real)
}

// WithinTolerance compares real weights within tol once both operands
// agree on exceeded-status. Tolerance never blurs the exceeded boundary
// itself; see DESIGN.md for the floating-point caveat.
func (a GatedWeight[W]) WithinTolerance(b GatedWeight[W], tol float64) bool {
	return a.exceeded() == b.exceeded() && a.Real.WithinTolerance(b.Real, tol)
}
