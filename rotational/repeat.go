package rotational

import "github.com/katalvlaran/alignath/seq"

// Repeat is a read-only view of base repeated copies times end to end,
// indexing modulo base.Size(). Aligning R
// against Repeat(D, 2) and gating total consumption of D to len(D) is
// what lets a fitting alignment discover the best cyclic rotation of D.
type Repeat[T any] struct {
	base   seq.Sequence[T]
	copies int
}

// NewRepeat builds a Repeat view of base spanning copies full copies.
func NewRepeat[T any](base seq.Sequence[T], copies int) Repeat[T] {
	return Repeat[T]{base: base, copies: copies}
}

func (r Repeat[T]) Size() int { return r.base.Size() * r.copies }

func (r Repeat[T]) At(i int) T { return r.base.At(i % r.base.Size()) }
