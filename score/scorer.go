package score

import "github.com/katalvlaran/alignath/weight"

// Elem is one element of a sequence paired with its index.
type Elem[T any] struct {
	Index int
	Value T
}

// Side is one side of a scored edge: present with an Elem, or absent
// (the gap/freeride side).
type Side[T any] struct {
	Elem    Elem[T]
	Present bool
}

// Present builds a present Side.
func Present[T any](index int, value T) Side[T] {
	return Side[T]{Elem: Elem[T]{Index: index, Value: value}, Present: true}
}

// Absent builds an absent Side.
func Absent[T any]() Side[T] {
	return Side[T]{}
}

// Scorer assigns a weight to an edge given its optional endpoints.
// Both sides absent is a freeride; exactly one side absent is a
// gap (insertion/deletion); both present is a substitution/match.
// Implementations must be pure: same inputs, same output, no side effects.
type Scorer[T any, W weight.Weight[W]] interface {
	Score(down, right Side[T]) W
}

// Func adapts a plain function to Scorer.
type Func[T any, W weight.Weight[W]] func(down, right Side[T]) W

func (f Func[T, W]) Score(down, right Side[T]) W { return f(down, right) }
