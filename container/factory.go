package container

import (
	"errors"
	"iter"
)

// ErrIncompleteFactory indicates a Factory was requested with a
// configuration that cannot back every Container operation it promises
// (e.g. a bounded stack factory with a non-positive capacity). Returned
// eagerly by NewFactory, never deferred to first use.
var ErrIncompleteFactory = errors.New("container: incomplete factory configuration")

// ErrCapacityExceeded is panicked by a bounded Container when a caller
// asks for more room, or pushes more items, than its capacity allows.
// Per this module's invariant-error contract, capacity violations are
// programmer errors: fatal immediately rather than returned.
var ErrCapacityExceeded = errors.New("container: capacity exceeded")

// Container is the minimal random-access, appendable, poppable sequence
// every internal table needs. Pop is LIFO (the ready queue's stack
// discipline); Items snapshots the backing storage for callers that
// need to iterate without holding the container itself (path-container
// reconstruction).
type Container[T any] interface {
	Len() int
	Cap() int
	At(i int) T
	Set(i int, v T)
	Push(v T) int
	Pop() T
	Items() []T
}

// Kind selects a Factory's allocation strategy.
type Kind uint8

const (
	// Heap is a growable, slice-backed container with no fixed capacity.
	Heap Kind = iota
	// Stack is a bounded, array-backed container sized once at
	// construction; Push panics with ErrCapacityExceeded past that size.
	Stack
)

// Factory builds Containers: NewEmpty with no preallocation, WithCapacity
// reserving room without populating, WithSize preallocating n zero
// values, and WithItems draining an existing lazy sequence. The
// backtrackers' queues and path containers are parameterized by a
// Factory, so they run over either strategy unchanged; the slot tables
// allocate plain slices instead.
type Factory[T any] interface {
	NewEmpty() Container[T]
	WithCapacity(n int) Container[T]
	WithSize(n int) Container[T]
	WithItems(items iter.Seq[T]) Container[T]
}

// NewFactory builds a Factory of the given kind. capacity is ignored for
// Heap and must be strictly positive for Stack; a non-positive capacity
// for Stack returns ErrIncompleteFactory immediately; a Factory that
// cannot honor its own contract should never be handed to a caller.
func NewFactory[T any](kind Kind, capacity int) (Factory[T], error) {
	switch kind {
	case Heap:
		return heapFactory[T]{}, nil
	case Stack:
		if capacity <= 0 {
			return nil, ErrIncompleteFactory
		}
		return stackFactory[T]{capacity: capacity}, nil
	default:
		return nil, ErrIncompleteFactory
	}
}
