package container

import (
	"fmt"
	"iter"
)

// stackFactory builds boundedContainer values, each sized to at most
// capacity elements. A stack-backed container never reallocates past
// that size: Push panics instead, the same fail-fast contract this
// module's invariant errors use elsewhere.
type stackFactory[T any] struct {
	capacity int
}

func (f stackFactory[T]) NewEmpty() Container[T] {
	return &boundedContainer[T]{capacity: f.capacity, items: make([]T, 0, f.capacity)}
}

func (f stackFactory[T]) WithCapacity(n int) Container[T] {
	f.checkFits(n)
	return &boundedContainer[T]{capacity: f.capacity, items: make([]T, 0, n)}
}

func (f stackFactory[T]) WithSize(n int) Container[T] {
	f.checkFits(n)
	return &boundedContainer[T]{capacity: f.capacity, items: make([]T, n)}
}

func (f stackFactory[T]) WithItems(items iter.Seq[T]) Container[T] {
	c := &boundedContainer[T]{capacity: f.capacity, items: make([]T, 0, f.capacity)}
	for v := range items {
		c.Push(v)
	}
	return c
}

func (f stackFactory[T]) checkFits(n int) {
	if n > f.capacity {
		panic(fmt.Sprintf("container: requested size %d exceeds stack capacity %d: %v", n, f.capacity, ErrCapacityExceeded))
	}
}

// boundedContainer is a Container whose backing array never grows past
// capacity; Push and Set beyond that bound panic rather than reallocate.
type boundedContainer[T any] struct {
	items    []T
	capacity int
}

func (c *boundedContainer[T]) Len() int       { return len(c.items) }
func (c *boundedContainer[T]) Cap() int       { return c.capacity }
func (c *boundedContainer[T]) At(i int) T     { return c.items[i] }
func (c *boundedContainer[T]) Set(i int, v T) { c.items[i] = v }

func (c *boundedContainer[T]) Push(v T) int {
	if len(c.items) >= c.capacity {
		panic(fmt.Sprintf("container: stack capacity %d exceeded: %v", c.capacity, ErrCapacityExceeded))
	}
	c.items = append(c.items, v)
	return len(c.items) - 1
}

func (c *boundedContainer[T]) Pop() T {
	n := len(c.items) - 1
	v := c.items[n]
	c.items = c.items[:n]
	return v
}

func (c *boundedContainer[T]) Items() []T { return c.items }
