package container

import "iter"

// heapFactory builds sliceContainer values: ordinary Go slices that grow
// by append, the same storage strategy as a ready queue that never
// needs a hard capacity bound.
type heapFactory[T any] struct{}

func (heapFactory[T]) NewEmpty() Container[T] { return &sliceContainer[T]{} }

func (heapFactory[T]) WithCapacity(n int) Container[T] {
	return &sliceContainer[T]{items: make([]T, 0, n)}
}

func (heapFactory[T]) WithSize(n int) Container[T] {
	return &sliceContainer[T]{items: make([]T, n)}
}

func (heapFactory[T]) WithItems(items iter.Seq[T]) Container[T] {
	c := &sliceContainer[T]{}
	for v := range items {
		c.items = append(c.items, v)
	}
	return c
}

// sliceContainer is an unbounded Container backed by a plain Go slice.
type sliceContainer[T any] struct {
	items []T
}

func (c *sliceContainer[T]) Len() int       { return len(c.items) }
func (c *sliceContainer[T]) Cap() int       { return cap(c.items) }
func (c *sliceContainer[T]) At(i int) T     { return c.items[i] }
func (c *sliceContainer[T]) Set(i int, v T) { c.items[i] = v }

func (c *sliceContainer[T]) Push(v T) int {
	c.items = append(c.items, v)
	return len(c.items) - 1
}

func (c *sliceContainer[T]) Pop() T {
	n := len(c.items) - 1
	v := c.items[n]
	c.items = c.items[:n]
	return v
}

func (c *sliceContainer[T]) Items() []T { return c.items }
