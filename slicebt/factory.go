package slicebt

import "github.com/katalvlaran/alignath/container"

// pathNode is unexported, so callers outside this package cannot spell
// container.Factory[pathNode] themselves; NewHeapFactory and
// NewStackFactory are the only way to obtain one to pass to Subdivide
// or FindMaxPath.

// NewHeapFactory builds an unbounded, slice-backed arena factory.
func NewHeapFactory() (container.Factory[pathNode], error) {
	return container.NewFactory[pathNode](container.Heap, 0)
}

// NewStackFactory builds a bounded, array-backed arena factory sized to
// capacity. Pushing past capacity panics, per container.ErrCapacityExceeded.
func NewStackFactory(capacity int) (container.Factory[pathNode], error) {
	return container.NewFactory[pathNode](container.Stack, capacity)
}
