package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignath/container"
)

func TestNewFactory_StackRequiresPositiveCapacity(t *testing.T) {
	_, err := container.NewFactory[int](container.Stack, 0)
	assert.ErrorIs(t, err, container.ErrIncompleteFactory)

	_, err = container.NewFactory[int](container.Stack, -1)
	assert.ErrorIs(t, err, container.ErrIncompleteFactory)

	f, err := container.NewFactory[int](container.Stack, 4)
	require.NoError(t, err)
	require.NotNil(t, f)
}

func TestHeapFactory_GrowsWithoutBound(t *testing.T) {
	f, err := container.NewFactory[int](container.Heap, 0)
	require.NoError(t, err)

	c := f.NewEmpty()
	for i := 0; i < 100; i++ {
		c.Push(i)
	}
	assert.Equal(t, 100, c.Len())
	assert.Equal(t, 99, c.At(99))
}

func TestHeapFactory_WithItemsDrainsSequence(t *testing.T) {
	f, err := container.NewFactory[string](container.Heap, 0)
	require.NoError(t, err)

	seq := func(yield func(string) bool) {
		for _, v := range []string{"a", "b", "c"} {
			if !yield(v) {
				return
			}
		}
	}
	c := f.WithItems(seq)
	assert.Equal(t, []string{"a", "b", "c"}, c.Items())
}

func TestStackFactory_PushPanicsPastCapacity(t *testing.T) {
	f, err := container.NewFactory[int](container.Stack, 2)
	require.NoError(t, err)

	c := f.NewEmpty()
	c.Push(1)
	c.Push(2)
	assert.Panics(t, func() { c.Push(3) })
}

func TestStackFactory_WithSizeRejectsOversizedRequest(t *testing.T) {
	f, err := container.NewFactory[int](container.Stack, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { f.WithSize(3) })
	assert.NotPanics(t, func() { f.WithSize(2) })
}

func TestBoundedContainer_PopIsLIFO(t *testing.T) {
	f, err := container.NewFactory[int](container.Stack, 4)
	require.NoError(t, err)

	c := f.NewEmpty()
	c.Push(1)
	c.Push(2)
	c.Push(3)
	assert.Equal(t, 3, c.Pop())
	assert.Equal(t, 2, c.Pop())
	assert.Equal(t, 1, c.Len())
}
