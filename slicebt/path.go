package slicebt

import (
	"github.com/katalvlaran/alignath/container"
	"github.com/katalvlaran/alignath/graph"
)

// noLink marks an absent prev/next index in the arena.
const noLink = -1

// pathNode is one cell of the arena PathContainer links through.
type pathNode struct {
	edge       graph.Edge
	prev, next int
}

// PathContainer is an ordered path under construction: a doubly linked list of
// edges backed by an index-addressed arena rather than pointers, so
// copying or moving a PathContainer by value never dangles (the arena
// reallocating on growth only ever invalidates future Pushes, never the
// prev/next indices already recorded). Built by PushPrefix and
// PushSuffix, read back in forward order by Edges or backward order by
// EdgesReverse.
type PathContainer struct {
	arena      container.Container[pathNode]
	head, tail int
}

// NewPathContainer builds an empty container backed by factory, sized to
// capacityHint. A nil factory falls back to an unbounded heap factory.
func NewPathContainer(factory container.Factory[pathNode], capacityHint int) *PathContainer {
	if factory == nil {
		factory, _ = container.NewFactory[pathNode](container.Heap, 0)
	}
	return &PathContainer{arena: factory.WithCapacity(capacityHint), head: noLink, tail: noLink}
}

// Len reports how many edges the container holds.
func (p *PathContainer) Len() int { return p.arena.Len() }

// PushPrefix links e onto the front of the path.
func (p *PathContainer) PushPrefix(e graph.Edge) {
	idx := p.arena.Push(pathNode{edge: e, prev: noLink, next: p.head})
	if p.head != noLink {
		node := p.arena.At(p.head)
		node.prev = idx
		p.arena.Set(p.head, node)
	}
	p.head = idx
	if p.tail == noLink {
		p.tail = idx
	}
}

// PushSuffix links e onto the back of the path.
func (p *PathContainer) PushSuffix(e graph.Edge) {
	idx := p.arena.Push(pathNode{edge: e, prev: p.tail, next: noLink})
	if p.tail != noLink {
		node := p.arena.At(p.tail)
		node.next = idx
		p.arena.Set(p.tail, node)
	}
	p.tail = idx
	if p.head == noLink {
		p.head = idx
	}
}

// Edges reconstructs the path in forward (root-to-leaf) order, walking
// the linked list from head to tail.
func (p *PathContainer) Edges() []graph.Edge {
	out := make([]graph.Edge, 0, p.Len())
	for i := p.head; i != noLink; {
		node := p.arena.At(i)
		out = append(out, node.edge)
		i = node.next
	}
	return out
}

// EdgesReverse reconstructs the path in backward (leaf-to-root) order:
// walking the linked list from tail to head.
func (p *PathContainer) EdgesReverse() []graph.Edge {
	out := make([]graph.Edge, 0, p.Len())
	for i := p.tail; i != noLink; {
		node := p.arena.At(i)
		out = append(out, node.edge)
		i = node.prev
	}
	return out
}
