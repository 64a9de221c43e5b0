package gridshape

import (
	"iter"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// baseGrid holds the sequences and scorers common to every single-depth
// shape, plus the diagonal/down/right adjacency and weight dispatch every
// shape shares. Shapes embed it and add their own boundary freerides.
type baseGrid[T any, W weight.Weight[W]] struct {
	down, right        seq.Sequence[T]
	sub, gap, freeride score.Scorer[T, W]
}

func (g *baseGrid[T, W]) GridDownCount() int  { return g.down.Size() + 1 }
func (g *baseGrid[T, W]) GridRightCount() int { return g.right.Size() + 1 }
func (g *baseGrid[T, W]) GridDepthCount() int { return 1 }

func (g *baseGrid[T, W]) EdgeFrom(e graph.Edge) graph.Node { return e.From }
func (g *baseGrid[T, W]) EdgeTo(e graph.Edge) graph.Node   { return e.To }

// IsReachable is the same grid-coordinate partial order for every shape in
// this package: every boundary freeride this package adds only shortcuts
// an edge that is already within the (Down,Right) product order (it never
// connects two nodes the normal diagonal/down/right adjacency couldn't
// already connect), so the base comparison alone is exact.
func (g *baseGrid[T, W]) IsReachable(a, b graph.Node) bool {
	return a.Down <= b.Down && a.Right <= b.Right
}

// localWeight dispatches the four shape-independent edge kinds to the
// appropriate scorer. Shape-specific kinds (affine open/extend/close) are
// handled by ExtendedGapGraph directly.
func (g *baseGrid[T, W]) localWeight(e graph.Edge) W {
	switch e.Kind {
	case graph.KindSubstitution:
		return g.sub.Score(
			score.Present(e.From.Down, g.down.At(e.From.Down)),
			score.Present(e.From.Right, g.right.At(e.From.Right)),
		)
	case graph.KindDownGap:
		return g.gap.Score(score.Present(e.From.Down, g.down.At(e.From.Down)), score.Absent[T]())
	case graph.KindRightGap:
		return g.gap.Score(score.Absent[T](), score.Present(e.From.Right, g.right.At(e.From.Right)))
	case graph.KindFreeride:
		return g.freeride.Score(score.Absent[T](), score.Absent[T]())
	}
	var zero W
	return zero
}

// localOffsets maps the four shape-independent edge kinds to element
// offsets, implementing EdgeToElementOffsets for every embedding shape.
func localOffsets(e graph.Edge) (downIdx, rightIdx int, downOK, rightOK, ok bool) {
	switch e.Kind {
	case graph.KindSubstitution:
		return e.From.Down, e.From.Right, true, true, true
	case graph.KindDownGap:
		return e.From.Down, 0, true, false, true
	case graph.KindRightGap:
		return 0, e.From.Right, false, true, true
	default: // freeride and every affine depth-change kind
		return 0, 0, false, false, false
	}
}

func (g *baseGrid[T, W]) EdgeToElementOffsets(e graph.Edge) (int, int, bool, bool, bool) {
	return localOffsets(e)
}

// normalOut yields the (up to three) diagonal/down/right edges leaving n
// that stay inside the grid. Shared by every single-depth shape.
func (g *baseGrid[T, W]) normalOut(n graph.Node) iter.Seq[graph.Edge] {
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	return func(yield func(graph.Edge) bool) {
		d, r := n.Down, n.Right
		if d+1 < downCount {
			if !yield(graph.Edge{From: n, To: graph.Node{Down: d + 1, Right: r}, Kind: graph.KindDownGap}) {
				return
			}
		}
		if r+1 < rightCount {
			if !yield(graph.Edge{From: n, To: graph.Node{Down: d, Right: r + 1}, Kind: graph.KindRightGap}) {
				return
			}
		}
		if d+1 < downCount && r+1 < rightCount {
			if !yield(graph.Edge{From: n, To: graph.Node{Down: d + 1, Right: r + 1}, Kind: graph.KindSubstitution}) {
				return
			}
		}
	}
}

// normalIn yields the (up to three) diagonal/down/right edges entering n.
func (g *baseGrid[T, W]) normalIn(n graph.Node) iter.Seq[graph.Edge] {
	return func(yield func(graph.Edge) bool) {
		d, r := n.Down, n.Right
		if d > 0 {
			if !yield(graph.Edge{From: graph.Node{Down: d - 1, Right: r}, To: n, Kind: graph.KindDownGap}) {
				return
			}
		}
		if r > 0 {
			if !yield(graph.Edge{From: graph.Node{Down: d, Right: r - 1}, To: n, Kind: graph.KindRightGap}) {
				return
			}
		}
		if d > 0 && r > 0 {
			if !yield(graph.Edge{From: graph.Node{Down: d - 1, Right: r - 1}, To: n, Kind: graph.KindSubstitution}) {
				return
			}
		}
	}
}

func (g *baseGrid[T, W]) normalInDegree(n graph.Node) int {
	c := 0
	if n.Down > 0 {
		c++
	}
	if n.Right > 0 {
		c++
	}
	if n.Down > 0 && n.Right > 0 {
		c++
	}
	return c
}

func (g *baseGrid[T, W]) normalOutDegree(n graph.Node) int {
	c := 0
	downCount, rightCount := g.GridDownCount(), g.GridRightCount()
	if n.Down+1 < downCount {
		c++
	}
	if n.Right+1 < rightCount {
		c++
	}
	if n.Down+1 < downCount && n.Right+1 < rightCount {
		c++
	}
	return c
}

// chain concatenates lazy edge ranges into one, stopping as soon as a
// downstream yield declines further edges.
func chain(seqs ...iter.Seq[graph.Edge]) iter.Seq[graph.Edge] {
	return func(yield func(graph.Edge) bool) {
		for _, s := range seqs {
			stop := false
			s(func(e graph.Edge) bool {
				if !yield(e) {
					stop = true
					return false
				}
				return true
			})
			if stop {
				return
			}
		}
	}
}

func basePathCapacity(downCount, rightCount int) int {
	return downCount + rightCount - 2
}
