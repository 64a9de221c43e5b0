package gridshape_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/gridshape"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

func matchScorer() score.Func[byte, weight.Int] {
	return func(down, right score.Side[byte]) weight.Int {
		if down.Present && right.Present && down.Elem.Value == right.Elem.Value {
			return weight.Int(1)
		}
		return weight.Int(-1)
	}
}

func gapScorer() score.Func[byte, weight.Int] {
	return func(down, right score.Side[byte]) weight.Int { return weight.Int(-1) }
}

func zeroScorer() score.Func[byte, weight.Int] {
	return func(down, right score.Side[byte]) weight.Int { return weight.Int(0) }
}

// shapes builds one graph of every shape over the given sequences.
func shapes(down, right seq.String) map[string]graph.AlignmentGraph[byte, weight.Int] {
	return map[string]graph.AlignmentGraph[byte, weight.Int]{
		"global":      gridshape.NewGlobalGraph[byte, weight.Int](down, right, matchScorer(), gapScorer()),
		"local":       gridshape.NewLocalGraph[byte, weight.Int](down, right, matchScorer(), gapScorer(), zeroScorer()),
		"fitting":     gridshape.NewFittingGraph[byte, weight.Int](down, right, matchScorer(), gapScorer(), zeroScorer()),
		"overlap":     gridshape.NewOverlapGraph[byte, weight.Int](down, right, matchScorer(), gapScorer(), zeroScorer()),
		"extendedgap": gridshape.NewExtendedGapGraph[byte, weight.Int](down, right, matchScorer(), gapScorer(), gapScorer(), zeroScorer()),
	}
}

func everyNode(g graph.AlignmentGraph[byte, weight.Int]) []graph.Node {
	var nodes []graph.Node
	for d := 0; d < g.GridDownCount(); d++ {
		for r := 0; r < g.GridRightCount(); r++ {
			for depth := 0; depth < g.GridDepthCount(); depth++ {
				nodes = append(nodes, graph.Node{Down: d, Right: r, Depth: depth})
			}
		}
	}
	return nodes
}

// TestShapes_InAndOutEdgeSetsMirror checks that the multiset of edges
// published through OutEdges over all nodes equals the multiset
// published through InEdges — the property the full-grid backtracker's
// unvisited-parent counting depends on.
func TestShapes_InAndOutEdgeSetsMirror(t *testing.T) {
	inputs := []struct{ down, right seq.String }{
		{"", ""},
		{"a", ""},
		{"", "b"},
		{"ab", "a"},
		{"abc", "abcd"},
		{"panama", "ban"},
	}
	for _, in := range inputs {
		for name, g := range shapes(in.down, in.right) {
			t.Run(fmt.Sprintf("%s/%q/%q", name, in.down, in.right), func(t *testing.T) {
				out := map[graph.Edge]int{}
				ins := map[graph.Edge]int{}
				for _, n := range everyNode(g) {
					for e := range g.OutEdges(n) {
						out[e]++
					}
					for e := range g.InEdges(n) {
						ins[e]++
					}
				}
				assert.Equal(t, out, ins)
			})
		}
	}
}

func TestShapes_DegreesMatchEdgeCounts(t *testing.T) {
	for name, g := range shapes("abc", "abcd") {
		t.Run(name, func(t *testing.T) {
			for _, n := range everyNode(g) {
				inCount, outCount := 0, 0
				for range g.InEdges(n) {
					inCount++
				}
				for range g.OutEdges(n) {
					outCount++
				}
				assert.Equal(t, inCount, g.InDegree(n), "InDegree of %+v", n)
				assert.Equal(t, outCount, g.OutDegree(n), "OutDegree of %+v", n)
			}
		})
	}
}

func TestShapes_NoSelfLoops(t *testing.T) {
	for name, g := range shapes("abc", "abcd") {
		t.Run(name, func(t *testing.T) {
			for _, n := range everyNode(g) {
				for e := range g.OutEdges(n) {
					assert.NotEqual(t, e.From, e.To, "self loop at %+v", n)
				}
			}
		})
	}
}

// TestShapes_NonRootNodesAreEnteredOrIsolated checks the in-degree
// invariant: every node other than the root either has an in-edge or
// takes no part in the graph at all (the extended-gap shape's depth-1/2
// cells on the top row and left column are unreachable, so they carry
// no edges in either direction).
func TestShapes_NonRootNodesAreEnteredOrIsolated(t *testing.T) {
	for name, g := range shapes("abc", "ab") {
		t.Run(name, func(t *testing.T) {
			for _, n := range everyNode(g) {
				if n == g.Root() {
					continue
				}
				if g.InDegree(n) == 0 {
					assert.Zero(t, g.OutDegree(n), "node %+v has out-edges but cannot be entered", n)
				}
			}
		})
	}
}

func TestShapes_ResidentsIncludeRootAndLeaf(t *testing.T) {
	for name, g := range shapes("abc", "abcd") {
		t.Run(name, func(t *testing.T) {
			residents := g.ResidentNodes()
			assert.True(t, graph.IsResident(g.Root(), residents))
			assert.True(t, graph.IsResident(g.Leaf(), residents))
			assert.LessOrEqual(t, len(residents), g.Capacities().ResidentNodes)
		})
	}
}

func TestShapes_PathEdgeCapacityCoversTheGrid(t *testing.T) {
	for name, g := range shapes("panama", "ban") {
		t.Run(name, func(t *testing.T) {
			c := g.Capacities()
			assert.GreaterOrEqual(t, c.PathEdges, g.GridDownCount()+g.GridRightCount()-2)
		})
	}
}

func TestShapes_ResidentEdgeSubsetsAgreeWithEdgeViews(t *testing.T) {
	for name, g := range shapes("ab", "ab") {
		t.Run(name, func(t *testing.T) {
			residents := g.ResidentNodes()
			for _, n := range everyNode(g) {
				for _, e := range g.OutEdgesToResidents(n) {
					assert.True(t, graph.IsResident(e.To, residents))
					assert.Equal(t, n, e.From)
				}
				for _, e := range g.InEdgesFromResidents(n) {
					assert.True(t, graph.IsResident(e.From, residents))
					assert.Equal(t, n, e.To)
				}
			}
		})
	}
}

func TestLocalGraph_RootFanReachesEveryOtherNode(t *testing.T) {
	g := gridshape.NewLocalGraph[byte, weight.Int](seq.String("ab"), seq.String("a"), matchScorer(), gapScorer(), zeroScorer())

	freerides := map[graph.Node]bool{}
	for e := range g.OutEdges(g.Root()) {
		if e.Kind == graph.KindFreeride {
			freerides[e.To] = true
		}
	}
	total := g.GridDownCount() * g.GridRightCount()
	require.Len(t, freerides, total-1, "the root freerides to every node but itself")
	assert.True(t, freerides[g.Leaf()])
}

func TestFittingGraph_BoundaryFreeridesFanDirectly(t *testing.T) {
	g := gridshape.NewFittingGraph[byte, weight.Int](seq.String("abcd"), seq.String("ab"), matchScorer(), gapScorer(), zeroScorer())

	// Root fans down the left column, one edge per row below it.
	var fromRoot []graph.Edge
	for e := range g.OutEdges(g.Root()) {
		if e.Kind == graph.KindFreeride {
			fromRoot = append(fromRoot, e)
			assert.Zero(t, e.To.Right, "root freerides stay in the left column")
		}
	}
	assert.Len(t, fromRoot, g.GridDownCount()-1)

	// Leaf fans in from the right column, one edge per row above it.
	var intoLeaf []graph.Edge
	for e := range g.InEdges(g.Leaf()) {
		if e.Kind == graph.KindFreeride {
			intoLeaf = append(intoLeaf, e)
			assert.Equal(t, g.GridRightCount()-1, e.From.Right, "leaf freerides come from the right column")
		}
	}
	assert.Len(t, intoLeaf, g.GridDownCount()-1)
}

func TestExtendedGapGraph_DepthTransitionsFollowTheStateMachine(t *testing.T) {
	g := gridshape.NewExtendedGapGraph[byte, weight.Int](seq.String("abc"), seq.String("ab"), matchScorer(), gapScorer(), gapScorer(), zeroScorer())

	for _, n := range everyNode(g) {
		for e := range g.OutEdges(n) {
			switch e.Kind {
			case graph.KindSubstitution:
				assert.Zero(t, e.From.Depth)
				assert.Zero(t, e.To.Depth)
			case graph.KindGapOpenIns:
				assert.Zero(t, e.From.Depth)
				assert.Equal(t, 1, e.To.Depth)
			case graph.KindGapExtendIns:
				assert.Equal(t, 1, e.From.Depth)
				assert.Equal(t, 1, e.To.Depth)
			case graph.KindGapCloseIns:
				assert.Equal(t, 1, e.From.Depth)
				assert.Zero(t, e.To.Depth)
			case graph.KindGapOpenDel:
				assert.Zero(t, e.From.Depth)
				assert.Equal(t, 2, e.To.Depth)
			case graph.KindGapExtendDel:
				assert.Equal(t, 2, e.From.Depth)
				assert.Equal(t, 2, e.To.Depth)
			case graph.KindGapCloseDel:
				assert.Equal(t, 2, e.From.Depth)
				assert.Zero(t, e.To.Depth)
			case graph.KindFreeride:
				assert.Zero(t, e.From.Depth)
				assert.Zero(t, e.To.Depth)
			}
		}
	}
}

func TestShapes_EdgeToElementOffsets(t *testing.T) {
	g := gridshape.NewGlobalGraph[byte, weight.Int](seq.String("ab"), seq.String("cd"), matchScorer(), gapScorer())

	sub := graph.Edge{From: graph.Node{Down: 0, Right: 0}, To: graph.Node{Down: 1, Right: 1}, Kind: graph.KindSubstitution}
	downIdx, rightIdx, downOK, rightOK, ok := g.EdgeToElementOffsets(sub)
	require.True(t, ok)
	assert.True(t, downOK)
	assert.True(t, rightOK)
	assert.Equal(t, 0, downIdx)
	assert.Equal(t, 0, rightIdx)

	downGap := graph.Edge{From: graph.Node{Down: 1, Right: 1}, To: graph.Node{Down: 2, Right: 1}, Kind: graph.KindDownGap}
	downIdx, _, downOK, rightOK, ok = g.EdgeToElementOffsets(downGap)
	require.True(t, ok)
	assert.True(t, downOK)
	assert.False(t, rightOK)
	assert.Equal(t, 1, downIdx)

	free := graph.Edge{Kind: graph.KindFreeride}
	_, _, _, _, ok = g.EdgeToElementOffsets(free)
	assert.False(t, ok)
}
