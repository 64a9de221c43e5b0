package backtrack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignath/backtrack"
	"github.com/katalvlaran/alignath/container"
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

func heapFactory(t *testing.T) container.Factory[graph.Edge] {
	t.Helper()
	f, err := container.NewFactory[graph.Edge](container.Heap, 0)
	require.NoError(t, err)
	return f
}

func TestFindMaxPath_GlobalBestAlignment(t *testing.T) {
	g := gridshape.NewGlobalGraph[byte, weight.Int](seq.String("ab"), seq.String("ab"), matchScorer(), matchScorer())

	path, total, err := backtrack.FindMaxPath[byte, weight.Int](context.Background(), g, heapFactory(t))
	require.NoError(t, err)
	assert.Equal(t, weight.Int(2), total)
	require.Len(t, path, 2)
	assert.Equal(t, graph.KindSubstitution, path[0].Kind)
	assert.Equal(t, graph.KindSubstitution, path[1].Kind)
	assert.Equal(t, g.Root(), path[0].From)
	assert.Equal(t, g.Leaf(), path[1].To)
}

func TestFindMaxPath_TrivialEmptySequences(t *testing.T) {
	g := gridshape.NewGlobalGraph[byte, weight.Int](seq.String(""), seq.String(""), matchScorer(), matchScorer())

	path, total, err := backtrack.FindMaxPath[byte, weight.Int](context.Background(), g, heapFactory(t))
	require.NoError(t, err)
	assert.Equal(t, weight.Int(0), total)
	assert.Empty(t, path)
}

func TestFindMaxPath_LocalFindsBestSubstringMatch(t *testing.T) {
	zero := func(down, right score.Side[byte]) weight.Int { return weight.Int(0) }
	g := gridshape.NewLocalGraph[byte, weight.Int](seq.String("xaybz"), seq.String("ay"), matchScorer(), matchScorer(), score.Func[byte, weight.Int](zero))

	_, total, err := backtrack.FindMaxPath[byte, weight.Int](context.Background(), g, heapFactory(t))
	require.NoError(t, err)
	assert.Equal(t, weight.Int(2), total, "the embedded \"ay\" matches both elements of right")
}
