package alignath

import (
	"github.com/katalvlaran/alignath/backtrack"
	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/slicebt"
	"github.com/katalvlaran/alignath/weight"
)

// runBacktrack dispatches to the full-grid or sliced backtracker per
// o.Sliced, after returning o.Ctx's error if it is already done. Callers
// validate the index width and (for callers that pass one) tolerance
// before calling it.
func runBacktrack[T any, W weight.Weight[W]](g graph.AlignmentGraph[T, W], o Options) ([]graph.Edge, W, error) {
	var zero W
	if err := o.Ctx.Err(); err != nil {
		return nil, zero, err
	}

	if o.Sliced {
		// slicebt's path arena element type is unexported, so its factory
		// is only ever held through := type inference, never spelled out
		// as a named type here.
		if o.StackCapacity > 0 {
			pathFactory, err := slicebt.NewStackFactory(o.StackCapacity)
			if err != nil {
				return nil, zero, err
			}
			return slicebt.FindMaxPath[T, W](o.Ctx, g, pathFactory, o.Tolerance)
		}
		pathFactory, err := slicebt.NewHeapFactory()
		if err != nil {
			return nil, zero, err
		}
		return slicebt.FindMaxPath[T, W](o.Ctx, g, pathFactory, o.Tolerance)
	}

	edgeFactory, err := o.edgeFactory()
	if err != nil {
		return nil, zero, err
	}
	return backtrack.FindMaxPath[T, W](o.Ctx, g, edgeFactory)
}
