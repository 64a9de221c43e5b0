package slicebt

import (
	"context"

	"github.com/katalvlaran/alignath/container"
	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/segment"
	"github.com/katalvlaran/alignath/weight"
)

// FindMaxPath is the sliced backtracker's entry point:
// segment.Partition splits g's maximum path into hops and resident-free
// segments; each hop's edge is appended directly, each segment is handed
// to Subdivide, and the results are concatenated in order. Returns the
// same total weight segment.Partition computed, so that full-grid and
// sliced backtrackers agree on weight even when they disagree on the
// exact edge sequence under ties. ctx cancellation is honored
// between the rows of every walk the partition and subdivision steps
// perform.
func FindMaxPath[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], pathFactory container.Factory[pathNode], tolerance float64) ([]graph.Edge, W, error) {
	elements, total, err := segment.Partition[T, W](ctx, g, tolerance)
	if err != nil {
		var zero W
		return nil, zero, err
	}

	out := make([]graph.Edge, 0, g.Capacities().PathEdges)
	for _, el := range elements {
		switch el.Kind {
		case segment.KindHop:
			out = append(out, el.Edge)
		case segment.KindSegment:
			sliced, err := Subdivide[T, W](ctx, g, el.From, el.To, pathFactory)
			if err != nil {
				var zero W
				return nil, zero, err
			}
			out = append(out, sliced.Edges()...)
		}
	}

	return out, total, nil
}
