package walker

import (
	"context"

	"github.com/katalvlaran/alignath/graph"
	"github.com/katalvlaran/alignath/slot"
	"github.com/katalvlaran/alignath/weight"
)

// ForwardWalker streams a graph from its root row to targetRow, keeping
// only a two-row window of slots plus one slot per resident node. After
// construction, Find answers for any node on the previous or current
// row, or any resident node reachable through what has been walked so
// far.
type ForwardWalker[T any, W weight.Weight[W]] struct {
	g         graph.AlignmentGraph[T, W]
	rows      *slot.RowSlotTable[W]
	residents []graph.Node
	table     *slot.ResidentSlotTable[W]
	targetRow int
}

// New builds a ForwardWalker over g, streamed up to and including
// targetRow. Out-of-range targetRow is a programmer error: hard-fails by
// panicking rather than silently producing an incomplete walk. ctx is
// checked once per row, so a caller-driven cancellation takes effect
// between rows rather than only before the walk starts; a nil ctx is
// treated as context.Background.
func New[T any, W weight.Weight[W]](ctx context.Context, g graph.AlignmentGraph[T, W], targetRow int) (*ForwardWalker[T, W], error) {
	if targetRow < 0 || targetRow >= g.GridDownCount() {
		panic("walker: target row out of range")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	depthCount := g.GridDepthCount()
	if depthCount > maxGridDepth {
		panic("walker: grid depth exceeds the supported maximum")
	}
	residents := g.ResidentNodes()
	w := &ForwardWalker[T, W]{
		g:         g,
		rows:      slot.NewRowSlotTable[W](g.GridRightCount(), depthCount),
		residents: residents,
		table:     slot.NewResidentSlotTable[W](residents),
		targetRow: targetRow,
	}
	// Root has no in-edges, so stepForward never writes it into the
	// resident table; without this seed, a long-range edge sourced
	// directly at root (local's and extended-gap's root-freeride, or the
	// reverse view's mirrored leaf-as-root) becomes unreachable as soon
	// as the row window advances past row 0. Init marks it "written with
	// default weight": the zero weight is
	// usable by every in-edge argmax, while Found stays false so no
	// caller ever follows a back edge out of the root.
	if graph.IsResident(g.Root(), residents) {
		w.table.Init(g.Root())
	}
	order := make([]int, depthCount)
	for row := 0; row <= targetRow; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for right := 0; right < g.GridRightCount(); right++ {
			w.cellDepthOrder(row, right, order)
			for _, depth := range order {
				w.stepForward(graph.Node{Down: row, Right: right, Depth: depth})
			}
		}
		if row < targetRow {
			w.rows.AdvanceRow()
		}
	}
	return w, nil
}

// maxGridDepth bounds the depth bitmasks cellDepthOrder works in; the
// canonical shapes use depth 1 (single plane) or 3 (affine).
const maxGridDepth = 8

// cellDepthOrder fills order with the sequence to visit the depths of
// cell (down, right) in, such that any in-edge arriving from another
// depth of the same cell has its source visited first. The forward
// affine orientation closes gap runs into depth 0 (visit 1 and 2 before
// 0); its reverse view flips those closes (visit 0 first) — deriving the
// order from the cell's actual in-edges handles both, and any view
// thereof, without the walker knowing the orientation.
func (w *ForwardWalker[T, W]) cellDepthOrder(down, right int, order []int) {
	depthCount := len(order)
	if depthCount == 1 {
		order[0] = 0
		return
	}
	var pred [maxGridDepth]uint8
	for depth := 0; depth < depthCount; depth++ {
		pred[depth] = 0
		for e := range w.g.InEdges(graph.Node{Down: down, Right: right, Depth: depth}) {
			if e.From.Down == down && e.From.Right == right && e.From.Depth != depth {
				pred[depth] |= 1 << uint(e.From.Depth)
			}
		}
	}
	var done uint8
	for i := 0; i < depthCount; i++ {
		next := -1
		for depth := 0; depth < depthCount; depth++ {
			if done&(1<<uint(depth)) != 0 {
				continue
			}
			if pred[depth]&^done == 0 {
				next = depth
				break
			}
		}
		if next < 0 {
			// A same-cell cycle cannot occur in a DAG; fall back to the
			// lowest unvisited depth rather than loop.
			for depth := 0; depth < depthCount; depth++ {
				if done&(1<<uint(depth)) == 0 {
					next = depth
					break
				}
			}
		}
		order[i] = next
		done |= 1 << uint(next)
	}
}

// TargetRow reports the row this walker was primed to.
func (w *ForwardWalker[T, W]) TargetRow() int { return w.targetRow }

// Find looks in the resident-slot table first, then the row-slot
// table. A row slot that exists but was never written (its node
// is in the window yet unreached from the root) is reported as not
// found: its zero weight must not enter any argmax.
func (w *ForwardWalker[T, W]) Find(n graph.Node) (slot.Slot[W], bool) {
	if s, ok := w.table.Find(n); ok {
		return s, true
	}
	if s, ok := w.rows.Find(n); ok && s.Found {
		return s, true
	}
	return slot.Slot[W]{}, false
}

// stepForward processes a single node: if n is not a resident (whose
// slot is only ever written incrementally by predecessors), compute the
// best incoming edge and record it; then push n's contribution to every
// resident its out edges reach.
func (w *ForwardWalker[T, W]) stepForward(n graph.Node) {
	if !graph.IsResident(n, w.residents) {
		if edge, accumulated, found := w.bestInEdge(n); found {
			w.rows.Set(n, slot.Slot[W]{BackEdge: edge, AccumulatedWeight: accumulated, Found: true})
		}
	}

	cur, ok := w.Find(n)
	if !ok {
		return
	}
	for _, e := range w.g.OutEdgesToResidents(n) {
		candidate := cur.AccumulatedWeight.Add(w.g.EdgeWeight(e))
		w.table.Update(e.To, e, candidate)
	}
}

// bestInEdge is the argmax over every in-edge whose source has a known
// slot of the source's accumulated weight plus the edge weight. Ties
// keep the first edge encountered (iteration order of InEdges).
func (w *ForwardWalker[T, W]) bestInEdge(n graph.Node) (graph.Edge, W, bool) {
	var bestEdge graph.Edge
	var bestWeight W
	found := false
	for e := range w.g.InEdges(n) {
		s, ok := w.Find(e.From)
		if !ok {
			continue
		}
		candidate := s.AccumulatedWeight.Add(w.g.EdgeWeight(e))
		if !found || bestWeight.Less(candidate) {
			bestEdge, bestWeight, found = e, candidate, true
		}
	}
	return bestEdge, bestWeight, found
}
