package graph

import "iter"

// IsResident reports whether n appears in residents. residents is small
// (a handful of long-range nodes per shape) so a linear scan is cheap
// and avoids forcing every shape to maintain its own lookup set.
func IsResident(n Node, residents []Node) bool {
	for _, r := range residents {
		if r == n {
			return true
		}
	}
	return false
}

// FilterOutToResidents drains out, keeping only edges whose destination is
// a resident node. Shared by every shape's OutEdgesToResidents method.
func FilterOutToResidents(out iter.Seq[Edge], residents []Node) []Edge {
	result := make([]Edge, 0, 2)
	for e := range out {
		if IsResident(e.To, residents) {
			result = append(result, e)
		}
	}
	return result
}

// FilterInFromResidents drains in, keeping only edges whose origin is a
// resident node. Shared by every shape's InEdgesFromResidents method.
func FilterInFromResidents(in iter.Seq[Edge], residents []Node) []Edge {
	result := make([]Edge, 0, 2)
	for e := range in {
		if IsResident(e.From, residents) {
			result = append(result, e)
		}
	}
	return result
}
