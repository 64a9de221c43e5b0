// Package segment partitions a graph's maximum-weight root-to-leaf path
// into an ordered list of segments (resident-free sub-ranges) and hops
// (single resident-touching edges). This is the step
// that lets the sliced subdivider assume away long-range freerides: it
// only ever has to row-walk a segment, never a hop.
package segment
