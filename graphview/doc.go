// Package graphview provides non-mutating wrapper graphs over a parent
// AlignmentGraph: Middle (and its Prefix/Suffix specializations) restrict
// attention to a sub-range of the grid, and Reverse walks the parent
// backwards. Every view borrows its parent and holds no owned storage:
// a view never builds a new graph, it only translates coordinates on
// read, so the parent must outlive it.
package graphview
