// Package graph declares the alignment-graph contract every canonical
// shape (global, local, fitting, overlap, rotational, extended-gap) and
// every view (prefix, suffix, middle, reverse) implements: a lazy DAG over
// a (down × right × depth) grid.
//
// A Node is a grid coordinate, so it is cheap to copy and totally ordered
// without an auxiliary index. An Edge names its endpoints and a kind;
// its weight is computed on demand by EdgeWeight, never stored, because
// graphs are lazy — nothing is precomputed over the whole grid.
package graph
