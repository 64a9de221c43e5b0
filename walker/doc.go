// Package walker implements the streaming forward walker and the
// bidirectional walker built from a pair of forward walkers, one of
// them over a reversed view. Both stream a graph row by row in constant
// memory, carrying an accumulated weight and a best-predecessor edge
// per node instead of a visited set.
package walker
