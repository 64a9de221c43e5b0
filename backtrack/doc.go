// Package backtrack implements the full-grid dynamic-programming
// backtracker: a Kahn-style unvisited-parent-count walk over every node
// of the grid, generalized from a plain topological ordering to a
// maximum-weight-path computation with back-pointer reconstruction.
package backtrack
