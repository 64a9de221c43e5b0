// Package container supplies two storage strategies: a growable
// heap-backed container and a bounded stack-backed one with a capacity
// fixed at construction. The full-grid backtracker's ready queue and path
// container and the sliced backtracker's path arena go through a Factory,
// so those run over either strategy unchanged. The row-slot and
// resident-slot tables in package slot do not: they allocate plain
// slices.
//
// NewFactory validates its configuration eagerly and fails with
// ErrIncompleteFactory rather than letting a misconfigured factory
// surface a problem on first use.
package container
