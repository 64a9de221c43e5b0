// Package seq defines the read-only, random-access sequence view that
// alignath aligns: an ordered, sized collection whose elements are
// borrowed, never copied into the graph or its walkers.
package seq
