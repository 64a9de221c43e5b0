// Package score defines the scorer contract: a pure function from an
// optional down-side element and an optional right-side element to a
// weight. Both absent means a freeride; one absent means a gap.
package score
