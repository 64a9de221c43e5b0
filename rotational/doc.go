// Package rotational provides the two cooperating pieces AlignRotational uses
// to reduce "align R against any cyclic rotation of D" to an ordinary
// fitting alignment: a doubled-sequence view (Repeat) and a weight type
// (GatedWeight) whose total order rejects any path that consumes more
// of D than a single rotation's worth.
package rotational
