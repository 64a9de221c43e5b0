// Package weight defines the scalar contract that every alignment score
// must satisfy, plus the concrete weight types used throughout alignath.
//
// A Weight is anything that supports addition, subtraction, a total order,
// and a tolerance-aware equality (so floating-point scores can absorb
// rounding while integer scores stay exact). Non-numeric weights are
// permitted too, provided they satisfy the same contract: see the
// consumption-gated weight in the rotational package, whose ordering is a
// lexicographic-but-asymmetric predicate rather than a number comparison.
package weight
