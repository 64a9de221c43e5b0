package weight

// Weight is the self-referential constraint every scoring value must
// satisfy: copy, move (both free with Go value semantics), a total order,
// and a tolerance-aware equality. W is always the implementing type itself
// (e.g. Int satisfies Weight[Int]), the same self-bounded pattern used by
// the standard library's cmp.Ordered but extended to non-numeric weights.
type Weight[W any] interface {
	// Add returns the sum of two weights.
	Add(other W) W
	// Sub returns the difference of two weights.
	Sub(other W) W
	// Less reports whether this weight orders strictly before other.
	Less(other W) bool
	// Equal reports exact equality.
	Equal(other W) bool
	// WithinTolerance reports whether this weight equals other within tol.
	// Integer weight types ignore tol and fall back to exact equality;
	// floating-point weight types use it to absorb rounding.
	WithinTolerance(other W, tol float64) bool
}

// Max returns the larger of a and b per Less.
func Max[W Weight[W]](a, b W) W {
	if a.Less(b) {
		return b
	}
	return a
}

// Min returns the smaller of a and b per Less.
func Min[W Weight[W]](a, b W) W {
	if b.Less(a) {
		return b
	}
	return a
}
