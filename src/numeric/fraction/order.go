package fraction

// Cmp compares x and y, returning -1, 0 or +1. ok is false when either
// operand is NaN, which is unordered with everything including itself.
func (x Fraction) Cmp(y Fraction) (c int, ok bool) {
	switch {
	case x.cat == CategoryNaN || y.cat == CategoryNaN:
		return 0, false
	case x.cat == y.cat && (x.cat == CategoryInfinity || x.cat == CategoryNegInfinity):
		return 0, true
	case x.cat == CategoryInfinity, y.cat == CategoryNegInfinity:
		return 1, true
	case x.cat == CategoryNegInfinity, y.cat == CategoryInfinity:
		return -1, true
	}

	// denominators are positive, so a/b <=> c/d is a*d <=> c*b
	l := int64(x.num) * int64(y.Den())
	r := int64(y.num) * int64(x.Den())
	switch {
	case l < r:
		return -1, true
	case l > r:
		return 1, true
	}
	return 0, true
}

// Equal reports whether x and y are the same value. Unlike the ordering
// predicates, NaN is Equal to NaN.
func (x Fraction) Equal(y Fraction) bool {
	return x == y
}

func (x Fraction) Less(y Fraction) bool {
	c, ok := x.Cmp(y)
	return ok && c < 0
}

func (x Fraction) LessEq(y Fraction) bool {
	c, ok := x.Cmp(y)
	return ok && c <= 0
}

func (x Fraction) Greater(y Fraction) bool {
	c, ok := x.Cmp(y)
	return ok && c > 0
}

func (x Fraction) GreaterEq(y Fraction) bool {
	c, ok := x.Cmp(y)
	return ok && c >= 0
}
