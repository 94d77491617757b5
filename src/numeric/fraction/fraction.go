// Package fraction implements a rational number whose numerator and
// denominator both fit in an int32, with floating point style special
// values: positive and negative infinity, zero, and NaN.
//
// Results that cannot be represented exactly are replaced by the nearest
// fraction that can, found by a continued fraction search. Nothing here
// returns an error or panics for arithmetic; division by zero and friends
// produce the special categories instead.
//
// Fraction has value semantics. Every value is kept in canonical form, so
// two values are equal under == exactly when they have the same numerator,
// denominator and category. The category only matters for math.MaxInt32/1:
// arithmetic that reaches it saturates to Infinity, while Min.Neg() keeps
// it Normal.
package fraction

import (
	"math"
)

// Fraction is an immutable rational number. The zero value is 0.
type Fraction struct {
	num int32
	// den is the denominator minus one, so that the zero value is 0/1.
	// NaN is the only value with a denominator of 0.
	den int32
	cat Category
}

var (
	Infinity    = Fraction{num: math.MaxInt32, den: 0, cat: CategoryInfinity}
	NegInfinity = Fraction{num: math.MinInt32, den: 0, cat: CategoryNegInfinity}
	NaN         = Fraction{num: 0, den: -1, cat: CategoryNaN}
	Zero        = Fraction{}
	One         = Fraction{num: 1, den: 0, cat: CategoryNormal}

	// Max and Min are the finite normal values of largest magnitude.
	// math.MaxInt32/1 is Infinity, so Max is one less than that, while
	// Min is -math.MaxInt32.
	Max = Fraction{num: math.MaxInt32 - 1, den: 0, cat: CategoryNormal}
	Min = Fraction{num: math.MinInt32 + 1, den: 0, cat: CategoryNormal}

	MinPositive = Fraction{num: 1, den: math.MaxInt32 - 1, cat: CategoryNormal}

	two = Fraction{num: 2, den: 0, cat: CategoryNormal}
)

// New returns num/den in canonical form. It never fails: a zero denominator
// gives Infinity, NegInfinity or NaN depending on the sign of num, and a
// ratio whose reduced terms exceed the int32 range is replaced with the
// nearest fraction that fits.
//
// New(math.MinInt32, 1) is NegInfinity and New(math.MaxInt32, 1) is
// Infinity; those pairs are the sentinels of the infinite categories.
func New(num, den int32) Fraction {
	if c := classify(num, den); c != CategoryNormal {
		return special(c)
	}
	neg := (num < 0) != (den < 0)
	n, d := absInt64(int64(num)), absInt64(int64(den))
	g := gcd(n, d)
	n, d = shrink(n/g, d/g)
	return fromReduced(neg, n, d)
}

// fromReduced builds a value from a reduced magnitude that is within limit.
func fromReduced(neg bool, n, d uint64) Fraction {
	num := int32(n)
	if neg {
		num = -num
	}
	return fromParts(num, int32(d))
}

// fromParts classifies an already reduced pair, so that a result landing on
// a sentinel becomes the matching special value.
func fromParts(num, den int32) Fraction {
	if c := classify(num, den); c != CategoryNormal {
		return special(c)
	}
	return Fraction{num: num, den: den - 1, cat: CategoryNormal}
}

// Num returns the numerator, which carries the sign.
func (x Fraction) Num() int32 { return x.num }

// Den returns the denominator: 1 for the infinities and zero, 0 for NaN,
// and positive otherwise.
func (x Fraction) Den() int32 { return x.den + 1 }

func (x Fraction) Category() Category { return x.cat }

func (x Fraction) IsPositive() bool {
	switch x.cat {
	case CategoryInfinity:
		return true
	case CategoryNormal:
		return x.num > 0
	}
	return false
}

func (x Fraction) IsNegative() bool {
	switch x.cat {
	case CategoryNegInfinity:
		return true
	case CategoryNormal:
		return x.num < 0
	}
	return false
}

func (x Fraction) IsZero() bool        { return x.cat == CategoryZero }
func (x Fraction) IsInfinity() bool    { return x.cat == CategoryInfinity }
func (x Fraction) IsNegInfinity() bool { return x.cat == CategoryNegInfinity }
func (x Fraction) IsNaN() bool         { return x.cat == CategoryNaN }
func (x Fraction) IsNormal() bool      { return x.cat == CategoryNormal }

// IsFinite reports whether x is Zero or Normal.
func (x Fraction) IsFinite() bool {
	return x.cat == CategoryZero || x.cat == CategoryNormal
}

// signum is -1, 0 or +1, and 0 for NaN.
func (x Fraction) signum() int32 {
	switch {
	case x.IsPositive():
		return 1
	case x.IsNegative():
		return -1
	}
	return 0
}

// Sign returns 1 or -1 as a Fraction for the non-zero numbers, Zero for
// zero and NaN for NaN.
func (x Fraction) Sign() Fraction {
	switch x.cat {
	case CategoryNaN:
		return NaN
	case CategoryZero:
		return Zero
	}
	return Fraction{num: x.signum(), den: 0, cat: CategoryNormal}
}

// Abs returns |x|. Both infinities map to Infinity. Min.Abs() is the
// Normal value math.MaxInt32/1, which differs from Infinity only in its
// category.
func (x Fraction) Abs() Fraction {
	switch x.cat {
	case CategoryInfinity, CategoryNegInfinity:
		return Infinity
	case CategoryNormal:
		if x.num < 0 {
			return Fraction{num: -x.num, den: x.den, cat: CategoryNormal}
		}
	}
	return x
}

// Neg returns -x, swapping the infinities. Negating a Normal value only
// flips the sign of its numerator, so -(-x) == x for every x.
func (x Fraction) Neg() Fraction {
	switch x.cat {
	case CategoryInfinity:
		return NegInfinity
	case CategoryNegInfinity:
		return Infinity
	case CategoryNormal:
		return Fraction{num: -x.num, den: x.den, cat: CategoryNormal}
	}
	return x
}

// Reciprocal returns 1/x. The reciprocal of Zero is Infinity and both
// infinities have Zero as their reciprocal. A Normal value swaps its terms
// and stays Normal, so MinPositive.Reciprocal() is math.MaxInt32/1 with
// CategoryNormal.
func (x Fraction) Reciprocal() Fraction {
	switch x.cat {
	case CategoryInfinity, CategoryNegInfinity:
		return Zero
	case CategoryZero:
		return Infinity
	case CategoryNormal:
		num := x.num
		if num < 0 {
			num = -num
		}
		return Fraction{num: x.Den() * x.signum(), den: num - 1, cat: CategoryNormal}
	}
	return NaN
}
