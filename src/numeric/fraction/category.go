package fraction

import (
	"math"
	"strconv"
)

// Category is the special-value class of a Fraction.
type Category uint8

// The zero Category is CategoryZero, so the zero Fraction is 0.
const (
	CategoryZero Category = iota
	CategoryNormal
	CategoryInfinity
	CategoryNegInfinity
	CategoryNaN
)

func (c Category) String() string {
	switch c {
	case CategoryZero:
		return "zero"
	case CategoryNormal:
		return "normal"
	case CategoryInfinity:
		return "infinity"
	case CategoryNegInfinity:
		return "-infinity"
	case CategoryNaN:
		return "nan"
	default:
		return "category(" + strconv.Itoa(int(c)) + ")"
	}
}

// classify derives the category of a raw numerator/denominator pair.
// A denominator of 1 with a saturated numerator is an infinity.
func classify(num, den int32) Category {
	if den == 0 {
		switch {
		case num > 0:
			return CategoryInfinity
		case num < 0:
			return CategoryNegInfinity
		default:
			return CategoryNaN
		}
	}
	if num == 0 {
		return CategoryZero
	}
	if den == 1 {
		switch num {
		case math.MaxInt32:
			return CategoryInfinity
		case math.MinInt32:
			return CategoryNegInfinity
		}
	}
	return CategoryNormal
}

// special returns the canonical value of a non-normal category.
func special(c Category) Fraction {
	switch c {
	case CategoryZero:
		return Zero
	case CategoryInfinity:
		return Infinity
	case CategoryNegInfinity:
		return NegInfinity
	default:
		return NaN
	}
}
