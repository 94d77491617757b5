package fraction

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Small is the set of integer types that always fit in a Fraction.
type Small interface {
	~int8 | ~int16 | ~uint8 | ~uint16
}

// FromSmall converts v exactly. The result is Zero or Normal.
func FromSmall[T Small](v T) Fraction {
	return New(int32(v), 1)
}

// FromSigned converts v, which may land on a sentinel: math.MaxInt32 is
// Infinity and math.MinInt32 is NegInfinity. Values outside the int32
// range cannot be classified and give NaN.
func FromSigned[T constraints.Signed](v T) Fraction {
	if int64(v) < math.MinInt32 || int64(v) > math.MaxInt32 {
		return NaN
	}
	return New(int32(v), 1)
}

// FromUnsigned converts v: math.MaxInt32 is Infinity and anything larger
// is NaN.
func FromUnsigned[T constraints.Unsigned](v T) Fraction {
	if uint64(v) > math.MaxInt32 {
		return NaN
	}
	return New(int32(v), 1)
}

// FromInt is FromSigned for int.
func FromInt(v int) Fraction {
	return FromSigned(v)
}

// ToFloat converts x to a floating point type. The special categories map
// to their floating point counterparts.
func ToFloat[T constraints.Float](x Fraction) T {
	switch x.cat {
	case CategoryInfinity:
		return T(math.Inf(1))
	case CategoryNegInfinity:
		return T(math.Inf(-1))
	case CategoryNaN:
		return T(math.NaN())
	case CategoryZero:
		return 0
	}
	return T(x.num) / T(x.Den())
}

func (x Fraction) Float64() float64 { return ToFloat[float64](x) }

func (x Fraction) Float32() float32 { return ToFloat[float32](x) }

// ToInt truncates x toward zero and converts the integer part to T.
// The error wraps ErrNaNConversion, ErrInfiniteConversion or ErrOutOfRange.
func ToInt[T constraints.Integer](x Fraction) (T, error) {
	if err := conversionErr(x); err != nil {
		return 0, &ConversionError{Value: x, Target: fmt.Sprintf("%T", T(0)), Err: err}
	}
	i := x.num / x.Den()
	v := T(i)
	if int64(v) != int64(i) || (v < 0) != (i < 0) {
		return 0, &ConversionError{Value: x, Target: fmt.Sprintf("%T", T(0)), Err: ErrOutOfRange}
	}
	return v, nil
}

// Int64 is ToInt for int64, which only fails for the non-finite values.
func (x Fraction) Int64() (int64, error) {
	return ToInt[int64](x)
}

// FromFloat64 returns the Fraction nearest to v. Magnitudes past the int32
// range saturate the same way arithmetic does: positive values become
// Infinity and negative ones Min. Binary fractions finer than 2^-63 are
// rounded to that precision first.
func FromFloat64(v float64) Fraction {
	switch {
	case math.IsNaN(v):
		return NaN
	case math.IsInf(v, 1):
		return Infinity
	case math.IsInf(v, -1):
		return NegInfinity
	case v == 0:
		return Zero
	}
	neg := v < 0
	v = math.Abs(v)
	if v >= 0x1p63 {
		return fromReduced(neg, limit, 1)
	}

	// v = m * 2^e with m an integer of at most 53 bits
	f, e := math.Frexp(v)
	m := uint64(f * 0x1p53)
	e -= 53
	tz := bits.TrailingZeros64(m)
	m >>= tz
	e += tz

	var num, den uint64
	switch {
	case e >= 0:
		num, den = m<<e, 1
	case e >= -63:
		num, den = m, 1<<-e
	default:
		s := uint(-63 - e)
		if s < 64 {
			num = (m + 1<<(s-1)) >> s
		}
		den = 1 << 63
	}
	g := gcd(num, den)
	num, den = shrink(num/g, den/g)
	return fromReduced(neg, num, den)
}

// FromRat returns the Fraction nearest to r. Exact when both terms of r fit
// in 64 bits, otherwise by way of r's nearest float64.
func FromRat(r *big.Rat) Fraction {
	num, den := r.Num(), r.Denom()
	if num.Sign() == 0 {
		return Zero
	}
	abs := new(big.Int).Abs(num)
	if !abs.IsUint64() || !den.IsUint64() {
		f, _ := r.Float64()
		return FromFloat64(f)
	}
	n, d := shrink(abs.Uint64(), den.Uint64())
	return fromReduced(num.Sign() < 0, n, d)
}

// Rat returns x as a big.Rat. It fails for NaN and the infinities.
func (x Fraction) Rat() (*big.Rat, error) {
	if err := conversionErr(x); err != nil {
		return nil, errors.Wrapf(err, "fraction: %s to big.Rat", x)
	}
	return big.NewRat(int64(x.num), int64(x.Den())), nil
}
