package fraction

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	strInf    = "inf"
	strNegInf = "-inf"
	strNaN    = "nan"
)

// String renders x as "inf", "-inf", "nan", "0", an integer when the
// denominator is 1, or "n/d".
func (x Fraction) String() string {
	return string(x.append(make([]byte, 0, 24)))
}

func (x Fraction) append(b []byte) []byte {
	switch x.cat {
	case CategoryInfinity:
		return append(b, strInf...)
	case CategoryNegInfinity:
		return append(b, strNegInf...)
	case CategoryNaN:
		return append(b, strNaN...)
	case CategoryZero:
		return append(b, '0')
	}
	b = strconv.AppendInt(b, int64(x.num), 10)
	if x.den != 0 {
		b = append(b, '/')
		b = strconv.AppendInt(b, int64(x.Den()), 10)
	}
	return b
}

// Parse reads the output of String. It also accepts "+inf", unreduced
// pairs such as "4/6", and a zero denominator, which gives the same
// special value as New.
func Parse(s string) (Fraction, error) {
	switch s {
	case strInf, "+inf":
		return Infinity, nil
	case strNegInf:
		return NegInfinity, nil
	case strNaN:
		return NaN, nil
	}
	numStr, denStr, found := strings.Cut(s, "/")
	num, err := strconv.ParseInt(numStr, 10, 32)
	if err != nil {
		return NaN, errors.Wrapf(err, "fraction: parsing numerator of %q", s)
	}
	den := int64(1)
	if found {
		den, err = strconv.ParseInt(denStr, 10, 32)
		if err != nil {
			return NaN, errors.Wrapf(err, "fraction: parsing denominator of %q", s)
		}
	}
	return New(int32(num), int32(den)), nil
}

func (x Fraction) MarshalText() ([]byte, error) {
	return x.append(nil), nil
}

func (x *Fraction) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a JSON string of its textual form, since the
// special values have no JSON number representation.
func (x Fraction) MarshalJSON() ([]byte, error) {
	b := append(make([]byte, 0, 26), '"')
	b = x.append(b)
	return append(b, '"'), nil
}

func (x *Fraction) UnmarshalJSON(b []byte) error {
	// note: >=3 because empty string is invalid
	if len(b) >= 3 && b[0] == '"' && b[len(b)-1] == '"' {
		return x.UnmarshalText(b[1 : len(b)-1])
	}
	return errors.Errorf("fraction: invalid JSON value: %s", b)
}
