package fraction

import (
	"errors"
	"fmt"
)

// Conversion failures. Narrowing conversions fail with exactly one of these.
var (
	ErrOutOfRange         = errors.New("fraction: value out of range")
	ErrNaNConversion      = errors.New("fraction: cannot convert NaN")
	ErrInfiniteConversion = errors.New("fraction: cannot convert an infinite value")
)

// ConversionError records a failed narrowing conversion. Err is one of the
// conversion sentinels above.
type ConversionError struct {
	Value  Fraction
	Target string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: %s to %s", e.Err, e.Value, e.Target)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// conversionErr maps a non-finite value to its error, nil otherwise.
func conversionErr(x Fraction) error {
	switch x.cat {
	case CategoryNaN:
		return ErrNaNConversion
	case CategoryInfinity, CategoryNegInfinity:
		return ErrInfiniteConversion
	}
	return nil
}
