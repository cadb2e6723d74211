// Package frac provides exact fractions with 64-bit numerator and denominator.
// See the F type and the Try function for details.
package frac

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// Error kinds. Every error returned by this package matches at least one of
// them under errors.Is, except for the overflow errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrParse           = errors.New("parse error")
)

// Common errors returned by functions in this package.
var (
	ErrDenZero     = fmt.Errorf("%w: denominator is zero", ErrInvalidArgument)
	ErrNotFinite   = fmt.Errorf("%w: value is not finite", ErrInvalidArgument)
	ErrFmtInvalid  = fmt.Errorf("%w: fraction must have the form n/d", ErrParse)
	ErrNumOverflow = errors.New("numerator overflow")
	ErrDenOverflow = errors.New("denominator overflow")
)

// F is a fraction with 64-bit numerator and denominator, always kept in
// lowest terms with the sign carried by the numerator.
//
// Internally, the denominator is biased by 1, which means the zero value is
// equivalent to 0/1 and thus valid and equal to 0.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type F
//   - returned by Try, New, FromInt, Parse, FromFloat64 or FromBigRat
//   - returned by addition of valid values
//   - copied from a valid value
//
// F has proper value semantics and its values can be freely copied and
// shared between goroutines. Two valid values of F can be compared using the
// == and != operators.
type F struct {
	m int64
	n int64
}

// Try creates a new fraction with the given numerator and denominator.
// A negative denominator moves its sign to the numerator, and the result is
// reduced to lowest terms.
// Try returns ErrDenZero if the denominator is zero.
func Try(num, den int64) (F, error) {
	if den == 0 {
		return F{}, ErrDenZero
	}
	return normalize((num < 0) != (den < 0), abs64(num), abs64(den))
}

// New is like Try but panics if the fraction cannot be created.
func New(num, den int64) F {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// FromInt returns the fraction n/1.
func FromInt(n int64) F {
	return F{n, 0}
}

// Parse parses a string representation of a fraction.
// The string must be in the form "m/n", where m and n are base 10 integers
// that may be surrounded by whitespace and may carry a sign. Neither m nor n
// may overflow int64, and n must not be zero.
// It is not necessary for m/n to be in lowest terms, but the result will be.
func Parse(s string) (F, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return F{}, ErrFmtInvalid
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return F{}, fmt.Errorf("%w: parsing numerator: %w", ErrParse, err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return F{}, fmt.Errorf("%w: parsing denominator: %w", ErrParse, err)
	}
	return Try(num, den)
}

// FromBigRat converts a big.Rat to F, if it is possible to do so.
func FromBigRat(r *big.Rat) (F, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() {
		return F{}, ErrNumOverflow
	} else if !den.IsInt64() {
		return F{}, ErrDenOverflow
	}
	return Try(num.Int64(), den.Int64())
}

// Num returns the numerator of x.
func (x F) Num() int64 {
	return x.m
}

// Den returns the denominator of x. It is always positive.
func (x F) Den() int64 {
	return x.n + 1
}

// IsValid returns true if x is a valid fraction.
// Invalid values do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x F) IsValid() bool {
	return x.n >= 0 && x.n != math.MaxInt64 && gcd(abs64(x.m), uint64(x.Den())) == 1
}

// IsZero returns true if x is equal to 0.
func (x F) IsZero() bool {
	return x.m == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x F) Sign() int {
	if x.m == 0 {
		return 0
	}
	if x.m < 0 {
		return -1
	}
	return 1
}

// IsImproper reports whether |x.Num()| >= x.Den().
func (x F) IsImproper() bool {
	return abs64(x.m) >= uint64(x.Den())
}

// IsProper reports whether x is not improper, i.e. -1 < x < 1.
func (x F) IsProper() bool {
	return !x.IsImproper()
}

// IsApparent reports whether x represents a whole number.
func (x F) IsApparent() bool {
	return x.m%x.Den() == 0
}

// IsUnit reports whether the numerator of x is 1 or -1.
func (x F) IsUnit() bool {
	return abs64(x.m) == 1
}

// String returns a string representation of x, as m/n.
func (x F) String() string {
	return fmt.Sprintf("%d/%d", x.Num(), x.Den())
}

// MarshalText implements encoding.TextMarshaler using the m/n form.
func (x F) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts whatever
// Parse accepts and leaves x unchanged on error.
func (x *F) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation.
func (x F) Float64() (v float64, exact bool) {
	m, n := x.Num(), x.Den()
	if m == 0 {
		return 0, true
	}

	// integers are exact as long as they fit in the mantissa
	prec := bits.Len64(abs64(m))
	if n == 1 {
		return float64(m), prec <= 53
	}

	// non-integers are exact as long as the numerator fits in the mantissa
	// and the denominator is a power of two
	nIsPow2 := bits.OnesCount64(uint64(n)) == 1
	return float64(m) / float64(n), prec <= 53 && nIsPow2
}

// BigRat converts x to a new big.Rat.
func (x F) BigRat() *big.Rat {
	return big.NewRat(x.Num(), x.Den())
}

// normalize builds a fraction from its sign and the magnitudes of its
// numerator and denominator. n must not be zero.
func normalize(neg bool, m, n uint64) (F, error) {
	d := gcd(m, n)
	m, n = m/d, n/d
	if n > math.MaxInt64 {
		return F{}, ErrDenOverflow
	}
	if m == 0 {
		return F{}, nil
	}
	if !neg {
		if m > math.MaxInt64 {
			return F{}, ErrNumOverflow
		}
		return F{int64(m), int64(n) - 1}, nil
	}
	// -2^63 is the one magnitude above MaxInt64 that is still representable
	if m > 1<<63 {
		return F{}, ErrNumOverflow
	}
	return F{int64(-m), int64(n) - 1}, nil
}

// abs64 returns the magnitude of x. It is exact even for math.MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
