// Package intmath provides greatest common divisor and least common multiple
// helpers for integers.
//
// The conventions here are GCD(0, 0) == 0 and LCM(x, 0) == LCM(0, x) == 0.
// They differ from the divisor used internally by package frac, which treats
// gcd(0, 0) as 1.
package intmath

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Errors returned by CheckedGCD and CheckedLCM. Both match ErrInvalid under
// errors.Is.
var (
	ErrInvalid    = errors.New("invalid arguments")
	ErrArity      = fmt.Errorf("%w: exactly 2 arguments are required", ErrInvalid)
	ErrNotInteger = fmt.Errorf("%w: argument is not an integer", ErrInvalid)
)

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, n) is |n| and GCD(0, 0) is 0.
//
// For signed types the magnitude of the minimum value is not representable,
// so GCD of such a value wraps like any other overflowing integer operation.
func GCD[T constraints.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 if either is 0.
func LCM[T constraints.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// CheckedGCD is GCD for dynamically typed arguments. It requires exactly two
// arguments that hold integer values (see CheckedLCM for what counts).
func CheckedGCD(args ...any) (int64, error) {
	a, b, err := checkArgs(args)
	if err != nil {
		return 0, err
	}
	return GCD(a, b), nil
}

// CheckedLCM is LCM for dynamically typed arguments. It requires exactly two
// arguments, each one of the Go integer kinds or a float holding a whole
// number, and all representable as int64. Anything else, including numeric
// strings, is rejected with ErrNotInteger.
func CheckedLCM(args ...any) (int64, error) {
	a, b, err := checkArgs(args)
	if err != nil {
		return 0, err
	}
	return LCM(a, b), nil
}

func checkArgs(args []any) (a, b int64, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w (got %d)", ErrArity, len(args))
	}
	if a, err = toInt64(args[0]); err != nil {
		return 0, 0, err
	}
	if b, err = toInt64(args[1]); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func toInt64(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u), nil
		}
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && f >= -0x1p63 && f < 0x1p63 {
			return int64(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %#v", ErrNotInteger, v)
}

func abs[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
