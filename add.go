package frac

import "math/big"

// TryAdd adds x and y and returns the result.
// TryAdd returns 0 and a non-nil error if the result would overflow.
func (x F) TryAdd(y F) (F, error) {
	mx, nx := x.Num(), x.Den()
	my, ny := y.Num(), y.Den()

	// Scale both numerators to the least common denominator if the terms
	// fit in int64; Try then reduces the sum.
	if m, ok := lcm(nx, ny); ok {
		a, okA := mulInt64(mx, m/nx)
		b, okB := mulInt64(my, m/ny)
		if okA && okB {
			if sum, ok := addInt64(a, b); ok {
				return Try(sum, m)
			}
		}
	}

	// An intermediate term overflowed, but the reduced sum may still fit,
	// so redo the sum exactly and let FromBigRat decide.
	return FromBigRat(new(big.Rat).Add(x.BigRat(), y.BigRat()))
}

// Add adds x and y and returns the result.
// Add panics if the result would overflow.
func (x F) Add(y F) F {
	z, err := x.TryAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// AddInt adds the integer n to x.
func (x F) AddInt(n int64) (F, error) {
	return x.TryAdd(FromInt(n))
}

// AddFloat converts v with FromFloat64 and adds the result to x.
func (x F) AddFloat(v float64) (F, error) {
	y, err := FromFloat64(v)
	if err != nil {
		return F{}, err
	}
	return x.TryAdd(y)
}

// AddString converts s with Parse and adds the result to x.
func (x F) AddString(s string) (F, error) {
	y, err := Parse(s)
	if err != nil {
		return F{}, err
	}
	return x.TryAdd(y)
}
