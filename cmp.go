package frac

import "math/bits"

// Equal reports whether x and y are the same fraction. Since both are kept
// in lowest terms, this is the same as x == y.
func (x F) Equal(y F) bool {
	return x.m == y.m && x.n == y.n
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x F) Cmp(y F) int {
	if x == y {
		return 0
	}
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}

	// Same nonzero sign: compare |mx|*ny with |my|*nx using 128-bit
	// products, then flip the result for negative values.
	lh, ll := bits.Mul64(abs64(x.m), uint64(y.Den()))
	rh, rl := bits.Mul64(abs64(y.m), uint64(x.Den()))
	c := 0
	switch {
	case lh < rh || (lh == rh && ll < rl):
		c = -1
	case lh > rh || (lh == rh && ll > rl):
		c = 1
	}
	return c * sx
}

// Compare orders two possibly absent fractions. A nil fraction is less than
// any other fraction and equal to another nil. Compare can be used directly
// with slices.SortFunc.
func Compare(a, b *F) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Cmp(*b)
}

// Less reports whether x < y.
func (x F) Less(y F) bool { return x.Cmp(y) < 0 }

// Greater reports whether x > y.
func (x F) Greater(y F) bool { return x.Cmp(y) > 0 }

// LessEq reports whether x <= y.
func (x F) LessEq(y F) bool { return x.Cmp(y) <= 0 }

// GreaterEq reports whether x >= y.
func (x F) GreaterEq(y F) bool { return x.Cmp(y) >= 0 }
