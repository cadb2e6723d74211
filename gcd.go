package frac

import "math"

// gcd returns the greatest common divisor of m and n.
// Unlike intmath.GCD, gcd(0, 0) is 1 here so that normalization can always
// divide by the result.
func gcd(m, n uint64) uint64 {
	// Euclid's algorithm; the operands are already magnitudes
	for n != 0 {
		m, n = n, m%n
	}
	if m == 0 {
		return 1
	}
	return m
}

// lcm returns the least common multiple of two positive denominators.
// The boolean result is false if the multiple does not fit in int64.
func lcm(m, n int64) (int64, bool) {
	q := m / int64(gcd(uint64(m), uint64(n)))
	return mulInt64(q, n)
}

// mulInt64 returns x*y and whether the product fit in int64.
func mulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	z := x * y
	if z/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	return z, true
}

// addInt64 returns x+y and whether the sum fit in int64.
func addInt64(x, y int64) (int64, bool) {
	z := x + y
	if (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z >= 0) {
		return 0, false
	}
	return z, true
}
