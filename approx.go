package frac

import "math"

// Bounds of the search performed by FromFloat64.
const (
	MaxApproxDen  = 1_000_000
	ApproxEpsilon = 1e-10
)

// FromFloat64 returns a simple fraction close to v.
//
// The denominators 1 through MaxApproxDen are tried in order, keeping the
// candidate round(|v|*d)/d whose error is strictly smallest so far, and the
// scan stops as soon as that error drops below ApproxEpsilon. The result is
// the best fraction found by this greedy scan, which is not always the best
// approximation overall for irrational inputs.
//
// FromFloat64 returns ErrNotFinite if v is NaN or infinite, and
// ErrNumOverflow if |v| is too large for an int64 numerator.
func FromFloat64(v float64) (F, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return F{}, ErrNotFinite
	}
	neg := math.Signbit(v)
	x := math.Abs(v)
	if x >= 0x1p63 {
		return F{}, ErrNumOverflow
	}

	bestNum, bestDen := math.Round(x), float64(1)
	bestErr := math.Abs(x - bestNum)
	for d := int64(1); d <= MaxApproxDen && bestErr >= ApproxEpsilon; d++ {
		fd := float64(d)
		xd := x * fd
		if xd >= 0x1p63 {
			// no larger denominator can have a representable numerator
			break
		}
		n := math.Round(xd)
		if err := math.Abs(x - n/fd); err < bestErr {
			bestNum, bestDen, bestErr = n, fd, err
		}
	}
	return normalize(neg, uint64(bestNum), uint64(bestDen))
}
