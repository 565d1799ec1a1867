package sieve

import "math/bits"

// isqrt returns floor(sqrt(n)) using digit-by-digit integer arithmetic.
// Exact for every uint, including math.MaxUint.
func isqrt(n uint) uint {
	var r uint
	bit := uint(1) << (bits.UintSize - 2)
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= r+bit {
			n -= r + bit
			r = r>>1 + bit
		} else {
			r >>= 1
		}
		bit >>= 2
	}
	return r
}
