// Package mathutil contains power-of-two helpers for binary fixed-point numbers.
package mathutil

import "math/big"

var big5 = big.NewInt(5)

// Pow2 returns 2^pow, or 0 if the result does not fit an int64.
func Pow2(pow int) int64 {
	if pow < 0 || pow > 62 {
		return 0
	}
	return 1 << uint(pow)
}

// FloorDivPow2 returns floor(v / 2^pow).
// An arithmetic shift rounds towards negative infinity, unlike the / operator.
func FloorDivPow2(v int64, pow int) int64 {
	if pow >= 63 {
		if v < 0 {
			return -1
		}
		return 0
	}
	return v >> uint(pow)
}

// CeilDivPow2 returns ceil(v / 2^pow).
func CeilDivPow2(v int64, pow int) int64 {
	return -FloorDivPow2(-v, pow)
}

// ScaledPow5 returns v * 5^pow as a big integer, so that
// v / 2^pow == ScaledPow5(v, pow) / 10^pow exactly.
func ScaledPow5(v int64, pow int) *big.Int {
	p := new(big.Int).Exp(big5, big.NewInt(int64(pow)), nil)
	return p.Mul(p, big.NewInt(v))
}
