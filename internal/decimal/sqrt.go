package decimal

import (
	num "github.com/shabbyrobe/go-num"
)

// Sqrt returns floor(√n). Each level of recursion halves the bit length, so
// the depth is at most 64.
func Sqrt(n num.U128) num.U128 {
	if n.LessThan(num.U128From64(2)) {
		return n
	}
	s := Sqrt(n.Rsh(2)).Lsh(1)
	l := s.Inc()
	// s <= 2^64-2 here, so l*l cannot wrap
	if l.Mul(l).GreaterThan(n) {
		return s
	}
	return l
}

// SqrtUint64 returns floor(√(a·b)), the geometric mean used for initial
// liquidity shares.
func SqrtUint64(a, b uint64) uint64 {
	return Sqrt(num.U128From64(a).Mul(num.U128From64(b))).AsUint64()
}
