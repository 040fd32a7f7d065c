package biguint

import "math/bits"

// Ordering is the result of comparing two values.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Rounding selects how Div resolves a non-zero remainder.
type Rounding int

const (
	// RoundDown truncates the quotient.
	RoundDown Rounding = iota
	// RoundHalfUp adds one to the quotient when the remainder is above
	// divisor>>1, or equal to it and the divisor is even.
	RoundHalfUp
)

// Cmp orders a and b. It is a strict total order over values of one width.
func Cmp[W Width](a, b Uint[W]) Ordering {
	for i := words[W]() - 1; i >= 0; i-- {
		if a.n[i] > b.n[i] {
			return Greater
		}
		if a.n[i] < b.n[i] {
			return Less
		}
	}
	return Equal
}

func (u Uint[W]) Cmp(v Uint[W]) Ordering { return Cmp(u, v) }
func (u Uint[W]) Equal(v Uint[W]) bool   { return u == v }
func (u Uint[W]) GT(v Uint[W]) bool      { return Cmp(u, v) == Greater }
func (u Uint[W]) GTE(v Uint[W]) bool     { return Cmp(u, v) != Less }
func (u Uint[W]) LT(v Uint[W]) bool      { return Cmp(u, v) == Less }
func (u Uint[W]) LTE(v Uint[W]) bool     { return Cmp(u, v) != Greater }

// Add returns u+v, or ErrOverflow if a carry leaves the top limb.
func (u Uint[W]) Add(v Uint[W]) (Uint[W], error) {
	var z Uint[W]
	var carry uint64
	for i := 0; i < words[W](); i++ {
		z.n[i], carry = bits.Add64(u.n[i], v.n[i], carry)
	}
	if carry != 0 {
		return Uint[W]{}, ErrOverflow
	}
	return z, nil
}

// Sub returns u-v, or ErrOverflow if v > u.
func (u Uint[W]) Sub(v Uint[W]) (Uint[W], error) {
	if u.LT(v) {
		return Uint[W]{}, ErrOverflow
	}
	var z Uint[W]
	var borrow uint64
	for i := 0; i < words[W](); i++ {
		z.n[i], borrow = bits.Sub64(u.n[i], v.n[i], borrow)
	}
	return z, nil
}

// Mul returns u*v using schoolbook multiplication over 64-bit limbs. It does
// not widen: any product bit above the top limb is ErrOverflow. Use Widen
// first when headroom is needed.
func (u Uint[W]) Mul(v Uint[W]) (Uint[W], error) {
	w := words[W]()
	var acc [2 * maxWords]uint64
	for i := 0; i < w; i++ {
		if u.n[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < w; j++ {
			hi, lo := bits.Mul64(u.n[i], v.n[j])
			var c uint64
			lo, c = bits.Add64(lo, acc[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			acc[i+j] = lo
			carry = hi
		}
		acc[i+w] = carry
	}
	for k := w; k < 2*w; k++ {
		if acc[k] != 0 {
			return Uint[W]{}, ErrOverflow
		}
	}
	var z Uint[W]
	copy(z.n[:w], acc[:w])
	return z, nil
}

// BitLen returns the 1-based position of the highest set bit.
func (u Uint[W]) BitLen() (int, error) {
	for i := words[W]() - 1; i >= 0; i-- {
		if u.n[i] != 0 {
			return i*limbBits + bits.Len64(u.n[i]), nil
		}
	}
	return 0, ErrZeroValue
}

// Lsh returns u<<n, dropping bits shifted past the top. n >= width gives 0.
func (u Uint[W]) Lsh(n uint) Uint[W] {
	if n >= uint(Bits[W]()) {
		return Uint[W]{}
	}
	z := u.lshLimbs(int(n / limbBits))
	// n%64 is always a valid sub-limb amount.
	z, _ = z.lshBits(n % limbBits)
	return z
}

// Rsh returns u>>n. n >= width gives 0.
func (u Uint[W]) Rsh(n uint) Uint[W] {
	if n >= uint(Bits[W]()) {
		return Uint[W]{}
	}
	z := u.rshLimbs(int(n / limbBits))
	z, _ = z.rshBits(n % limbBits)
	return z
}

func (u Uint[W]) lshLimbs(k int) Uint[W] {
	var z Uint[W]
	for i := words[W]() - 1; i >= k; i-- {
		z.n[i] = u.n[i-k]
	}
	return z
}

func (u Uint[W]) rshLimbs(k int) Uint[W] {
	var z Uint[W]
	w := words[W]()
	for i := 0; i+k < w; i++ {
		z.n[i] = u.n[i+k]
	}
	return z
}

func (u Uint[W]) lshBits(s uint) (Uint[W], error) {
	if s >= limbBits {
		return Uint[W]{}, ErrShiftAmountInvalid
	}
	if s == 0 {
		return u, nil
	}
	var z Uint[W]
	for i := words[W]() - 1; i > 0; i-- {
		z.n[i] = u.n[i]<<s | u.n[i-1]>>(limbBits-s)
	}
	z.n[0] = u.n[0] << s
	return z, nil
}

func (u Uint[W]) rshBits(s uint) (Uint[W], error) {
	if s >= limbBits {
		return Uint[W]{}, ErrShiftAmountInvalid
	}
	if s == 0 {
		return u, nil
	}
	var z Uint[W]
	w := words[W]()
	for i := 0; i < w-1; i++ {
		z.n[i] = u.n[i]>>s | u.n[i+1]<<(limbBits-s)
	}
	z.n[w-1] = u.n[w-1] >> s
	return z, nil
}

func (u Uint[W]) setBit(i int) Uint[W] {
	u.n[i/limbBits] |= 1 << uint(i%limbBits)
	return u
}

// QuoRem returns the truncated quotient and the remainder of u/d.
//
// Each step aligns the top bit of d with the top bit of the remainder,
// backs off one position if the aligned divisor is larger, subtracts it and
// records the shift as a quotient bit. The remainder loses at least its top
// bit per step, so the loop runs at most Bits[W]() times.
func (u Uint[W]) QuoRem(d Uint[W]) (q, r Uint[W], err error) {
	dLen, err := d.BitLen()
	if err != nil {
		return q, r, ErrZeroDivisor
	}
	r = u
	for r.GTE(d) {
		rLen, _ := r.BitLen()
		shift := rLen - dLen
		s := d.Lsh(uint(shift))
		if s.GT(r) {
			shift--
			s = d.Lsh(uint(shift))
		}
		r, _ = r.Sub(s)
		q = q.setBit(shift)
	}
	return q, r, nil
}

// Div returns u/d rounded according to mode.
func (u Uint[W]) Div(d Uint[W], mode Rounding) (Uint[W], error) {
	q, _, err := u.DivRem(d, mode)
	return q, err
}

// DivRem returns u/d rounded according to mode together with the remainder
// of the truncated division. Both come from a single long division.
func (u Uint[W]) DivRem(d Uint[W], mode Rounding) (q, r Uint[W], err error) {
	q, r, err = u.QuoRem(d)
	if err != nil {
		return Uint[W]{}, Uint[W]{}, err
	}
	if mode == RoundHalfUp && roundsUp(r, d) {
		q, err = q.Add(FromUint64[W](1))
	}
	return q, r, err
}

func roundsUp[W Width](r, d Uint[W]) bool {
	switch Cmp(r, d.Rsh(1)) {
	case Greater:
		return true
	case Equal:
		return d.n[0]&1 == 0
	}
	return false
}
