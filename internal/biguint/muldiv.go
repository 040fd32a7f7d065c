package biguint

// MulDiv returns a*b/c without intermediate overflow: the operands are
// zero-extended to 512 bits, where a*b always fits, divided there and the
// quotient narrowed back. ErrOverflow means the quotient itself needs more
// than 256 bits.
func MulDiv(a, b, c Uint256, mode Rounding) (Uint256, error) {
	p, err := Widen(a).Mul(Widen(b))
	if err != nil {
		return Uint256{}, err
	}
	q, err := p.Div(Widen(c), mode)
	if err != nil {
		return Uint256{}, err
	}
	return Narrow(q)
}

// MulDivUint64 is MulDiv for native balances.
func MulDivUint64(a, b, c uint64, mode Rounding) (uint64, error) {
	q, err := MulDiv(Uint256From64(a), Uint256From64(b), Uint256From64(c), mode)
	if err != nil {
		return 0, err
	}
	return q.Uint64()
}
