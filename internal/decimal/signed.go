package decimal

// Signed is a Decimal magnitude with an explicit sign. Series evaluation
// accumulates into a Signed so intermediate sums may go below zero.
type Signed struct {
	mag Decimal
	neg bool
}

// NewSigned returns mag with the given sign. Zero is never negative.
func NewSigned(mag Decimal, neg bool) Signed {
	return Signed{mag: mag, neg: neg && !mag.IsZero()}
}

func (s Signed) Magnitude() Decimal { return s.mag }
func (s Signed) IsNeg() bool        { return s.neg }
func (s Signed) Negate() Signed     { return NewSigned(s.mag, !s.neg) }

func (s Signed) Add(o Signed) (Signed, error) {
	if s.neg == o.neg {
		mag, err := s.mag.Add(o.mag)
		if err != nil {
			return Signed{}, err
		}
		return NewSigned(mag, s.neg), nil
	}
	if s.mag.LT(o.mag) {
		mag, _ := o.mag.Sub(s.mag)
		return NewSigned(mag, o.neg), nil
	}
	mag, _ := s.mag.Sub(o.mag)
	return NewSigned(mag, s.neg), nil
}

func (s Signed) Sub(o Signed) (Signed, error) {
	return s.Add(o.Negate())
}

func (s Signed) MulDecimal(d Decimal) (Signed, error) {
	mag, err := s.mag.Mul(d)
	if err != nil {
		return Signed{}, err
	}
	return NewSigned(mag, s.neg), nil
}

// Decimal returns the value as an unsigned Decimal, failing for negative values.
func (s Signed) Decimal() (Decimal, error) {
	if s.neg {
		return Decimal{}, ErrNegative
	}
	return s.mag, nil
}

func (s Signed) String() string {
	if s.neg {
		return "-" + s.mag.String()
	}
	return s.mag.String()
}

func (s Signed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
