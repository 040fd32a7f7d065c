package decimal

import (
	"github.com/pkg/errors"
	num "github.com/shabbyrobe/go-num"
)

// Series bounds a Taylor series evaluation: terms are summed while they
// are above Epsilon, and more than MaxTerms terms is ErrNotConverged.
// Pow handles |exp·ln(base)| up to about 47.3 above zero; any negative
// value works, far ones give zero.
type Series struct {
	Epsilon  Decimal
	MaxTerms int
}

// DefaultSeries stops at terms of 10^-13, which keeps Ln and Pow within
// 10^-12 of the exact value on the domain used by pool math.
var DefaultSeries = Series{
	Epsilon:  NewRaw(100000),
	MaxTerms: 4096,
}

// Ln returns the natural logarithm of x for 0 < x < 2.
func Ln(x Decimal) (Signed, error) { return DefaultSeries.Ln(x) }

// Pow returns base^exp for 0 < base < 2.
func Pow(base, exp Decimal) (Decimal, error) { return DefaultSeries.Pow(base, exp) }

func inDomain(x Decimal) bool {
	return !x.IsZero() && x.LT(two)
}

// Ln evaluates ln(1±a) = Σ (-1)^(n+1) (±a)^n / n with a = |x-1|. Each term
// is derived from the previous one as term·a·n/(n+1).
func (s Series) Ln(x Decimal) (Signed, error) {
	if !inDomain(x) {
		return Signed{}, ErrInvalidBaseRange
	}
	one := One()
	neg := x.LT(one)
	var a Decimal
	if neg {
		a, _ = one.Sub(x)
	} else {
		a, _ = x.Sub(one)
	}

	var res Signed
	term := a
	for n := uint64(1); term.GT(s.Epsilon); n++ {
		if n > uint64(s.MaxTerms) {
			return Signed{}, ErrNotConverged
		}
		// below one every term is negative, above one they alternate
		var err error
		res, err = res.Add(NewSigned(term, neg || n%2 == 0))
		if err != nil {
			return Signed{}, err
		}
		p, err := term.Mul(a)
		if err != nil {
			return Signed{}, err
		}
		raw, err := mulDiv(p.raw, num.U128From64(n), num.U128From64(n+1))
		if err != nil {
			return Signed{}, err
		}
		term = Decimal{raw: raw}
	}
	return res, nil
}

// Pow evaluates e^|k| = 1 + Σ |k|^n/n! with k = exp·ln(base), deriving
// each term as term·|k|/(n+1). For base < 1 k is negative and the result is
// 1/e^|k|, so the series never alternates. Results below 10^-18 truncate to
// zero (k below about -41.4); k above about 47.3 is ErrOverflow.
func (s Series) Pow(base, exp Decimal) (Decimal, error) {
	if !inDomain(base) {
		return Decimal{}, ErrInvalidBaseRange
	}
	lnBase, err := s.Ln(base)
	if err != nil {
		return Decimal{}, err
	}
	k, err := lnBase.MulDecimal(exp)
	if err != nil {
		return Decimal{}, err
	}

	res, err := s.exp(k.Magnitude())
	if k.IsNeg() {
		if errors.Is(err, ErrOverflow) {
			return Zero(), nil
		}
		if err != nil {
			return Decimal{}, err
		}
		return One().Quo(res)
	}
	return res, err
}

func (s Series) exp(k Decimal) (Decimal, error) {
	res := One()
	term := k
	for n := uint64(1); term.GT(s.Epsilon); n++ {
		if n > uint64(s.MaxTerms) {
			return Decimal{}, ErrNotConverged
		}
		var err error
		if res, err = res.Add(term); err != nil {
			return Decimal{}, err
		}
		p, err := term.Mul(k)
		if err != nil {
			return Decimal{}, err
		}
		if term, err = p.DivUint64(n + 1); err != nil {
			return Decimal{}, err
		}
	}
	return res, nil
}
