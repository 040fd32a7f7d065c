package decimal

import (
	"strings"

	"github.com/pkg/errors"
	num "github.com/shabbyrobe/go-num"

	"gitlab.com/zlyzol/settlemath/internal/biguint"
)

const (
	// Decimals is the number of fractional digits.
	Decimals = 18
	// Scale is 10^Decimals, the raw value of 1.
	Scale uint64 = 1_000_000_000_000_000_000
)

var (
	scale = num.U128From64(Scale)
	two   = Decimal{raw: num.U128From64(2 * Scale)}
	ten   = num.U128From64(10)
)

// Decimal is an unsigned fixed-point number stored as raw/10^18 in 128 bits.
type Decimal struct {
	raw num.U128
}

func New(raw num.U128) Decimal  { return Decimal{raw: raw} }
func NewRaw(raw uint64) Decimal { return Decimal{raw: num.U128From64(raw)} }
func Zero() Decimal             { return Decimal{} }
func One() Decimal              { return Decimal{raw: scale} }

// FromUint64 returns v as a Decimal. Every uint64 fits.
func FromUint64(v uint64) Decimal {
	return Decimal{raw: num.U128From64(v).Mul(scale)}
}

// FromRatio returns n/d.
func FromRatio(n, d num.U128) (Decimal, error) {
	if d.IsZero() {
		return Decimal{}, ErrZeroDenominator
	}
	raw, err := mulDiv(n, scale, d)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{raw: raw}, nil
}

func FromRatioU64(n, d uint64) (Decimal, error) {
	return FromRatio(num.U128From64(n), num.U128From64(d))
}

// FromString parses "123", "123.45" or ".5". At most Decimals fractional
// digits are accepted.
func FromString(s string) (Decimal, error) {
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Decimal{}, errors.Wrapf(ErrInvalidString, "%q", s)
	}
	if len(fracPart) > Decimals {
		return Decimal{}, errors.Wrapf(ErrInvalidString, "%q has more than %d fractional digits", s, Decimals)
	}
	digits := intPart + fracPart + strings.Repeat("0", Decimals-len(fracPart))
	limit := num.MaxU128.Quo(ten)
	var raw num.U128
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Decimal{}, errors.Wrapf(ErrInvalidString, "%q", s)
		}
		if raw.GreaterThan(limit) {
			return Decimal{}, ErrOverflow
		}
		raw = raw.Mul(ten)
		next := raw.Add(num.U128From8(c - '0'))
		if next.LessThan(raw) {
			return Decimal{}, ErrOverflow
		}
		raw = next
	}
	return Decimal{raw: raw}, nil
}

// MustFromString is FromString for literals known to be valid.
func MustFromString(s string) Decimal {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Decimal) Raw() num.U128 { return d.raw }
func (d Decimal) IsZero() bool  { return d.raw.IsZero() }

func (d Decimal) Cmp(o Decimal) int    { return d.raw.Cmp(o.raw) }
func (d Decimal) Equal(o Decimal) bool { return d.raw.Equal(o.raw) }
func (d Decimal) GT(o Decimal) bool    { return d.raw.GreaterThan(o.raw) }
func (d Decimal) LT(o Decimal) bool    { return d.raw.LessThan(o.raw) }

func (d Decimal) Add(o Decimal) (Decimal, error) {
	sum := d.raw.Add(o.raw)
	if sum.LessThan(d.raw) {
		return Decimal{}, ErrOverflow
	}
	return Decimal{raw: sum}, nil
}

func (d Decimal) Sub(o Decimal) (Decimal, error) {
	if d.raw.LessThan(o.raw) {
		return Decimal{}, ErrOverflow
	}
	return Decimal{raw: d.raw.Sub(o.raw)}, nil
}

// Mul returns d*o truncated to 18 digits. The raw product goes through the
// 256-bit MulDiv, so only the final result has to fit.
func (d Decimal) Mul(o Decimal) (Decimal, error) {
	raw, err := mulDiv(d.raw, o.raw, scale)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{raw: raw}, nil
}

// MulUint64 returns the integer part of d*v.
func (d Decimal) MulUint64(v uint64) (uint64, error) {
	raw, err := mulDiv(d.raw, num.U128From64(v), scale)
	if err != nil {
		return 0, err
	}
	if !raw.IsUint64() {
		return 0, ErrOverflow
	}
	return raw.AsUint64(), nil
}

// DivUint64 returns d/v truncated.
func (d Decimal) DivUint64(v uint64) (Decimal, error) {
	if v == 0 {
		return Decimal{}, ErrZeroDenominator
	}
	return Decimal{raw: d.raw.Quo(num.U128From64(v))}, nil
}

// Quo returns d/o truncated to 18 digits.
func (d Decimal) Quo(o Decimal) (Decimal, error) {
	return FromRatio(d.raw, o.raw)
}

func (d Decimal) String() string {
	q, r := d.raw.QuoRem(scale)
	frac := strings.TrimRight(zeroPad(r.AsUint64()), "0")
	if frac == "" {
		return q.String()
	}
	return q.String() + "." + frac
}

func zeroPad(v uint64) string {
	s := num.U128From64(v).String()
	return strings.Repeat("0", Decimals-len(s)) + s
}

func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func mulDiv(a, b, c num.U128) (num.U128, error) {
	q, err := biguint.MulDiv(biguint.FromU128[biguint.W256](a), biguint.FromU128[biguint.W256](b),
		biguint.FromU128[biguint.W256](c), biguint.RoundDown)
	if err != nil {
		if errors.Is(err, biguint.ErrZeroDivisor) {
			return num.U128{}, ErrZeroDenominator
		}
		return num.U128{}, ErrOverflow
	}
	raw, err := q.U128()
	if err != nil {
		return num.U128{}, ErrOverflow
	}
	return raw, nil
}
