package calculator

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
	num "github.com/shabbyrobe/go-num"

	"gitlab.com/zlyzol/settlemath/internal/biguint"
	"gitlab.com/zlyzol/settlemath/internal/decimal"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Args are the named string operands of one calculation.
type Args map[string]string

func (a Args) get(name string) (string, error) {
	v := strings.TrimSpace(a[name])
	if v == "" {
		return "", errors.Wrapf(ErrInvalidArgument, "missing %s", name)
	}
	return v, nil
}

func (a Args) optional(name, def string) string {
	if v := strings.TrimSpace(a[name]); v != "" {
		return v
	}
	return def
}

// uint256 accepts decimal or 0x prefixed hex.
func (a Args) uint256(name string) (biguint.Uint256, error) {
	s, err := a.get(name)
	if err != nil {
		return biguint.Uint256{}, err
	}
	b, ok := math.ParseBig256(s)
	if !ok || b.Sign() < 0 {
		return biguint.Uint256{}, errors.Wrapf(ErrInvalidArgument, "%s is not an unsigned 256-bit integer: %q", name, s)
	}
	return biguint.FromBig[biguint.W256](b)
}

// uint512 accepts decimal, 0x hex, 0o octal and 0b binary.
func (a Args) uint512(name string) (biguint.Uint512, error) {
	s, err := a.get(name)
	if err != nil {
		return biguint.Uint512{}, err
	}
	b, ok := new(big.Int).SetString(s, 0)
	if !ok || b.Sign() < 0 || b.BitLen() > biguint.Bits[biguint.W512]() {
		return biguint.Uint512{}, errors.Wrapf(ErrInvalidArgument, "%s is not an unsigned 512-bit integer: %q", name, s)
	}
	return biguint.FromBig[biguint.W512](b)
}

func (a Args) u128(name string) (num.U128, error) {
	s, err := a.get(name)
	if err != nil {
		return num.U128{}, err
	}
	v, accurate, err := num.U128FromString(s)
	if err != nil || !accurate {
		return num.U128{}, errors.Wrapf(ErrInvalidArgument, "%s is not an unsigned 128-bit integer: %q", name, s)
	}
	return v, nil
}

func (a Args) uint64(name string) (uint64, error) {
	s, err := a.get(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "%s is not an unsigned 64-bit integer: %q", name, s)
	}
	return v, nil
}

func (a Args) decimal(name string) (decimal.Decimal, error) {
	s, err := a.get(name)
	if err != nil {
		return decimal.Zero(), err
	}
	d, err := decimal.FromString(s)
	if err != nil {
		return decimal.Zero(), errors.Wrapf(ErrInvalidArgument, "%s: %v", name, err)
	}
	return d, nil
}

func (a Args) rounding() (biguint.Rounding, error) {
	switch a.optional("rounding", "down") {
	case "down":
		return biguint.RoundDown, nil
	case "half_up":
		return biguint.RoundHalfUp, nil
	default:
		return biguint.RoundDown, errors.Wrapf(ErrInvalidArgument, "unknown rounding %q", a["rounding"])
	}
}

func withHex(name string, b *big.Int, result map[string]string) map[string]string {
	result[name] = b.String()
	result[name+"_hex"] = hexutil.EncodeBig(b)
	return result
}
