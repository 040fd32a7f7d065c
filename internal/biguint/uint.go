package biguint

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

const (
	limbBits = 64
	maxWords = 8
)

// Width selects the bit width of a Uint. Only the widths declared in this
// package exist.
type Width interface {
	words() int
}

// W256 is the 256-bit width (4 limbs).
type W256 struct{}

func (W256) words() int { return 4 }

// W512 is the 512-bit width (8 limbs).
type W512 struct{}

func (W512) words() int { return 8 }

// Uint is an immutable unsigned integer of fixed width W, in [0, 2^W-1].
//
// The value is stored as 64-bit limbs, least significant first:
//
//	n[0] * 2^0 + n[1] * 2^64 + ... + n[words-1] * 2^(64*(words-1))
//
// Limbs at index >= words are always zero, so two values of the same width
// can be compared with ==. Byte order only matters at the encoding boundary
// (New, NewLE, Bytes, BytesLE).
type Uint[W Width] struct {
	n [maxWords]uint64
}

type (
	Uint256 = Uint[W256]
	Uint512 = Uint[W512]
)

func words[W Width]() int {
	var w W
	return w.words()
}

// Bits returns the bit width of W.
func Bits[W Width]() int { return words[W]() * limbBits }

// ByteLen returns the encoded length of W in bytes.
func ByteLen[W Width]() int { return words[W]() * 8 }

// Zero returns 0.
func Zero[W Width]() Uint[W] { return Uint[W]{} }

// Max returns 2^W - 1.
func Max[W Width]() Uint[W] {
	var z Uint[W]
	for i := 0; i < words[W](); i++ {
		z.n[i] = math.MaxUint64
	}
	return z
}

// New builds a Uint from exactly ByteLen[W]() big-endian bytes.
func New[W Width](b []byte) (Uint[W], error) {
	var z Uint[W]
	w := words[W]()
	if len(b) != w*8 {
		return z, ErrLengthMismatch
	}
	for i := 0; i < w; i++ {
		end := len(b) - 8*i
		z.n[i] = binary.BigEndian.Uint64(b[end-8 : end])
	}
	return z, nil
}

// NewLE builds a Uint from exactly ByteLen[W]() little-endian bytes.
func NewLE[W Width](b []byte) (Uint[W], error) {
	if len(b) != ByteLen[W]() {
		return Uint[W]{}, ErrLengthMismatch
	}
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return New[W](be)
}

func NewUint256(b []byte) (Uint256, error) { return New[W256](b) }
func NewUint512(b []byte) (Uint512, error) { return New[W512](b) }

// FromUint64 zero-extends v.
func FromUint64[W Width](v uint64) Uint[W] {
	var z Uint[W]
	z.n[0] = v
	return z
}

func Uint256From64(v uint64) Uint256 { return FromUint64[W256](v) }
func Uint512From64(v uint64) Uint512 { return FromUint64[W512](v) }

// FromU128 zero-extends a 128-bit value.
func FromU128[W Width](v num.U128) Uint[W] {
	var z Uint[W]
	z.n[1], z.n[0] = v.Raw()
	return z
}

// FromBig converts a non-negative big.Int, failing with ErrOverflow when it
// does not fit W (negative values do not fit either).
func FromBig[W Width](b *big.Int) (Uint[W], error) {
	if b.Sign() < 0 || b.BitLen() > Bits[W]() {
		return Uint[W]{}, ErrOverflow
	}
	buf := make([]byte, ByteLen[W]())
	b.FillBytes(buf)
	return New[W](buf)
}

// Bytes returns the big-endian encoding, always ByteLen[W]() bytes long.
func (u Uint[W]) Bytes() []byte {
	w := words[W]()
	b := make([]byte, w*8)
	for i := 0; i < w; i++ {
		end := len(b) - 8*i
		binary.BigEndian.PutUint64(b[end-8:end], u.n[i])
	}
	return b
}

// BytesLE returns the little-endian encoding.
func (u Uint[W]) BytesLE() []byte {
	w := words[W]()
	b := make([]byte, w*8)
	for i := 0; i < w; i++ {
		binary.LittleEndian.PutUint64(b[8*i:8*i+8], u.n[i])
	}
	return b
}

// Uint64 narrows to uint64.
func (u Uint[W]) Uint64() (uint64, error) {
	for i := 1; i < words[W](); i++ {
		if u.n[i] != 0 {
			return 0, ErrOverflow
		}
	}
	return u.n[0], nil
}

// U128 narrows to a 128-bit value.
func (u Uint[W]) U128() (num.U128, error) {
	for i := 2; i < words[W](); i++ {
		if u.n[i] != 0 {
			return num.U128{}, ErrOverflow
		}
	}
	return num.U128FromRaw(u.n[1], u.n[0]), nil
}

func (u Uint[W]) Big() *big.Int {
	return new(big.Int).SetBytes(u.Bytes())
}

func (u Uint[W]) IsZero() bool {
	return u == Uint[W]{}
}

// String returns the decimal representation.
func (u Uint[W]) String() string {
	if v, err := u.Uint64(); err == nil {
		return strconv.FormatUint(v, 10)
	}
	return u.Big().String()
}

func (u Uint[W]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText accepts decimal or 0x-prefixed hex text.
func (u *Uint[W]) UnmarshalText(text []byte) error {
	b, ok := new(big.Int).SetString(string(text), 0)
	if !ok {
		return fmt.Errorf("biguint: invalid integer %q", text)
	}
	v, err := FromBig[W](b)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Widen zero-extends a 256-bit value to 512 bits.
func Widen(u Uint256) Uint512 {
	return Uint512{n: u.n}
}

// Narrow converts a 512-bit value to 256 bits, failing with ErrOverflow if
// any of the top 256 bits is set.
func Narrow(u Uint512) (Uint256, error) {
	for i := words[W256](); i < words[W512](); i++ {
		if u.n[i] != 0 {
			return Uint256{}, ErrOverflow
		}
	}
	return Uint256{n: u.n}, nil
}
