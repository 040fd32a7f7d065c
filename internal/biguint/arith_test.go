package biguint

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	num "github.com/shabbyrobe/go-num"
)

// randUint returns values of varying magnitude so that short and full width
// operands are both exercised.
func randUint[W Width](r *rand.Rand) Uint[W] {
	var z Uint[W]
	w := words[W]()
	used := 1 + r.Intn(w)
	for i := 0; i < used; i++ {
		z.n[i] = r.Uint64()
	}
	if r.Intn(4) == 0 {
		z = z.Rsh(uint(r.Intn(64)))
	}
	return z
}

func TestCmp(t *testing.T) {
	for _, test := range []struct {
		a, b string
		want Ordering
	}{
		{"0", "0", Equal},
		{"1", "0", Greater},
		{"0", "1", Less},
		{"0x10000000000000000", "0xffffffffffffffff", Greater},
		{"0xffffffffffffffff0000000000000000", "0xffffffffffffffff0000000000000001", Less},
	} {
		a, b := u256(test.a), u256(test.b)
		if got := Cmp(a, b); got != test.want {
			t.Errorf("Cmp(%s, %s) = %v, want %v", test.a, test.b, got, test.want)
		}
		if got := Cmp(b, a); got != -test.want {
			t.Errorf("Cmp(%s, %s) = %v, want %v", test.b, test.a, got, -test.want)
		}
	}

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a, b := randUint[W512](r), randUint[W512](r)
		if got, want := Cmp(a, b), Ordering(a.Big().Cmp(b.Big())); got != want {
			t.Fatalf("Cmp(%v, %v) = %v, want %v", a, b, got, want)
		}
		if (Cmp(a, b) == Equal) != (string(a.Bytes()) == string(b.Bytes())) {
			t.Fatalf("Cmp(%v, %v) equality disagrees with bytes", a, b)
		}
	}
}

func TestAddSub(t *testing.T) {
	max := Max[W256]()
	one := Uint256From64(1)
	if _, err := max.Add(one); !errors.Is(err, ErrOverflow) {
		t.Errorf("Max+1 err = %v, want ErrOverflow", err)
	}
	if _, err := one.Sub(Uint256From64(2)); !errors.Is(err, ErrOverflow) {
		t.Errorf("1-2 err = %v, want ErrOverflow", err)
	}
	if got, err := max.Sub(max); err != nil || !got.IsZero() {
		t.Errorf("Max-Max = %v, %v", got, err)
	}
	carry, err := u256("0xffffffffffffffff").Add(one)
	if err != nil || carry != u256("0x10000000000000000") {
		t.Errorf("carry propagation = %v, %v", carry, err)
	}

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a, b := randUint[W256](r), randUint[W256](r)
		sum, err := a.Add(b)
		ha := new(uint256.Int).SetBytes(a.Bytes())
		hb := new(uint256.Int).SetBytes(b.Bytes())
		hsum, overflow := new(uint256.Int).AddOverflow(ha, hb)
		if overflow {
			if !errors.Is(err, ErrOverflow) {
				t.Fatalf("%v+%v err = %v, want ErrOverflow", a, b, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%v+%v err = %v", a, b, err)
		}
		if want := hsum.Bytes32(); string(sum.Bytes()) != string(want[:]) {
			t.Fatalf("%v+%v = %v, want %v", a, b, sum, hsum)
		}
		back, err := sum.Sub(b)
		if err != nil || back != a {
			t.Fatalf("(%v+%v)-%v = %v, %v", a, b, b, back, err)
		}
	}
}

func TestMul(t *testing.T) {
	if _, err := Max[W256]().Mul(Uint256From64(2)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Max*2 err = %v, want ErrOverflow", err)
	}
	// 2^128 * 2^128 needs 257 bits.
	p := u256("0x100000000000000000000000000000000")
	if _, err := p.Mul(p); !errors.Is(err, ErrOverflow) {
		t.Errorf("2^128*2^128 err = %v, want ErrOverflow", err)
	}
	if got, err := Widen(p).Mul(Widen(p)); err != nil || got.Big().Cmp(new(big.Int).Lsh(big.NewInt(1), 256)) != 0 {
		t.Errorf("widened 2^128*2^128 = %v, %v", got, err)
	}
	// Full 256x256 product always fits 512 bits.
	m := Widen(Max[W256]())
	got, err := m.Mul(m)
	want := new(big.Int).Mul(Max[W256]().Big(), Max[W256]().Big())
	if err != nil || got.Big().Cmp(want) != 0 {
		t.Errorf("Max256^2 = %v, %v, want %v", got, err, want)
	}

	r := rand.New(rand.NewSource(3))
	limit := new(big.Int).Lsh(big.NewInt(1), 512)
	for i := 0; i < 1000; i++ {
		a, b := randUint[W512](r), randUint[W512](r)
		prod, err := a.Mul(b)
		want := new(big.Int).Mul(a.Big(), b.Big())
		if want.Cmp(limit) >= 0 {
			if !errors.Is(err, ErrOverflow) {
				t.Fatalf("%v*%v err = %v, want ErrOverflow", a, b, err)
			}
			continue
		}
		if err != nil || prod.Big().Cmp(want) != 0 {
			t.Fatalf("%v*%v = %v, %v, want %v", a, b, prod, err, want)
		}
	}

	for i := 0; i < 1000; i++ {
		a, b := randUint[W256](r), randUint[W256](r)
		prod, err := a.Mul(b)
		ha := new(uint256.Int).SetBytes(a.Bytes())
		hb := new(uint256.Int).SetBytes(b.Bytes())
		hp, overflow := new(uint256.Int).MulOverflow(ha, hb)
		if overflow != (err != nil) {
			t.Fatalf("%v*%v err = %v, oracle overflow = %v", a, b, err, overflow)
		}
		if want := hp.Bytes32(); !overflow && string(prod.Bytes()) != string(want[:]) {
			t.Fatalf("%v*%v = %v, want %v", a, b, prod, hp)
		}
	}
}

func TestDiv(t *testing.T) {
	for _, test := range []struct {
		a, b string
		mode Rounding
		want string
	}{
		{"3", "2", RoundHalfUp, "2"},
		{"8", "3", RoundHalfUp, "3"},
		{"7", "3", RoundHalfUp, "2"},
		{"4", "3", RoundHalfUp, "1"},
		{"5", "2", RoundHalfUp, "3"},
		{"5", "2", RoundDown, "2"},
		{"6", "3", RoundHalfUp, "2"},
		{"0", "7", RoundHalfUp, "0"},
		{"9", "1", RoundHalfUp, "9"},
		{"1", "8", RoundHalfUp, "0"},
		{"4", "8", RoundHalfUp, "1"},
		{"0x29fd491a293fa8791abf", "0x92fa89d8f7", RoundDown, "314112457325"},
		{"0x29fd491a293fa8791abf", "0x92fa89d8f7", RoundHalfUp, "314112457326"},
	} {
		got, err := u512(test.a).Div(u512(test.b), test.mode)
		if err != nil {
			t.Errorf("Div(%s, %s) err = %v", test.a, test.b, err)
			continue
		}
		if got.String() != test.want {
			t.Errorf("Div(%s, %s, %v) = %v, want %s", test.a, test.b, test.mode, got, test.want)
		}
	}

	// same operands in native 128-bit math
	a := num.U128FromRaw(0x29fd, 0x491a293fa8791abf)
	b := num.U128From64(0x92fa89d8f7)
	got, err := FromU128[W512](a).Div(FromU128[W512](b), RoundDown)
	if err != nil || got != FromU128[W512](a.Quo(b)) {
		t.Errorf("Div(%v, %v) = %v, %v, want %v", a, b, got, err, a.Quo(b))
	}

	if _, err := Uint256From64(1).Div(Zero[W256](), RoundDown); !errors.Is(err, ErrZeroDivisor) {
		t.Errorf("Div by zero err = %v, want ErrZeroDivisor", err)
	}
	if got, err := Max[W512]().Div(Uint512From64(1), RoundHalfUp); err != nil || got != Max[W512]() {
		t.Errorf("Max/1 = %v, %v", got, err)
	}
	if got, err := Max[W256]().Div(Max[W256](), RoundHalfUp); err != nil || got != Uint256From64(1) {
		t.Errorf("Max/Max = %v, %v", got, err)
	}
}

func TestDivRem(t *testing.T) {
	for _, test := range []struct {
		a, b string
		mode Rounding
		q, r string
	}{
		{"7", "2", RoundHalfUp, "4", "1"},
		{"7", "2", RoundDown, "3", "1"},
		{"8", "3", RoundHalfUp, "3", "2"},
		{"6", "3", RoundHalfUp, "2", "0"},
		{"0x29fd491a293fa8791abf", "0x92fa89d8f7", RoundHalfUp, "314112457326", "0x62d42b4394"},
	} {
		q, r, err := u512(test.a).DivRem(u512(test.b), test.mode)
		if err != nil || q != u512(test.q) || r != u512(test.r) {
			t.Errorf("DivRem(%s, %s, %v) = %v, %v, %v, want %s, %s", test.a, test.b, test.mode, q, r, err, test.q, test.r)
		}
	}
	if _, _, err := Uint256From64(1).DivRem(Zero[W256](), RoundHalfUp); !errors.Is(err, ErrZeroDivisor) {
		t.Errorf("DivRem by zero err = %v, want ErrZeroDivisor", err)
	}
}

func TestQuoRemProperties(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		a, b := randUint[W512](r), randUint[W512](r)
		if b.IsZero() {
			continue
		}
		q, rem, err := a.QuoRem(b)
		if err != nil {
			t.Fatal(err)
		}
		wantQ, wantR := new(big.Int).QuoRem(a.Big(), b.Big(), new(big.Int))
		if q.Big().Cmp(wantQ) != 0 || rem.Big().Cmp(wantR) != 0 {
			t.Fatalf("QuoRem(%v, %v) = %v, %v, want %v, %v", a, b, q, rem, wantQ, wantR)
		}
		if !rem.LT(b) {
			t.Fatalf("QuoRem(%v, %v) remainder %v not below divisor", a, b, rem)
		}
		up, err := a.Div(b, RoundHalfUp)
		if err != nil {
			t.Fatal(err)
		}
		if up != q {
			if next, _ := q.Add(Uint512From64(1)); up != next {
				t.Fatalf("Div(%v, %v, RoundHalfUp) = %v, floor %v", a, b, up, q)
			}
		}
	}

	for i := 0; i < 1000; i++ {
		a, b := randUint[W256](r), randUint[W256](r)
		if b.IsZero() {
			continue
		}
		q, _ := a.Div(b, RoundDown)
		ha := new(uint256.Int).SetBytes(a.Bytes())
		hb := new(uint256.Int).SetBytes(b.Bytes())
		want := new(uint256.Int).Div(ha, hb).Bytes32()
		if string(q.Bytes()) != string(want[:]) {
			t.Fatalf("%v/%v = %v", a, b, q)
		}
	}
}

func TestShift(t *testing.T) {
	one := Uint256From64(1)
	for _, test := range []struct {
		n    uint
		want string
	}{
		{0, "0x1"},
		{1, "0x2"},
		{7, "0x80"},
		{8, "0x100"},
		{63, "0x8000000000000000"},
		{64, "0x10000000000000000"},
		{65, "0x20000000000000000"},
		{255, "0x8000000000000000000000000000000000000000000000000000000000000000"},
		{256, "0"},
		{1000, "0"},
	} {
		got := one.Lsh(test.n)
		if got != u256(test.want) {
			t.Errorf("1<<%d = %v, want %s", test.n, got, test.want)
		}
		if test.n < 256 {
			if back := got.Rsh(test.n); back != one {
				t.Errorf("(1<<%d)>>%d = %v", test.n, test.n, back)
			}
		}
	}
	if got := Max[W512]().Rsh(512); !got.IsZero() {
		t.Errorf("Max>>512 = %v", got)
	}

	r := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		x := randUint[W256](r)
		n := uint(r.Intn(300))
		hx := new(uint256.Int).SetBytes(x.Bytes())
		wantL := new(uint256.Int).Lsh(hx, n).Bytes32()
		wantR := new(uint256.Int).Rsh(hx, n).Bytes32()
		if got := x.Lsh(n); string(got.Bytes()) != string(wantL[:]) {
			t.Fatalf("%v<<%d = %v", x, n, got)
		}
		if got := x.Rsh(n); string(got.Bytes()) != string(wantR[:]) {
			t.Fatalf("%v>>%d = %v", x, n, got)
		}
		// Round trip clears the top n bits.
		back := x.Rsh(n).Lsh(n)
		mask := new(big.Int)
		if n < 256 {
			mask.Lsh(big.NewInt(1), n)
			mask.Sub(mask, big.NewInt(1))
			mask.Not(mask)
			mask.And(mask, Max[W256]().Big())
		}
		if want := new(big.Int).And(x.Big(), mask); back.Big().Cmp(want) != 0 {
			t.Fatalf("(%v>>%d)<<%d = %v, want %v", x, n, n, back, want)
		}
	}

	if _, err := one.lshBits(64); !errors.Is(err, ErrShiftAmountInvalid) {
		t.Errorf("lshBits(64) err = %v, want ErrShiftAmountInvalid", err)
	}
	if _, err := one.rshBits(70); !errors.Is(err, ErrShiftAmountInvalid) {
		t.Errorf("rshBits(70) err = %v, want ErrShiftAmountInvalid", err)
	}
}

func TestBitLen(t *testing.T) {
	if _, err := Zero[W256]().BitLen(); !errors.Is(err, ErrZeroValue) {
		t.Errorf("BitLen(0) err = %v, want ErrZeroValue", err)
	}
	for _, test := range []struct {
		x    string
		want int
	}{
		{"1", 1},
		{"2", 2},
		{"0xff", 8},
		{"0x10000000000000000", 65},
	} {
		if got, err := u512(test.x).BitLen(); err != nil || got != test.want {
			t.Errorf("BitLen(%s) = %d, %v, want %d", test.x, got, err, test.want)
		}
	}
	if got, _ := Max[W512]().BitLen(); got != 512 {
		t.Errorf("BitLen(Max512) = %d", got)
	}
}
