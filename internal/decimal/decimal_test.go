package decimal

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	num "github.com/shabbyrobe/go-num"
)

func TestFromString(t *testing.T) {
	for _, test := range []struct {
		in   string
		raw  string
		str  string
		fail bool
	}{
		{"0", "0", "0", false},
		{"1", "1000000000000000000", "1", false},
		{"1.5", "1500000000000000000", "1.5", false},
		{".25", "250000000000000000", "0.25", false},
		{"2.", "2000000000000000000", "2", false},
		{"0.000000000000000001", "1", "0.000000000000000001", false},
		{"0.523465233244931060", "523465233244931060", "0.52346523324493106", false},
		{"340282366920938463463.374607431768211455", "340282366920938463463374607431768211455", "340282366920938463463.374607431768211455", false},
		{"340282366920938463463.374607431768211456", "", "", true},
		{"0.0000000000000000001", "", "", true},
		{"", "", "", true},
		{".", "", "", true},
		{"1.2.3", "", "", true},
		{"-1", "", "", true},
		{"1e5", "", "", true},
	} {
		d, err := FromString(test.in)
		if test.fail {
			if err == nil {
				t.Errorf("FromString(%q) = %v, want error", test.in, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromString(%q) err = %v", test.in, err)
			continue
		}
		if got := d.Raw().String(); got != test.raw {
			t.Errorf("FromString(%q) raw = %s, want %s", test.in, got, test.raw)
		}
		if got := d.String(); got != test.str {
			t.Errorf("FromString(%q).String() = %s, want %s", test.in, got, test.str)
		}
	}
	if _, err := FromString("1.2.3"); !errors.Is(err, ErrInvalidString) {
		t.Errorf("FromString(1.2.3) err = %v, want ErrInvalidString", err)
	}
}

func TestArith(t *testing.T) {
	a, b := MustFromString("1.5"), MustFromString("0.25")
	if got, err := a.Add(b); err != nil || got.String() != "1.75" {
		t.Errorf("1.5+0.25 = %v, %v", got, err)
	}
	if got, err := a.Sub(b); err != nil || got.String() != "1.25" {
		t.Errorf("1.5-0.25 = %v, %v", got, err)
	}
	if _, err := b.Sub(a); !errors.Is(err, ErrOverflow) {
		t.Errorf("0.25-1.5 err = %v, want ErrOverflow", err)
	}
	if got, err := a.Mul(b); err != nil || got.String() != "0.375" {
		t.Errorf("1.5*0.25 = %v, %v", got, err)
	}
	if got, err := a.Quo(b); err != nil || got.String() != "6" {
		t.Errorf("1.5/0.25 = %v, %v", got, err)
	}
	if _, err := a.Quo(Zero()); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("1.5/0 err = %v, want ErrZeroDenominator", err)
	}
	if got, err := a.DivUint64(4); err != nil || got.String() != "0.375" {
		t.Errorf("1.5/4 = %v, %v", got, err)
	}
	if got, err := MustFromString("0.003").MulUint64(1000001); err != nil || got != 3000 {
		t.Errorf("0.003*1000001 = %d, %v", got, err)
	}
	if _, err := New(num.MaxU128).Add(NewRaw(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Max+1 err = %v, want ErrOverflow", err)
	}
	// raw product is ~2^200 but the result fits
	big := FromUint64(1 << 62)
	if got, err := big.Mul(MustFromString("0.5")); err != nil || got != FromUint64(1<<61) {
		t.Errorf("2^62*0.5 = %v, %v", got, err)
	}
	if _, err := big.Mul(big); !errors.Is(err, ErrOverflow) {
		t.Errorf("2^62*2^62 err = %v, want ErrOverflow", err)
	}
}

func TestFromRatio(t *testing.T) {
	for _, test := range []struct {
		n, d uint64
		want string
		err  error
	}{
		{1, 3, "0.333333333333333333", nil},
		{2, 3, "0.666666666666666666", nil},
		{10, 4, "2.5", nil},
		{0, 9, "0", nil},
		{1, 0, "", ErrZeroDenominator},
		{1 << 63, 1, "9223372036854775808", nil},
	} {
		got, err := FromRatioU64(test.n, test.d)
		if !errors.Is(err, test.err) {
			t.Errorf("FromRatio(%d, %d) err = %v, want %v", test.n, test.d, err, test.err)
			continue
		}
		if err == nil && got.String() != test.want {
			t.Errorf("FromRatio(%d, %d) = %v, want %s", test.n, test.d, got, test.want)
		}
	}
	if _, err := FromRatio(num.MaxU128, num.U128From64(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("FromRatio(Max, 1) err = %v, want ErrOverflow", err)
	}
}

func TestJSON(t *testing.T) {
	type doc struct {
		Rate Decimal `json:"rate"`
	}
	b, err := json.Marshal(doc{Rate: MustFromString("0.003")})
	if err != nil || string(b) != `{"rate":"0.003"}` {
		t.Errorf("json.Marshal = %s, %v", b, err)
	}
	var d doc
	if err := json.Unmarshal([]byte(`{"rate":"12.5"}`), &d); err != nil || d.Rate.String() != "12.5" {
		t.Errorf("json.Unmarshal = %v, %v", d.Rate, err)
	}
	if err := json.Unmarshal([]byte(`{"rate":"abc"}`), &d); err == nil {
		t.Error("json.Unmarshal(abc) should fail")
	}
}

func TestSigned(t *testing.T) {
	p, n := NewSigned(MustFromString("1.5"), false), NewSigned(MustFromString("2"), true)
	sum, err := p.Add(n)
	if err != nil || sum.String() != "-0.5" {
		t.Errorf("1.5 + -2 = %v, %v", sum, err)
	}
	if _, err := sum.Decimal(); !errors.Is(err, ErrNegative) {
		t.Errorf("(-0.5).Decimal() err = %v, want ErrNegative", err)
	}
	back, err := sum.Sub(n)
	if err != nil || back != p {
		t.Errorf("-0.5 - -2 = %v, %v", back, err)
	}
	if z := NewSigned(Zero(), true); z.IsNeg() {
		t.Error("negative zero")
	}
	if got, _ := p.Add(p.Negate()); got != (Signed{}) {
		t.Errorf("x + -x = %v", got)
	}
}
