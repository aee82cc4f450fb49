package bigint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustInt(t *testing.T, s string, base int) *Int {
	t.Helper()
	z, ok := new(Int).SetString(s, base)
	require.True(t, ok, "SetString(%q, %d) failed", s, base)
	return z
}

func TestIntZeroValue(t *testing.T) {
	var z Int
	require.Equal(t, 0, z.Sign())
	require.Equal(t, "0", z.String())
}

func TestIntSetStringAndText(t *testing.T) {
	td := []struct {
		s    string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"},
		{"123", 10, "123"},
		{"-123", 10, "-123"},
		{"ff", 16, "ff"},
		{"-ff", 16, "-ff"},
	}
	for i, d := range td {
		z := mustInt(t, d.s, d.base)
		if got := z.Text(d.base); got != d.want {
			t.Fatalf("case %d: Text(%d) = %q, want %q", i, d.base, got, d.want)
		}
	}
}

func TestIntSetStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "-", "12a", "+1"} {
		if _, ok := new(Int).SetString(s, 10); ok {
			t.Fatalf("SetString(%q, 10) unexpectedly succeeded", s)
		}
	}
}

func TestIntAddSignRules(t *testing.T) {
	td := []struct{ x, y, z string }{
		{"3", "4", "7"},
		{"-3", "-4", "-7"},
		{"5", "-3", "2"},
		{"3", "-5", "-2"},
		{"5", "-5", "0"},
		{"-5", "5", "0"},
	}
	for i, d := range td {
		x, y := mustInt(t, d.x, 10), mustInt(t, d.y, 10)
		z := new(Int).Add(x, y)
		if got := z.String(); got != d.z {
			t.Fatalf("case %d: %s+%s = %s, want %s", i, d.x, d.y, got, d.z)
		}
	}
}

func TestIntSubSignRules(t *testing.T) {
	td := []struct{ x, y, z string }{
		{"7", "4", "3"},
		{"4", "7", "-3"},
		{"-3", "-4", "1"},
		{"-4", "-3", "-1"},
		{"5", "5", "0"},
	}
	for i, d := range td {
		x, y := mustInt(t, d.x, 10), mustInt(t, d.y, 10)
		z := new(Int).Sub(x, y)
		if got := z.String(); got != d.z {
			t.Fatalf("case %d: %s-%s = %s, want %s", i, d.x, d.y, got, d.z)
		}
	}
}

func TestIntMulSignRules(t *testing.T) {
	td := []struct{ x, y, z string }{
		{"3", "4", "12"},
		{"-3", "4", "-12"},
		{"3", "-4", "-12"},
		{"-3", "-4", "12"},
		{"0", "-4", "0"},
	}
	for i, d := range td {
		x, y := mustInt(t, d.x, 10), mustInt(t, d.y, 10)
		z := new(Int).Mul(x, y)
		if got := z.String(); got != d.z {
			t.Fatalf("case %d: %s*%s = %s, want %s", i, d.x, d.y, got, d.z)
		}
	}
}

func TestIntDivModTruncatedTowardZero(t *testing.T) {
	td := []struct {
		x, y   string
		q, m   string
	}{
		{"7", "3", "2", "1"},
		{"-7", "3", "-2", "-1"},
		{"7", "-3", "-2", "1"},
		{"-7", "-3", "2", "-1"},
		{"0", "5", "0", "0"},
	}
	for i, d := range td {
		x, y := mustInt(t, d.x, 10), mustInt(t, d.y, 10)
		q := new(Int).Div(x, y)
		m := new(Int).Mod(x, y)
		if got := q.String(); got != d.q {
			t.Fatalf("case %d: %s/%s = %s, want %s", i, d.x, d.y, got, d.q)
		}
		if got := m.String(); got != d.m {
			t.Fatalf("case %d: %s%%%s = %s, want %s", i, d.x, d.y, got, d.m)
		}
	}
}

func TestIntDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Div by zero should panic")
		}
	}()
	x := mustInt(t, "1", 10)
	new(Int).Div(x, new(Int))
}

func TestIntCmp(t *testing.T) {
	td := []struct{ x, y string; want int }{
		{"0", "0", 0},
		{"1", "-1", 1},
		{"-1", "1", -1},
		{"5", "3", 1},
		{"-5", "-3", -1},
	}
	for i, d := range td {
		x, y := mustInt(t, d.x, 10), mustInt(t, d.y, 10)
		if got := x.Cmp(y); got != d.want {
			t.Fatalf("case %d: Cmp(%s,%s) = %d, want %d", i, d.x, d.y, got, d.want)
		}
	}
}

func TestIntAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		x := randomInt(r)
		y := randomInt(r)
		sum := new(Int).Add(x, y)
		back := new(Int).Sub(sum, y)
		if back.Cmp(x) != 0 {
			t.Fatalf("(x+y)-y != x: x=%s y=%s got=%s", x, y, back)
		}
	}
}

func TestIntDivModIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(100))
	for i := 0; i < 500; i++ {
		x := randomInt(r)
		y := randomInt(r)
		if y.Sign() == 0 {
			continue
		}
		q := new(Int).Div(x, y)
		m := new(Int).Mod(x, y)
		check := new(Int).Mul(q, y)
		check.Add(check, m)
		if check.Cmp(x) != 0 {
			t.Fatalf("q*y+m != x: x=%s y=%s q=%s m=%s", x, y, q, m)
		}
		absY := new(Int).Abs(y)
		absM := new(Int).Abs(m)
		if absM.Cmp(absY) >= 0 {
			t.Fatalf("|m| not smaller than |y|: y=%s m=%s", y, m)
		}
	}
}

func randomInt(r *rand.Rand) *Int {
	mag := randomNat(r, 1+r.Intn(10))
	neg := r.Intn(2) == 1
	return NewIntFromWords(mag, neg)
}

func TestNewIntFromWords(t *testing.T) {
	z := NewIntFromWords([]Word{5, 0, 0}, true)
	require.Equal(t, "-5", z.String())

	zero := NewIntFromWords([]Word{0}, true)
	require.Equal(t, 0, zero.Sign())
	require.Equal(t, "0", zero.String())
}

func TestIntClone(t *testing.T) {
	x := mustInt(t, "12345", 10)
	y := x.Clone()
	y.Add(y, mustInt(t, "1", 10))
	require.Equal(t, "12345", x.String(), "Clone aliased storage with original")
	require.Equal(t, "12346", y.String())
}
