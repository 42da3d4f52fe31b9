package arith

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{4, "4.0"},
		{-7.5, "-7.5"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{123456789012345678, "1.2345678901234568e+17"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, c := range cases {
		if got := formatFloat(c.f); got != c.want {
			t.Errorf("formatting %v: want %q, got %q", c.f, c.want, got)
		}
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		src  string
		want Value
		err  bool
	}{
		{"0", IntValue(0), false},
		{"42", IntValue(42), false},
		{"007", IntValue(7), false},
		{"3.14", FloatValue(3.14), false},
		{"5.", FloatValue(5), false},
		{".5", FloatValue(0.5), false},
		{"", Value{}, true},
		{".", Value{}, true},
		{"1.2.3", Value{}, true},
		{"-1", Value{}, true},
		{"1e3", Value{}, true},
	}
	for _, c := range cases {
		got, err := ParseValue(c.src)
		if c.err {
			var ne *strconv.NumError
			if !errors.As(err, &ne) || ne.Err != strconv.ErrSyntax {
				t.Errorf("parsing %q: want syntax error, got %v, %#v", c.src, got, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsing %q: unexpected error %v", c.src, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("parsing %q: (-want +got)\n%s", c.src, diff)
		}
	}
}

func TestParseValueHuge(t *testing.T) {
	src := "123456789012345678901234567890123456789"
	v, err := ParseValue(src)
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != Integer || v.String() != src {
		t.Errorf("want integer %s, got %v %v", src, v.Kind(), v)
	}
}

// Printing a value the grammar can produce and reading it back gives the
// same value.
func TestValueRoundTrip(t *testing.T) {
	srcs := []string{"0", "1", "65536", "98765432109876543210", "0.5", "2.25", "1234.5678", "0.1", "100.0"}
	for _, src := range srcs {
		v, err := ParseValue(src)
		if err != nil {
			t.Fatalf("parsing %q: %v", src, err)
		}
		w, err := ParseValue(v.String())
		if err != nil {
			t.Fatalf("reparsing %q from %q: %v", v.String(), src, err)
		}
		if !v.Equal(w) {
			t.Errorf("%q: %v read back as %v", src, v, w)
		}
	}
}

func TestValueEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		eq   bool
	}{
		{IntValue(4), IntValue(4), true},
		{IntValue(4), FloatValue(4), false},
		{Value{}, IntValue(0), true},
		{FloatValue(0.5), FloatValue(0.5), true},
		{FloatValue(math.NaN()), FloatValue(math.NaN()), true},
		{FloatValue(1), FloatValue(2), false},
		{BigIntValue(big.NewInt(9)), IntValue(9), true},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.eq {
			t.Errorf("%v == %v: want %t, got %t", c.a, c.b, c.eq, got)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	v := IntValue(-12)
	if v.Kind() != Integer {
		t.Errorf("want Integer, got %v", v.Kind())
	}
	if x := v.Int(); x == nil || x.Int64() != -12 {
		t.Errorf("want -12, got %v", x)
	}
	// Int returns a copy.
	v.Int().SetInt64(3)
	if v.String() != "-12" {
		t.Errorf("value changed through Int: %v", v)
	}
	if f := v.Float64(); f != -12 {
		t.Errorf("want -12.0, got %v", f)
	}
	if s := v.Sign(); s != -1 {
		t.Errorf("want sign -1, got %d", s)
	}
	if n := v.Neg(); !n.Equal(IntValue(12)) {
		t.Errorf("want 12, got %v", n)
	}
	f := FloatValue(2.5)
	if f.Int() != nil {
		t.Errorf("Int of float should be nil, got %v", f.Int())
	}
	if n := f.Neg(); !n.Equal(FloatValue(-2.5)) {
		t.Errorf("want -2.5, got %v", n)
	}
	if !FloatValue(math.Copysign(0, -1)).negative() {
		t.Error("negative zero should be negative")
	}
	if IntValue(0).negative() {
		t.Error("integer zero should not be negative")
	}
}

func TestBinary(t *testing.T) {
	big30 := new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)
	cases := []struct {
		name string
		op   byte
		l, r Value
		want Value
	}{
		{"add-int", '+', IntValue(2), IntValue(2), IntValue(4)},
		{"sub-int", '-', IntValue(10), IntValue(15), IntValue(-5)},
		{"mul-int", '*', IntValue(4), IntValue(4), IntValue(16)},
		{"div-int", '/', IntValue(20), IntValue(5), FloatValue(4)},
		{"div-third", '/', IntValue(1), IntValue(3), FloatValue(1.0 / 3)},
		{"add-mixed", '+', IntValue(1), FloatValue(0.5), FloatValue(1.5)},
		{"sub-mixed", '-', FloatValue(0.5), IntValue(1), FloatValue(-0.5)},
		{"mul-mixed", '*', FloatValue(1.5), IntValue(2), FloatValue(3)},
		{"div-float", '/', FloatValue(1), FloatValue(4), FloatValue(0.25)},
		{"mul-big", '*', BigIntValue(big30), BigIntValue(big30), BigIntValue(new(big.Int).Mul(big30, big30))},
		{"div-big", '/', BigIntValue(new(big.Int).Mul(big30, big.NewInt(3))), BigIntValue(big30), FloatValue(3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := binary(c.op, c.l, c.r)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("%v %c %v: (-want +got)\n%s", c.l, c.op, c.r, diff)
			}
		})
	}
}

func TestBinaryDivZero(t *testing.T) {
	zeros := []Value{IntValue(0), {}, FloatValue(0), FloatValue(math.Copysign(0, -1))}
	for _, z := range zeros {
		_, err := binary('/', IntValue(1), z)
		if err == nil {
			t.Errorf("dividing by %v gave no error", z)
			continue
		}
		e, ok := err.(*Error)
		if !ok || e.Kind != DivisionByZero {
			t.Errorf("dividing by %v: want DivisionByZero, got %#v", z, err)
		}
	}
}
