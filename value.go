package arith

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind is the numeric type of a Value.
type Kind int8

const (
	// Integer values are arbitrary-precision integers.
	Integer Kind = iota
	// Float values are IEEE-754 double precision.
	Float
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an integer or floating-point number. The zero Value is the integer
// zero. Values are immutable; operations on them always allocate new results.
type Value struct {
	kind Kind
	// i is the integer value, or nil for zero. Never modified once set.
	i *big.Int
	f float64
}

// IntValue creates an integer value.
func IntValue(x int64) Value {
	return Value{kind: Integer, i: big.NewInt(x)}
}

// BigIntValue creates an integer value holding a copy of x.
func BigIntValue(x *big.Int) Value {
	return Value{kind: Integer, i: new(big.Int).Set(x)}
}

// FloatValue creates a floating-point value.
func FloatValue(f float64) Value {
	return Value{kind: Float, f: f}
}

// ParseValue parses a number literal: decimal digits with at most one decimal
// point. A literal with a decimal point is a Float, even if nothing follows
// the point, and any other literal is an Integer. Decimals too large for a
// float parse as infinity.
func ParseValue(s string) (Value, error) {
	dig, dot := false, false
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.' && !dot:
			dot = true
		default:
			return Value{}, &strconv.NumError{Func: "ParseValue", Num: s, Err: strconv.ErrSyntax}
		}
	}
	if !dig {
		return Value{}, &strconv.NumError{Func: "ParseValue", Num: s, Err: strconv.ErrSyntax}
	}
	if dot {
		// The only possible error now is ErrRange, and the result is already
		// the correctly signed infinity or zero.
		f, _ := strconv.ParseFloat(s, 64)
		return FloatValue(f), nil
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Value{}, &strconv.NumError{Func: "ParseValue", Num: s, Err: strconv.ErrSyntax}
	}
	return Value{kind: Integer, i: x}, nil
}

// Kind returns the numeric type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns a copy of the value of an Integer. The result is nil if v is a
// Float.
func (v Value) Int() *big.Int {
	if v.kind != Integer {
		return nil
	}
	return new(big.Int).Set(v.bigint())
}

// Float64 returns the value as a float64. Integers are rounded to the nearest
// float, possibly infinity.
func (v Value) Float64() float64 {
	if v.kind == Float {
		return v.f
	}
	f, _ := new(big.Float).SetInt(v.bigint()).Float64()
	return f
}

// Sign returns -1, 0, or 1 according to the sign of v. NaN has sign 0.
func (v Value) Sign() int {
	if v.kind == Integer {
		return v.bigint().Sign()
	}
	switch {
	case v.f < 0:
		return -1
	case v.f > 0:
		return 1
	default:
		return 0
	}
}

// Neg returns -v.
func (v Value) Neg() Value {
	if v.kind == Float {
		return FloatValue(-v.f)
	}
	return Value{kind: Integer, i: new(big.Int).Neg(v.bigint())}
}

// Equal reports whether v and w have the same kind and value. NaN equals NaN.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	if v.kind == Integer {
		return v.bigint().Cmp(w.bigint()) == 0
	}
	return v.f == w.f || math.IsNaN(v.f) && math.IsNaN(w.f)
}

// String formats v. Integers print in decimal. Floats always carry a decimal
// point or exponent, so 4.0 prints as "4.0" and 1e-05 as "1e-05".
func (v Value) String() string {
	if v.kind == Float {
		return formatFloat(v.f)
	}
	return v.bigint().String()
}

func (v Value) bigint() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return v.i
}

// negative reports whether v's printed form starts with a minus sign. This
// includes negative zero.
func (v Value) negative() bool {
	if v.kind == Float {
		return math.Signbit(v.f)
	}
	return v.bigint().Sign() < 0
}

func (v Value) isZero() bool {
	if v.kind == Float {
		return v.f == 0
	}
	return v.bigint().Sign() == 0
}

// formatFloat prints the shortest decimal that reads back as f, switching to
// exponent notation for very large or very small magnitudes.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if err != nil {
		panic("arith: bad float format " + e)
	}
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// binary applies a binary operator. + - and * keep two Integers as an
// Integer; everything else is a Float.
func binary(op byte, l, r Value) (Value, error) {
	ints := l.kind == Integer && r.kind == Integer
	switch op {
	case '+':
		if ints {
			return Value{kind: Integer, i: new(big.Int).Add(l.bigint(), r.bigint())}, nil
		}
		return FloatValue(l.Float64() + r.Float64()), nil
	case '-':
		if ints {
			return Value{kind: Integer, i: new(big.Int).Sub(l.bigint(), r.bigint())}, nil
		}
		return FloatValue(l.Float64() - r.Float64()), nil
	case '*':
		if ints {
			return Value{kind: Integer, i: new(big.Int).Mul(l.bigint(), r.bigint())}, nil
		}
		return FloatValue(l.Float64() * r.Float64()), nil
	case '/':
		if r.isZero() {
			return Value{}, &Error{Kind: DivisionByZero}
		}
		if ints {
			// Dividing as a rational rounds once, so 1/3 is the float
			// nearest to one third even for huge operands.
			f, _ := new(big.Rat).SetFrac(l.bigint(), r.bigint()).Float64()
			return FloatValue(f), nil
		}
		return FloatValue(l.Float64() / r.Float64()), nil
	default:
		panic("arith: invalid operator " + strconv.QuoteRune(rune(op)))
	}
}
