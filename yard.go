package arith

import (
	"unicode/utf8"

	"github.com/edwingeng/deque"
)

// yard holds the stacks of a shunting-yard evaluation.
type yard struct {
	// vals holds Values.
	vals deque.Deque
	// ops holds bytes, each one of + - * / or (.
	ops deque.Deque
}

func newYard() *yard {
	return &yard{vals: deque.NewDeque(), ops: deque.NewDeque()}
}

// reduce evaluates a token stream in which every name has been substituted.
//
// A minus is a sign when it begins the expression or follows an operator or
// open parenthesis; otherwise it subtracts. The same rule applies to negative
// values: one standing where an operator belongs is read as subtracting its
// magnitude, so with x = -5, "2 x" is 2 - 5.
func reduce(toks []lexToken) (Value, error) {
	y := newYard()
	unary := true
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.kind {
		case tokenNum:
			v := tok.val
			if !unary && v.negative() {
				if err := y.operator('-'); err != nil {
					return Value{}, err
				}
				v = v.Neg()
			}
			y.vals.PushBack(v)
			unary = false
		case tokenOp:
			op := tok.text[0]
			if unary && op == '-' {
				// A sign binds only to the number right after it.
				if i+1 >= len(toks) || toks[i+1].kind != tokenNum {
					return Value{}, &Error{Kind: InvalidStructure}
				}
				i++
				y.vals.PushBack(toks[i].val.Neg())
				unary = false
				continue
			}
			if err := y.operator(op); err != nil {
				return Value{}, err
			}
			unary = true
		case tokenOpen:
			y.ops.PushBack(byte('('))
			unary = true
		case tokenClose:
			if err := y.close(); err != nil {
				return Value{}, err
			}
			unary = false
		case tokenJunk:
			r, _ := utf8.DecodeRuneInString(tok.text)
			return Value{}, &Error{Kind: InvalidOperator, Text: string(r)}
		default:
			panic("arith: unexpected token " + tok.String())
		}
	}
	return y.finish()
}

// precedence gives the binding strength of an operator. Higher binds tighter.
func precedence(op byte) int8 {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	default:
		return 0
	}
}

// operator applies every stacked operator that binds at least as tightly as
// op, back to the nearest open parenthesis, then stacks op.
func (y *yard) operator(op byte) error {
	for y.ops.Len() > 0 {
		top := y.ops.Back().(byte)
		if top == '(' || precedence(top) < precedence(op) {
			break
		}
		if err := y.apply(); err != nil {
			return err
		}
	}
	y.ops.PushBack(op)
	return nil
}

// close applies operators back to the nearest open parenthesis and discards
// it.
func (y *yard) close() error {
	for y.ops.Len() > 0 && y.ops.Back().(byte) != '(' {
		if err := y.apply(); err != nil {
			return err
		}
	}
	if y.ops.Len() == 0 {
		return &Error{Kind: MismatchedParentheses}
	}
	y.ops.PopBack()
	return nil
}

// apply pops an operator and its two operands and pushes the result.
func (y *yard) apply() error {
	if y.vals.Len() < 2 {
		return &Error{Kind: InvalidStructure}
	}
	op := y.ops.PopBack().(byte)
	r := y.vals.PopBack().(Value)
	l := y.vals.PopBack().(Value)
	v, err := binary(op, l, r)
	if err != nil {
		return err
	}
	y.vals.PushBack(v)
	return nil
}

// finish applies the remaining operators and returns the single result.
func (y *yard) finish() (Value, error) {
	for y.ops.Len() > 0 {
		if y.ops.Back().(byte) == '(' {
			return Value{}, &Error{Kind: MismatchedParentheses}
		}
		if err := y.apply(); err != nil {
			return Value{}, err
		}
	}
	if y.vals.Len() != 1 {
		return Value{}, &Error{Kind: InvalidStructure}
	}
	return y.vals.PopBack().(Value), nil
}
