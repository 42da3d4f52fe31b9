package arith

import (
	"errors"
	"strconv"
)

// ErrorKind classifies an evaluation failure.
type ErrorKind int8

const (
	// EmptyExpression means a segment had nothing to evaluate, possibly after
	// removing comments.
	EmptyExpression ErrorKind = iota + 1
	// MismatchedParentheses means a close parenthesis had no open one or an
	// open parenthesis was never closed.
	MismatchedParentheses
	// InvalidOperator means a character that is no part of any number,
	// name, or operator.
	InvalidOperator
	// InvalidStructure means an assignment without =, an operator missing an
	// operand, or values left over with no operator to combine them.
	InvalidStructure
	// DivisionByZero means a division whose right operand is zero.
	DivisionByZero
	// InvalidVariableName means an assignment to something that isn't a name.
	InvalidVariableName
	// UndefinedVariable means a name with no value.
	UndefinedVariable
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind
//go:generate go mod tidy

// Error is an evaluation failure. Every error resulting from invalid input is
// an *Error.
type Error struct {
	// Kind is the class of failure.
	Kind ErrorKind
	// Text is the offending character for InvalidOperator and the offending
	// name for InvalidVariableName and UndefinedVariable. It is empty for
	// other kinds.
	Text string
}

func (err *Error) Error() string {
	switch err.Kind {
	case EmptyExpression:
		return "empty expression"
	case MismatchedParentheses:
		return "mismatched parentheses"
	case InvalidOperator:
		return "invalid operator " + strconv.Quote(err.Text)
	case InvalidStructure:
		return "invalid expression structure"
	case DivisionByZero:
		return "division by zero"
	case InvalidVariableName:
		return "invalid variable name " + strconv.Quote(err.Text)
	case UndefinedVariable:
		return "undefined variable " + strconv.Quote(err.Text)
	default:
		return "arith: unknown error " + err.Kind.String()
	}
}

// Is reports whether target is an *Error of the same kind whose Text is
// either empty or equal to err's. Hence errors.Is(err, ErrUndefinedVariable)
// holds for every undefined variable.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == err.Kind && (t.Text == "" || t.Text == err.Text)
}

// Sentinels for use with errors.Is.
var (
	ErrEmptyExpression       = &Error{Kind: EmptyExpression}
	ErrMismatchedParentheses = &Error{Kind: MismatchedParentheses}
	ErrInvalidOperator       = &Error{Kind: InvalidOperator}
	ErrInvalidStructure      = &Error{Kind: InvalidStructure}
	ErrDivisionByZero        = &Error{Kind: DivisionByZero}
	ErrInvalidVariableName   = &Error{Kind: InvalidVariableName}
	ErrUndefinedVariable     = &Error{Kind: UndefinedVariable}
)

// Message renders an error as a sentence to show to a person. Errors from
// outside this package render as their Error text. Message(nil) is empty.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case EmptyExpression:
		return "Expression cannot be empty."
	case MismatchedParentheses:
		return "Mismatched parentheses."
	case InvalidOperator:
		return "Invalid operator: " + e.Text
	case InvalidStructure:
		return "Invalid expression structure."
	case DivisionByZero:
		return "Division by zero is not allowed."
	case InvalidVariableName:
		return "Invalid variable name: " + e.Text
	case UndefinedVariable:
		return "Undefined variable: " + e.Text
	default:
		return e.Error()
	}
}
