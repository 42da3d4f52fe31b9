// Package arith evaluates small arithmetic programs.
//
// A program is a list of assignments followed by one expression, separated by
// semicolons: "x = 2 + 3; y = x * 4; y + 1". Each assignment sees the ones
// before it. Expressions use + - * / and parentheses over integers and
// decimals, and anything between a pair of // markers is a comment.
//
// Integers are arbitrary precision and stay integers under + - and *.
// Division always produces a float, as does any operation with a float
// operand.
//
// Bindings live in a map shared with the caller, so a caller can seed
// variables before evaluating and inspect the assignments afterward.
package arith
