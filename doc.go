// Package formula implements a double-precision calculator for single-line
// arithmetic formulas terminated by =.
//
// A formula supports signed decimal numbers, the four basic operators,
// right-associative exponentiation (^) and n-th root ($), and arbitrarily
// nested parentheses. Multiplication may be implicit where a number or
// closing parenthesis meets an opening parenthesis, or a closing parenthesis
// meets a number: "2(3 + 1) =" is 8 and "(1 + 2)(3 + 4) =" is 21.
//
// Evaluation is fused with parsing; there is no syntax tree. Failures carry
// a closed error kind and the rune column of the offending token, and a NaN
// or infinity is never returned as a result.
package formula
