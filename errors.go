package formula

import "strconv"

// ErrorKind classifies everything that can go wrong while evaluating a
// formula. The set is closed; every failure carries exactly one kind.
type ErrorKind int8

const (
	// Lexical errors.

	// InvalidNumber is a malformed decimal literal, e.g. two decimal points
	// or a point with no digits.
	InvalidNumber ErrorKind = iota + 1
	// UnexpectedCharacter is a rune that is no token at all.
	UnexpectedCharacter

	// Structural errors.

	// UnexpectedToken is a token that is valid nowhere in its context,
	// including two adjacent numbers with no operator between them.
	UnexpectedToken
	// UnexpectedEnd means the input ended before a required token, in
	// particular before the mandatory trailing =.
	UnexpectedEnd
	// UnmatchedParenthesis is an opening parenthesis with no closing one.
	UnmatchedParenthesis
	// InvalidExpression is input that contains no formula at all.
	InvalidExpression
	// InvalidOperator is an operator in a position the grammar forbids,
	// e.g. a leading * or a unary +.
	InvalidOperator

	// Arithmetic errors.

	DivisionByZero
	// InvalidExponentiation is an exponentiation with no real result.
	InvalidExponentiation
	// InvalidRoot is a root with index zero.
	InvalidRoot
	// EvenRootOfNegative is an even (or non-integer) root of a negative
	// radicand.
	EvenRootOfNegative
	Overflow
	Underflow

	// ExpressionTooComplex means a caller-configured depth or token limit
	// was exceeded. There is no built-in limit.
	ExpressionTooComplex
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidNumber:
		return "invalid number"
	case UnexpectedCharacter:
		return "unexpected character"
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEnd:
		return "unexpected end of formula"
	case UnmatchedParenthesis:
		return "unmatched parenthesis"
	case InvalidExpression:
		return "invalid expression"
	case InvalidOperator:
		return "invalid operator"
	case DivisionByZero:
		return "division by zero"
	case InvalidExponentiation:
		return "invalid exponentiation"
	case InvalidRoot:
		return "root with zero index"
	case EvenRootOfNegative:
		return "even root of negative number"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case ExpressionTooComplex:
		return "formula too complex"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the single error type produced while tokenizing, parsing, or
// evaluating a formula. Errors are terminal: the first one aborts the whole
// evaluation and reaches the caller unchanged.
type Error struct {
	// Kind tags the error.
	Kind ErrorKind
	// Col is the rune column of the offending token, counting from 1.
	Col int
	// Text is the offending token or character, if one exists.
	Text string
}

func (err *Error) Error() string {
	s := "column " + strconv.Itoa(err.Col) + ": " + err.Kind.String()
	if err.Text != "" {
		s += ": " + strconv.Quote(err.Text)
	}
	return s
}

// Pos returns the position of the error as the number of runes up to and
// including the start of the token that caused it.
func (err *Error) Pos() int {
	return err.Col
}
