package formula

import (
	"io"
	"math"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// finite classifies a float64 produced by one accumulation step. A NaN or
// infinity never escapes as a result; it becomes an Error instead.
func finite(v float64, col int) (float64, *Error) {
	switch {
	case math.IsInf(v, 0):
		return 0, &Error{Kind: Overflow, Col: col}
	case math.IsNaN(v):
		return 0, &Error{Kind: InvalidExpression, Col: col}
	}
	return v, nil
}

// pow computes a ^ b, classifying non-finite results: an infinity is
// Overflow, a NaN (e.g. a fractional power of a negative base) is
// InvalidExponentiation, and a result that rounds to zero from nonzero
// operands is Underflow.
func pow(a, b float64, col int) (float64, *Error) {
	v := math.Pow(a, b)
	switch {
	case math.IsNaN(v):
		return 0, &Error{Kind: InvalidExponentiation, Col: col}
	case math.IsInf(v, 0):
		return 0, &Error{Kind: Overflow, Col: col}
	case v == 0 && a != 0:
		return 0, &Error{Kind: Underflow, Col: col}
	}
	return v, nil
}

// nthRoot computes the b-th root of a. An index of zero is InvalidRoot. A
// negative radicand admits a real root only for an odd integer index;
// anything else is EvenRootOfNegative.
func nthRoot(a, b float64, col int) (float64, *Error) {
	if b == 0 {
		return 0, &Error{Kind: InvalidRoot, Col: col}
	}
	if a < 0 {
		if !oddInt(b) {
			return 0, &Error{Kind: EvenRootOfNegative, Col: col}
		}
		v, err := pow(-a, 1/b, col)
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return pow(a, 1/b, col)
}

// oddInt reports whether f is an odd integer.
func oddInt(f float64) bool {
	if f != math.Trunc(f) {
		return false
	}
	return math.Mod(math.Abs(f), 2) == 1
}

// Eval reads one formula from src and evaluates it. The formula must end
// with =. On success the result is a finite float64; on failure it is 0 and
// the error is a *Error carrying the kind and rune column of the fault.
//
// Each call owns its token sequence and cursor and shares nothing with any
// other call, so independent callers may evaluate concurrently.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	toks, end, err := tokenize(src)
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, &Error{Kind: InvalidExpression, Col: 1}
	}
	if cfg.maxTokens > 0 && len(toks) > cfg.maxTokens {
		return 0, &Error{Kind: ExpressionTooComplex, Col: toks[cfg.maxTokens].pos}
	}
	if cfg.debug {
		// Skip the expensive dump if not debugging.
		cfg.logger.Debugf("token sequence: %s", spew.Sprint(toks))
	}
	c := cursor{toks: toks, end: end, cfg: &cfg}
	v, err := c.formula()
	if err != nil {
		return 0, err
	}
	if cfg.debug {
		cfg.logger.Debugf("result: %g", v)
	}
	return v, nil
}

// EvalString is a shortcut to evaluate a formula held in a string.
func EvalString(src string, opts ...Option) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}
