package formula

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNumber is a decimal literal.
	tokenNumber
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenDollar
	tokenLParen
	tokenRParen
	// tokenEquals is the mandatory trailing = marking the end of the formula.
	tokenEquals
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNumber:
		return "Number"
	case tokenPlus:
		return "Plus"
	case tokenMinus:
		return "Minus"
	case tokenStar:
		return "Star"
	case tokenSlash:
		return "Slash"
	case tokenCaret:
		return "Caret"
	case tokenDollar:
		return "Dollar"
	case tokenLParen:
		return "LeftParen"
	case tokenRParen:
		return "RightParen"
	case tokenEquals:
		return "Equals"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// token is a single lexical unit. Tokens are immutable once produced.
type token struct {
	kind tokenKind
	// val is the parsed value of a tokenNumber.
	val  float64
	text string
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// opKind maps a single operator or bracket rune to its token kind, or
// tokenNone if the rune is no such thing.
func opKind(r rune) tokenKind {
	switch r {
	case '+':
		return tokenPlus
	case '-':
		return tokenMinus
	case '*':
		return tokenStar
	case '/':
		return tokenSlash
	case '^':
		return tokenCaret
	case '$':
		return tokenDollar
	case '(':
		return tokenLParen
	case ')':
		return tokenRParen
	case '=':
		return tokenEquals
	}
	return tokenNone
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

// tokenize scans src into the full token sequence. The second result is the
// rune column one past the end of the input, used to report errors at EOF.
// Identical input always yields an identical sequence. A - before a number
// is emitted as a separate Minus token; sign application is the parser's
// business.
func tokenize(src io.RuneScanner) ([]token, int, *Error) {
	l := lexer{src: src, rune: 1}
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, 0, err
		}
		if tok.kind == tokenNone {
			return toks, l.rune, nil
		}
		toks = append(toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At EOF the result is a token of
// kind tokenNone with no error.
func (l *lexer) next() (token, *Error) {
	defer l.buf.Reset()
	tok := token{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenNone
				return tok, nil
			}
			return tok, &Error{Kind: InvalidExpression, Col: l.rune, Text: err.Error()}
		}
		switch {
		case r == ' ', r == '\t', r == '\r', r == '\n':
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(tok.pos); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			v, perr := strconv.ParseFloat(tok.text, 64)
			if perr != nil {
				return tok, &Error{Kind: InvalidNumber, Col: tok.pos, Text: tok.text}
			}
			tok.kind = tokenNumber
			tok.val = v
			return tok, nil
		default:
			if k := opKind(r); k != tokenNone {
				tok.kind = k
				tok.text = string(r)
				return tok, nil
			}
			return tok, &Error{Kind: UnexpectedCharacter, Col: tok.pos, Text: string(r)}
		}
	}
}

// scanNum scans a decimal literal into the buffer: a maximal run of digits
// with at most one decimal point and at least one digit. A second point or a
// bare point is InvalidNumber.
func (l *lexer) scanNum(pos int) *Error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return &Error{Kind: InvalidExpression, Col: l.rune, Text: err.Error()}
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
			l.buf.WriteRune(r)
		case r == '.':
			if dot {
				// Write the rune so that it shows up in the error message.
				l.buf.WriteRune(r)
				return &Error{Kind: InvalidNumber, Col: pos, Text: l.buf.String()}
			}
			dot = true
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			if !dig {
				return &Error{Kind: InvalidNumber, Col: pos, Text: l.buf.String()}
			}
			return nil
		}
	}
	if !dig {
		return &Error{Kind: InvalidNumber, Col: pos, Text: l.buf.String()}
	}
	return nil
}
