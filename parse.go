package formula

// The grammar, in the order the descent visits it:
//
//	Formula = Sum '='
//	Sum     = Product { ('+' | '-') Product }
//	Product = Root { ('*' | '/') Root | ImplicitMul Root }
//	Root    = Power [ '$' Root ]
//	Power   = Base [ '^' Power ]
//	Base    = '-' Base | num | '(' Sum ')'
//
// Every production evaluates as it parses; there is no syntax tree. Addition,
// subtraction, multiplication, and division accumulate left to right. Power
// and root chains recurse on their own level and so group rightward, with ^
// binding tighter than $: 2^1^0 is 2^(1^0) and 4^2$2 is the square root of
// 4^2. ImplicitMul is the lookahead condition for multiplication with no
// operator token, e.g. 2(3+1) or (1+2)(3+4).

// cursor is the parser's sole mutable state: an index into the token
// sequence plus the kind of the most recently consumed token, which the
// implicit-multiplication lookahead needs. A cursor is owned by exactly one
// evaluation and discarded on return.
type cursor struct {
	toks []token
	i    int
	prev tokenKind
	// end is the rune column one past the input, for errors at EOF.
	end   int
	depth int
	cfg   *config
}

// cur returns the current unconsumed token. Past the end of the sequence it
// returns a tokenNone positioned one past the input.
func (c *cursor) cur() token {
	if c.i >= len(c.toks) {
		return token{kind: tokenNone, pos: c.end}
	}
	return c.toks[c.i]
}

// advance consumes the current token and returns it.
func (c *cursor) advance() token {
	tok := c.cur()
	c.i++
	c.prev = tok.kind
	return tok
}

// enter counts one level of recursion against the configured depth limit.
// Every recursive path through the grammar passes through Base, so counting
// there bounds the nesting of the whole parse.
func (c *cursor) enter() *Error {
	c.depth++
	if c.cfg.maxDepth > 0 && c.depth > c.cfg.maxDepth {
		return &Error{Kind: ExpressionTooComplex, Col: c.cur().pos}
	}
	return nil
}

func (c *cursor) leave() {
	c.depth--
}

// formula evaluates a complete formula: a sum followed by the = end marker
// and nothing else.
func (c *cursor) formula() (float64, *Error) {
	v, err := c.sum()
	if err != nil {
		return 0, err
	}
	tok := c.cur()
	switch tok.kind {
	case tokenEquals:
		c.advance()
		if rest := c.cur(); rest.kind != tokenNone {
			return 0, &Error{Kind: UnexpectedToken, Col: rest.pos, Text: rest.text}
		}
		return v, nil
	case tokenNone:
		return 0, &Error{Kind: UnexpectedEnd, Col: tok.pos}
	default:
		return 0, &Error{Kind: UnexpectedToken, Col: tok.pos, Text: tok.text}
	}
}

// sum accumulates products joined by + and -, left to right.
func (c *cursor) sum() (float64, *Error) {
	v, err := c.product()
	if err != nil {
		return 0, err
	}
	for {
		switch c.cur().kind {
		case tokenPlus:
			op := c.advance()
			r, err := c.product()
			if err != nil {
				return 0, err
			}
			if c.cfg.debug {
				c.cfg.logger.Debugf("add: %g + %g", v, r)
			}
			v, err = finite(v+r, op.pos)
			if err != nil {
				return 0, err
			}
		case tokenMinus:
			op := c.advance()
			r, err := c.product()
			if err != nil {
				return 0, err
			}
			if c.cfg.debug {
				c.cfg.logger.Debugf("subtract: %g - %g", v, r)
			}
			v, err = finite(v-r, op.pos)
			if err != nil {
				return 0, err
			}
		default:
			return v, nil
		}
	}
}

// product accumulates roots joined by *, /, or implicit multiplication, left
// to right. Division by exact zero fails before dividing.
func (c *cursor) product() (float64, *Error) {
	v, err := c.root()
	if err != nil {
		return 0, err
	}
	for {
		tok := c.cur()
		switch {
		case tok.kind == tokenStar:
			c.advance()
			r, err := c.root()
			if err != nil {
				return 0, err
			}
			if c.cfg.debug {
				c.cfg.logger.Debugf("multiply: %g * %g", v, r)
			}
			v, err = finite(v*r, tok.pos)
			if err != nil {
				return 0, err
			}
		case tok.kind == tokenSlash:
			c.advance()
			div := c.cur()
			r, err := c.root()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, &Error{Kind: DivisionByZero, Col: div.pos, Text: div.text}
			}
			if c.cfg.debug {
				c.cfg.logger.Debugf("divide: %g / %g", v, r)
			}
			v, err = finite(v/r, tok.pos)
			if err != nil {
				return 0, err
			}
		case implicitMul(c.prev, tok.kind):
			r, err := c.root()
			if err != nil {
				return 0, err
			}
			if c.cfg.debug {
				c.cfg.logger.Debugf("implicit multiply: %g * %g", v, r)
			}
			v, err = finite(v*r, tok.pos)
			if err != nil {
				return 0, err
			}
		default:
			return v, nil
		}
	}
}

// implicitMul reports whether multiplication is implied between the most
// recently consumed token and the current unconsumed one with no operator in
// between. It holds for a number or closing parenthesis followed by an
// opening parenthesis, and for a closing parenthesis followed by a number.
// Two adjacent numbers do not qualify; that is malformed input, and the
// descent fails on the second number with UnexpectedToken. The condition is
// checked only while accumulating a product, never above or below it, so
// that an explicit operator is always preferred.
func implicitMul(prev, next tokenKind) bool {
	switch next {
	case tokenLParen:
		return prev == tokenRParen || prev == tokenNumber
	case tokenNumber:
		return prev == tokenRParen
	}
	return false
}

// root evaluates a power optionally followed by $, the n-th root operator.
// a $ b is the b-th root of a. Chains recurse rightward.
func (c *cursor) root() (float64, *Error) {
	v, err := c.power()
	if err != nil {
		return 0, err
	}
	if c.cur().kind != tokenDollar {
		return v, nil
	}
	op := c.advance()
	r, err := c.root()
	if err != nil {
		return 0, err
	}
	if c.cfg.debug {
		c.cfg.logger.Debugf("root: %g $ %g", v, r)
	}
	return nthRoot(v, r, op.pos)
}

// power evaluates a base optionally raised by ^. Chains recurse rightward,
// and the whole level binds tighter than $.
func (c *cursor) power() (float64, *Error) {
	v, err := c.base()
	if err != nil {
		return 0, err
	}
	if c.cur().kind != tokenCaret {
		return v, nil
	}
	op := c.advance()
	r, err := c.power()
	if err != nil {
		return 0, err
	}
	if c.cfg.debug {
		c.cfg.logger.Debugf("power: %g ^ %g", v, r)
	}
	return pow(v, r, op.pos)
}

// base evaluates a unary negation, a number, or a parenthesized sum.
// Negation nests, so --5 is 5.
func (c *cursor) base() (float64, *Error) {
	if err := c.enter(); err != nil {
		return 0, err
	}
	defer c.leave()
	tok := c.cur()
	switch tok.kind {
	case tokenMinus:
		c.advance()
		v, err := c.base()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case tokenNumber:
		c.advance()
		return tok.val, nil
	case tokenLParen:
		c.advance()
		v, err := c.sum()
		if err != nil {
			return 0, err
		}
		if end := c.cur(); end.kind != tokenRParen {
			return 0, &Error{Kind: UnmatchedParenthesis, Col: end.pos, Text: end.text}
		}
		c.advance()
		return v, nil
	case tokenNone, tokenEquals:
		return 0, &Error{Kind: UnexpectedEnd, Col: tok.pos, Text: tok.text}
	case tokenPlus, tokenStar, tokenSlash, tokenCaret, tokenDollar:
		return 0, &Error{Kind: InvalidOperator, Col: tok.pos, Text: tok.text}
	default:
		return 0, &Error{Kind: UnexpectedToken, Col: tok.pos, Text: tok.text}
	}
}
