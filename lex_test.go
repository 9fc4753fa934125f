package formula

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src  string
		toks []token
		kind ErrorKind
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []token{{kind: tokenNumber, val: 0, text: "0", pos: 1}}, 0},
		{"27", []token{{kind: tokenNumber, val: 27, text: "27", pos: 1}}, 0},
		{"5.3", []token{{kind: tokenNumber, val: 5.3, text: "5.3", pos: 1}}, 0},
		{".12", []token{{kind: tokenNumber, val: .12, text: ".12", pos: 1}}, 0},
		{"27.", []token{{kind: tokenNumber, val: 27, text: "27.", pos: 1}}, 0},
		{" 9.81 ", []token{{kind: tokenNumber, val: 9.81, text: "9.81", pos: 2}}, 0},
		{"1 0", []token{
			{kind: tokenNumber, val: 1, text: "1", pos: 1},
			{kind: tokenNumber, val: 0, text: "0", pos: 3},
		}, 0},
		// a leading - is an operator token, never part of the literal
		{"-5", []token{
			{kind: tokenMinus, text: "-", pos: 1},
			{kind: tokenNumber, val: 5, text: "5", pos: 2},
		}, 0},
		// operators and brackets
		{"1+2=", []token{
			{kind: tokenNumber, val: 1, text: "1", pos: 1},
			{kind: tokenPlus, text: "+", pos: 2},
			{kind: tokenNumber, val: 2, text: "2", pos: 3},
			{kind: tokenEquals, text: "=", pos: 4},
		}, 0},
		{"2^3$4", []token{
			{kind: tokenNumber, val: 2, text: "2", pos: 1},
			{kind: tokenCaret, text: "^", pos: 2},
			{kind: tokenNumber, val: 3, text: "3", pos: 3},
			{kind: tokenDollar, text: "$", pos: 4},
			{kind: tokenNumber, val: 4, text: "4", pos: 5},
		}, 0},
		{"(=)", []token{
			{kind: tokenLParen, text: "(", pos: 1},
			{kind: tokenEquals, text: "=", pos: 2},
			{kind: tokenRParen, text: ")", pos: 3},
		}, 0},
		{"*/", []token{
			{kind: tokenStar, text: "*", pos: 1},
			{kind: tokenSlash, text: "/", pos: 2},
		}, 0},
		// malformed literals
		{"1.2.3", nil, InvalidNumber},
		{".", nil, InvalidNumber},
		{". ", nil, InvalidNumber},
		{"1 ..", nil, InvalidNumber},
		// unrecognized characters
		{"a", nil, UnexpectedCharacter},
		{"1a", nil, UnexpectedCharacter},
		{"2 % 3", nil, UnexpectedCharacter},
	}
	for _, c := range cases {
		toks, _, err := tokenize(strings.NewReader(c.src))
		if c.kind != 0 {
			if err == nil {
				t.Errorf("scanning %q: want error kind %v, got tokens %v", c.src, c.kind, toks)
				continue
			}
			if err.Kind != c.kind {
				t.Errorf("scanning %q: want error kind %v, got %v", c.src, c.kind, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(toks) != len(c.toks) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.toks, toks)
			continue
		}
		for i, want := range c.toks {
			if toks[i] != want {
				t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, toks[i])
			}
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	src := "((8-9.81*3.14)-.12*(1*9/2.3)+-5.17)="
	first, end, err := tokenize(strings.NewReader(src))
	if err != nil {
		t.Fatalf("scanning %q: unexpected error %v", src, err)
	}
	for i := 0; i < 10; i++ {
		toks, e, err := tokenize(strings.NewReader(src))
		if err != nil {
			t.Fatalf("scanning %q: unexpected error %v", src, err)
		}
		if e != end || len(toks) != len(first) {
			t.Fatalf("scanning %q: inconsistent scan: %v vs %v", src, toks, first)
		}
		for k := range toks {
			if toks[k] != first[k] {
				t.Errorf("scanning %q: token %d differs: %v vs %v", src, k, toks[k], first[k])
			}
		}
	}
}

func TestTokenizeErrorColumns(t *testing.T) {
	cases := []struct {
		src string
		col int
	}{
		{"1.2.3", 1},
		{"12 @", 4},
		{"  .", 3},
	}
	for _, c := range cases {
		_, _, err := tokenize(strings.NewReader(c.src))
		if err == nil {
			t.Errorf("scanning %q: expected an error", c.src)
			continue
		}
		if err.Col != c.col {
			t.Errorf("scanning %q: want column %d, got %v", c.src, c.col, err)
		}
	}
}
