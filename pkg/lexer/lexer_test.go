package lexer

import "testing"

func kinds(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Typ
	}
	return out
}

func expectTokens(t *testing.T, input string, expected ...Token) {
	t.Helper()
	got := Tokens(input)
	if len(got) != len(expected) {
		t.Fatalf("lex %q: expected %d tokens, got %d (%v)", input, len(expected), len(got), got)
	}
	for i := range expected {
		if got[i].Typ != expected[i].Typ || got[i].Val != expected[i].Val || got[i].Num != expected[i].Num {
			t.Fatalf("lex %q: token %d: expected %v, got %v", input, i, expected[i], got[i])
		}
	}
}

func sym(s string) Token { return Token{Typ: TokenSymbol, Val: s} }
func num(s string, n int64) Token {
	return Token{Typ: TokenNumber, Val: s, Num: n}
}

var (
	open     = Token{Typ: TokenOpenParen, Val: "("}
	closeTok = Token{Typ: TokenCloseParen, Val: ")"}
	quote    = Token{Typ: TokenQuote, Val: "'"}
	dot      = Token{Typ: TokenDot, Val: "."}
	end      = Token{Typ: TokenEOF}
)

func TestLexList(t *testing.T) {
	expectTokens(t, "(+ 1 2)", open, sym("+"), num("1", 1), num("2", 2), closeTok, end)
}

func TestLexSignedNumbers(t *testing.T) {
	expectTokens(t, "-7 +3 - +", num("-7", -7), num("+3", 3), sym("-"), sym("+"), end)
	expectTokens(t, "(- 5)", open, sym("-"), num("5", 5), closeTok, end)
}

func TestLexSymbols(t *testing.T) {
	expectTokens(t, "set-car! list? <= #t #f", sym("set-car!"), sym("list?"), sym("<="), sym("#t"), sym("#f"), end)
	expectTokens(t, "a1b2", sym("a1b2"), end)
}

func TestLexQuoteAndDot(t *testing.T) {
	expectTokens(t, "'(1 . 2)", quote, open, num("1", 1), dot, num("2", 2), closeTok, end)
}

func TestLexWhitespaceAndComments(t *testing.T) {
	expectTokens(t, "  1\n\t2 ; three\n4", num("1", 1), num("2", 2), num("4", 4), end)
	expectTokens(t, "", end)
	expectTokens(t, " \n ", end)
}

func TestLexNumberOverflow(t *testing.T) {
	got := Tokens("99999999999999999999")
	if got[len(got)-1].Typ != TokenError {
		t.Fatalf("expected error token, got %v", kinds(got))
	}
}

func TestLexTerminalTokenRepeats(t *testing.T) {
	l := Lex("x")
	if tok := l.NextToken(); tok.Typ != TokenSymbol {
		t.Fatalf("expected symbol, got %v", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Typ != TokenEOF {
			t.Fatalf("expected EOF on call %d, got %v", i, tok)
		}
	}
}

func TestLexPositions(t *testing.T) {
	got := Tokens("(ab 12)")
	want := []int{0, 1, 4, 6, 7}
	for i, pos := range want {
		if got[i].Pos != pos {
			t.Fatalf("token %d: expected pos %d, got %d", i, pos, got[i].Pos)
		}
	}
}
