package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type TokenType int

const eof rune = -1

const (
	TokenError TokenType = iota // lexer error occured; value is the error message
	TokenEOF
	TokenNumber
	TokenSymbol
	TokenOpenParen
	TokenCloseParen
	TokenQuote
	TokenDot
)

func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "Error"
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "Number"
	case TokenSymbol:
		return "Symbol"
	case TokenOpenParen:
		return "OpenParen"
	case TokenCloseParen:
		return "CloseParen"
	case TokenQuote:
		return "Quote"
	case TokenDot:
		return "Dot"
	}
	return "Unknown"
}

type Token struct {
	Typ TokenType
	Val string
	Num int64 // value of a TokenNumber
	Pos int   // byte offset of the token in the input
}

func (t Token) String() string {
	switch t.Typ {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return t.Val
	}

	if len(t.Val) > 16 {
		return fmt.Sprintf("%s %.10q...", t.Typ, t.Val)
	}

	return fmt.Sprintf("%s %q", t.Typ, t.Val)
}

const (
	digits      = "0123456789"
	symbolBegin = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ<=>*/#"
	symbolRest  = symbolBegin + digits + "?!-"
	whitespace  = " \t\r\n"
)

// Lexer struct

type Lexer struct {
	input string     // text being lexed
	start int        // starting position of current token
	pos   int        // current position in the text
	width int        // width of last read rune
	state stateFn    // the state function used for lexing
	items chan Token // output channel of read tokens
	last  *Token     // terminal token, repeated once the input is exhausted
}

type stateFn func(*Lexer) stateFn

func (l *Lexer) emit(t TokenType) {
	l.items <- Token{Typ: t, Val: l.input[l.start:l.pos], Pos: l.start}
	l.start = l.pos
}

func (l *Lexer) next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}

	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width

	return r
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFn {
	l.items <- Token{Typ: TokenError, Val: fmt.Sprintf(format, args...), Pos: l.start}
	return nil
}

// consumes the next rune if it's from the valid set
func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}

	l.backup()
	return false
}

// consumes multiple runes from the valid set
func (l *Lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

func Lex(input string) *Lexer {
	l := &Lexer{
		input: input,
		state: lexAny,
		items: make(chan Token, 2),
	}

	return l
}

// NextToken returns the next token. After TokenEOF or TokenError the same
// terminal token is returned on every call.
func (l *Lexer) NextToken() Token {
	for {
		select {
		case token := <-l.items:
			if token.Typ == TokenEOF || token.Typ == TokenError {
				l.last = &token
			}
			return token
		default:
			if l.state == nil {
				return *l.last
			}
			l.state = l.state(l)
		}
	}
}

// Tokens lexes the whole input, including the terminal token.
func Tokens(input string) []Token {
	l := Lex(input)
	var out []Token
	for {
		t := l.NextToken()
		out = append(out, t)
		if t.Typ == TokenEOF || t.Typ == TokenError {
			return out
		}
	}
}

/// State functions

func lexAny(l *Lexer) stateFn {
	l.acceptRun(whitespace)
	l.ignore()

	switch r := l.next(); {
	case r == eof:
		l.emit(TokenEOF)
		return nil
	case r == ';':
		return lexComment
	case r == '(':
		l.emit(TokenOpenParen)
	case r == ')':
		l.emit(TokenCloseParen)
	case r == '\'':
		l.emit(TokenQuote)
	case r == '.':
		l.emit(TokenDot)
	case r == '+' || r == '-':
		if strings.ContainsRune(digits, l.peek()) {
			l.backup()
			return lexNumber
		}
		l.emit(TokenSymbol)
	case strings.ContainsRune(digits, r):
		l.backup()
		return lexNumber
	case strings.ContainsRune(symbolBegin, r):
		return lexSymbol
	default:
		// anything else stands alone as a one-rune symbol
		l.emit(TokenSymbol)
	}

	return lexAny
}

func lexComment(l *Lexer) stateFn {
	for {
		if r := l.next(); r == '\n' || r == eof {
			l.ignore()
			return lexAny
		}
	}
}

func lexNumber(l *Lexer) stateFn {
	l.accept("+-")
	l.acceptRun(digits)

	text := l.input[l.start:l.pos]
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.errorf("number out of range: %s", text)
	}

	l.items <- Token{Typ: TokenNumber, Val: text, Num: n, Pos: l.start}
	l.start = l.pos
	return lexAny
}

func lexSymbol(l *Lexer) stateFn {
	l.acceptRun(symbolRest)
	l.emit(TokenSymbol)
	return lexAny
}
