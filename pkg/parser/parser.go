package parser

import (
	"errors"
	"io"
	"strings"

	"github.com/dimbata23/minischeme/pkg/lexer"
	"github.com/dimbata23/minischeme/pkg/runtime"
)

const unexpectedEOF = "unexpected end of input"

// IsIncomplete reports whether err means the input ended inside an
// expression, so more input could complete it.
func IsIncomplete(err error) bool {
	var serr *runtime.SyntaxError
	return errors.As(err, &serr) && strings.HasPrefix(serr.Msg, unexpectedEOF)
}

type Parser struct {
	lexer  *lexer.Lexer
	peeked *lexer.Token
}

// New returns a parser reading successive top-level expressions of input.
func New(input string) *Parser {
	return &Parser{
		lexer: lexer.Lex(input),
	}
}

// Parse reads exactly one expression. Empty input yields the empty list;
// anything left after the first expression is a syntax error.
func Parse(input string) (runtime.Value, error) {
	p := New(input)
	if p.peek().Typ == lexer.TokenEOF {
		return nil, nil
	}

	expr, err := p.read()
	if err != nil {
		return nil, err
	}

	switch token := p.peek(); token.Typ {
	case lexer.TokenEOF:
		return expr, nil
	case lexer.TokenError:
		return nil, runtime.SyntaxErrorf("%s", token.Val)
	default:
		return nil, runtime.SyntaxErrorf("unexpected %q after expression at position %d", token.Val, token.Pos)
	}
}

// Next returns the next top-level expression, or io.EOF when the input is
// exhausted.
func (p *Parser) Next() (runtime.Value, error) {
	if p.peek().Typ == lexer.TokenEOF {
		return nil, io.EOF
	}
	return p.read()
}

func (p *Parser) peek() lexer.Token {
	if p.peeked == nil {
		token := p.lexer.NextToken()
		p.peeked = &token
	}
	return *p.peeked
}

func (p *Parser) next() lexer.Token {
	token := p.peek()
	p.peeked = nil
	return token
}

func (p *Parser) read() (runtime.Value, error) {
	token := p.next()

	switch token.Typ {

	case lexer.TokenError:
		return nil, runtime.SyntaxErrorf("%s", token.Val)

	case lexer.TokenEOF:
		return nil, runtime.SyntaxErrorf(unexpectedEOF)

	case lexer.TokenNumber:
		return runtime.Number(token.Num), nil

	case lexer.TokenSymbol:
		return runtime.Symbol(token.Val), nil

	case lexer.TokenQuote:
		quoted, err := p.read()
		if err != nil {
			return nil, err
		}
		return runtime.List(runtime.Symbol("quote"), quoted), nil

	case lexer.TokenOpenParen:
		return p.readList()

	case lexer.TokenCloseParen:
		return nil, runtime.SyntaxErrorf("unexpected `)` at position %d", token.Pos)

	case lexer.TokenDot:
		return nil, runtime.SyntaxErrorf("unexpected `.` at position %d", token.Pos)
	}

	return nil, runtime.SyntaxErrorf("unknown token %v", token)
}

func (p *Parser) readList() (runtime.Value, error) {
	var head, tail *runtime.Pair

	for {
		switch token := p.peek(); token.Typ {

		case lexer.TokenCloseParen:
			p.next()
			if head == nil {
				return nil, nil
			}
			return head, nil

		case lexer.TokenEOF:
			return nil, runtime.SyntaxErrorf(unexpectedEOF + ": expected `)` to close `(`")

		case lexer.TokenDot:
			if head == nil {
				return nil, runtime.SyntaxErrorf("`.` must follow at least one element (position %d)", token.Pos)
			}
			p.next()
			rest, err := p.read()
			if err != nil {
				return nil, err
			}
			tail.Cdr = rest
			if closing := p.next(); closing.Typ != lexer.TokenCloseParen {
				return nil, runtime.SyntaxErrorf("expected `)` after dotted tail at position %d", closing.Pos)
			}
			return head, nil
		}

		elem, err := p.read()
		if err != nil {
			return nil, err
		}

		cell := runtime.Cons(elem, nil)
		if head == nil {
			head = cell
		} else {
			tail.Cdr = cell
		}
		tail = cell
	}
}
