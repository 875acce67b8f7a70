package expr

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// parser is a recursive-descent parser for:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := '-' unary | primary
//	primary := number | ident | ident '(' expr ')' | '(' expr ')'
type parser struct {
	s    scanner.Scanner
	tok  rune
	text string
	pos  int
	err  *SyntaxError
}

func parse(src string) (node, error) {
	p := &parser{}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.fail(s.Position.Offset, msg)
	}
	p.next()

	n := p.expr()
	if p.err == nil && p.tok != scanner.EOF {
		p.fail(p.pos, fmt.Sprintf("unexpected %q", p.text))
	}
	if p.err != nil {
		return nil, p.err
	}
	return n, nil
}

func (p *parser) fail(pos int, msg string) {
	if p.err == nil {
		p.err = &SyntaxError{Pos: pos, Msg: msg}
	}
}

func (p *parser) next() {
	p.tok = p.s.Scan()
	p.text = p.s.TokenText()
	p.pos = p.s.Position.Offset
}

func (p *parser) expect(tok rune) {
	if p.tok != tok {
		p.fail(p.pos, fmt.Sprintf("expected %q, found %q", string(tok), p.text))
		return
	}
	p.next()
}

func (p *parser) expr() node {
	n := p.term()
	for p.err == nil && (p.tok == '+' || p.tok == '-') {
		op := p.tok
		p.next()
		n = &binary{op: op, left: n, right: p.term()}
	}
	return n
}

func (p *parser) term() node {
	n := p.unary()
	for p.err == nil && (p.tok == '*' || p.tok == '/') {
		op := p.tok
		p.next()
		n = &binary{op: op, left: n, right: p.unary()}
	}
	return n
}

func (p *parser) unary() node {
	if p.tok == '-' {
		p.next()
		return &unary{op: '-', operand: p.unary()}
	}
	return p.primary()
}

func (p *parser) primary() node {
	switch p.tok {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.text, 64)
		if err != nil {
			p.fail(p.pos, fmt.Sprintf("bad number %q", p.text))
		}
		p.next()
		return &number{value: v}

	case scanner.Ident:
		name, pos := p.text, p.pos
		p.next()
		if p.tok != '(' {
			return &ident{name: name, pos: pos}
		}
		p.next()
		arg := p.expr()
		p.expect(')')
		return &call{fn: name, arg: arg, pos: pos}

	case '(':
		p.next()
		n := p.expr()
		p.expect(')')
		return n

	case scanner.EOF:
		p.fail(p.pos, "unexpected end of expression")
	default:
		p.fail(p.pos, fmt.Sprintf("unexpected %q", p.text))
	}
	return &number{}
}
