package expr

import (
	"fmt"
	"strconv"

	"github.com/roach88/symm/internal/irrep"
)

// ParseError reports a syntax error with its byte offset in the source.
type ParseError struct {
	Pos     int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

// Eval parses src and evaluates it against the given point group.
// Symbol lookups and algebra failures surface their irrep errors
// unchanged; syntax failures return a *ParseError.
func Eval(pg *irrep.PointGroup, src string) (irrep.Rep, error) {
	p := &parser{pg: pg, src: src}
	p.next()
	rep, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, &ParseError{Pos: p.tok.pos, Message: fmt.Sprintf("unexpected %q", p.tok.text)}
	}
	return rep, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokSymbol
	tokInt
	tokPlus
	tokStar
	tokPow
	tokLParen
	tokRParen
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type parser struct {
	pg  *irrep.PointGroup
	src string
	off int
	tok token
}

// next advances to the following token.
func (p *parser) next() {
	for p.off < len(p.src) && (p.src[p.off] == ' ' || p.src[p.off] == '\t') {
		p.off++
	}
	start := p.off
	if p.off >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}

	c := p.src[p.off]
	switch {
	case c == '+':
		p.off++
		p.tok = token{kind: tokPlus, text: "+", pos: start}
	case c == '*':
		p.off++
		if p.off < len(p.src) && p.src[p.off] == '*' {
			p.off++
			p.tok = token{kind: tokPow, text: "**", pos: start}
			return
		}
		p.tok = token{kind: tokStar, text: "*", pos: start}
	case c == '(':
		p.off++
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case c == ')':
		p.off++
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case isLetter(c):
		// Mulliken symbols start with a letter and may mix in digits: "e2u".
		for p.off < len(p.src) && (isLetter(p.src[p.off]) || isDigit(p.src[p.off])) {
			p.off++
		}
		p.tok = token{kind: tokSymbol, text: p.src[start:p.off], pos: start}
	case isDigit(c):
		for p.off < len(p.src) && isDigit(p.src[p.off]) {
			p.off++
		}
		p.tok = token{kind: tokInt, text: p.src[start:p.off], pos: start}
	default:
		p.off++
		p.tok = token{kind: tokInvalid, text: p.src[start:p.off], pos: start}
	}
}

func (p *parser) parseExpr() (irrep.Rep, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPlus {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		sum, err := irrep.Add(left, right)
		if err != nil {
			return nil, err
		}
		left = sum
	}
	return left, nil
}

func (p *parser) parseTerm() (irrep.Rep, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokStar {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		prod, err := irrep.Mul(left, right)
		if err != nil {
			return nil, err
		}
		left = prod
	}
	return left, nil
}

func (p *parser) parseFactor() (irrep.Rep, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPow {
		powPos := p.tok.pos
		p.next()
		if p.tok.kind != tokInt {
			return nil, &ParseError{Pos: p.tok.pos, Message: "exponent must be an integer"}
		}
		k, err := strconv.Atoi(p.tok.text)
		if err != nil {
			return nil, &ParseError{Pos: p.tok.pos, Message: fmt.Sprintf("bad exponent %q", p.tok.text)}
		}
		p.next()

		ir, ok := base.(irrep.Irrep)
		if !ok {
			return nil, &ParseError{Pos: powPos, Message: "exponent requires a single irrep base"}
		}
		base, err = irrep.Pow(ir, k)
		if err != nil {
			return nil, err
		}
	}
	return base, nil
}

func (p *parser) parsePrimary() (irrep.Rep, error) {
	switch p.tok.kind {
	case tokSymbol:
		ir, err := p.pg.Irrep(p.tok.text)
		if err != nil {
			return nil, err
		}
		p.next()
		return ir, nil
	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, &ParseError{Pos: p.tok.pos, Message: "expected )"}
		}
		p.next()
		return inner, nil
	case tokEOF:
		return nil, &ParseError{Pos: p.tok.pos, Message: "unexpected end of expression"}
	default:
		return nil, &ParseError{Pos: p.tok.pos, Message: fmt.Sprintf("unexpected %q", p.tok.text)}
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
