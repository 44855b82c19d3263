package regex

import (
	"fmt"
	"strings"

	"automata/automaton"
)

// ParseError reports malformed pattern syntax.
type ParseError struct {
	Pos      int    // byte offset of the offending token
	Expected string // construct the parser was looking for
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regex: offset %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

const expectAtom = "literal, ε or '('"

// Parser turns patterns into trees.
//
// Alphabet restricts the accepted literals; empty means ASCII letters and
// digits. MaxDepth, when positive, bounds both parenthesis nesting and the
// depth of the resulting tree.
type Parser struct {
	Alphabet string
	MaxDepth int
}

// Parse uses the default Parser.
func Parse(pattern string) (*Node, error) { return Parser{}.Parse(pattern) }

func (p Parser) Parse(pattern string) (*Node, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	ps := &parser{cfg: p, toks: toks}
	n, err := ps.parseExpr(pUnion, 0)
	if err != nil {
		return nil, err
	}
	if ps.look.typ != tEOF {
		return nil, ps.errorf("end of input")
	}
	if p.MaxDepth > 0 && n.Depth() > p.MaxDepth {
		return nil, &automaton.ResourceLimitError{Resource: "regex depth", Limit: p.MaxDepth}
	}
	return n, nil
}

type parser struct {
	cfg  Parser
	toks []token
	i    int
	look token
}

func (p *parser) scan() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
}

func (p *parser) current() token { return p.toks[p.i] }

func (p *parser) errorf(expected string) *ParseError {
	t := p.current()
	return &ParseError{Pos: t.pos, Expected: expected, Found: t.describe()}
}

// infixPrec is the binding power of look as an infix operator; literals and
// '(' start an implicit concatenation.
func infixPrec(t tokenType) int {
	switch t {
	case tUnion:
		return pUnion
	case tLiteral, tEpsilon, tLParen:
		return pConcat
	default:
		return 0
	}
}

func (p *parser) parseExpr(minPrec, depth int) (*Node, error) {
	p.look = p.current()

	// prefix
	var left *Node
	switch p.look.typ {
	case tLiteral:
		if p.cfg.Alphabet != "" && !strings.ContainsRune(p.cfg.Alphabet, p.look.ch) {
			return nil, p.errorf(fmt.Sprintf("symbol from alphabet %q", p.cfg.Alphabet))
		}
		left = &Node{Kind: KindLiteral, Symbol: p.look.ch, Pos: p.look.pos}
		p.scan()
	case tEpsilon:
		left = &Node{Kind: KindEmpty, Pos: p.look.pos}
		p.scan()
	case tLParen:
		if p.cfg.MaxDepth > 0 && depth >= p.cfg.MaxDepth {
			return nil, &automaton.ResourceLimitError{Resource: "regex depth", Limit: p.cfg.MaxDepth}
		}
		p.scan()
		inner, err := p.parseExpr(pUnion, depth+1)
		if err != nil {
			return nil, err
		}
		if p.current().typ != tRParen {
			return nil, p.errorf("')'")
		}
		p.scan()
		left = inner
	case tStar, tUnion:
		return nil, p.errorf(expectAtom + " before " + p.look.typ.String())
	default:
		return nil, p.errorf(expectAtom)
	}

	// postfix
	for p.current().typ == tStar {
		left = &Node{Kind: KindStar, Left: left, Pos: p.current().pos}
		p.scan()
	}

	// infix, both operators left-associative
	for {
		p.look = p.current()
		prec := infixPrec(p.look.typ)
		if prec == 0 || prec < minPrec {
			break
		}
		pos := p.look.pos
		if p.look.typ == tUnion {
			p.scan()
		}
		right, err := p.parseExpr(prec+1, depth)
		if err != nil {
			return nil, err
		}
		if prec == pUnion {
			left = &Node{Kind: KindUnion, Left: left, Right: right, Pos: pos}
		} else {
			left = &Node{Kind: KindConcat, Left: left, Right: right, Pos: pos}
		}
	}
	p.look = p.current()
	return left, nil
}
