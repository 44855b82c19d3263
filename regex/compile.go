package regex

import "automata/automaton"

// fragment is a partial automaton with one entry and one exit state.
type fragment struct {
	start, final automaton.StateID
}

type compiler struct {
	b *automaton.Builder
}

// Compile builds the NFA-ε for n by Thompson's construction. Every node gets
// fresh states, at most two per node; only the final state of the whole
// expression is accepting. A nil tree, or a nil subtree of a hand-built
// tree, stands for the empty language.
func Compile(n *Node) *automaton.Automaton {
	b := automaton.NewBuilder()
	if n == nil {
		b.SetStart(b.AddState(false))
		return b.Build()
	}
	c := &compiler{b: b}
	f := c.build(n)
	b.SetStart(f.start)
	b.SetAccepting(f.final, true)
	return b.Build()
}

func (c *compiler) pair() fragment {
	return fragment{start: c.b.AddState(false), final: c.b.AddState(false)}
}

func (c *compiler) eps(from, to automaton.StateID) {
	c.b.AddTransition(from, automaton.Epsilon, to)
}

func (c *compiler) build(n *Node) fragment {
	if n == nil {
		return c.pair()
	}
	switch n.Kind {
	case KindLiteral:
		f := c.pair()
		c.b.AddTransition(f.start, automaton.Symbol(n.Symbol), f.final)
		return f
	case KindConcat:
		l := c.build(n.Left)
		r := c.build(n.Right)
		c.eps(l.final, r.start)
		return fragment{start: l.start, final: r.final}
	case KindUnion:
		f := c.pair()
		l := c.build(n.Left)
		r := c.build(n.Right)
		c.eps(f.start, l.start)
		c.eps(f.start, r.start)
		c.eps(l.final, f.final)
		c.eps(r.final, f.final)
		return f
	case KindStar:
		f := c.pair()
		inner := c.build(n.Left)
		c.eps(f.start, inner.start)
		c.eps(f.start, f.final)
		c.eps(inner.final, inner.start)
		c.eps(inner.final, f.final)
		return f
	default: // KindEmpty
		f := c.pair()
		c.eps(f.start, f.final)
		return f
	}
}

// Compile parses pattern with p's settings and compiles the result.
func (p Parser) Compile(pattern string) (*automaton.Automaton, error) {
	n, err := p.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Compile(n), nil
}

// MustCompile is like Parser.Compile with default settings but panics on a
// bad pattern. Intended for tests and fixed patterns.
func MustCompile(pattern string) *automaton.Automaton {
	a, err := Parser{}.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return a
}
