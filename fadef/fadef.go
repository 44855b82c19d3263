// Package fadef reads automata written by hand in a small line format:
//
//	# comment
//	start q0
//	accept q2, q3
//	state q4
//	q0 -> q1 : a, b
//	q1 -> q2 : ε
//
// States are created on first mention. "eps" may be written for ε.
package fadef

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"automata/automaton"
)

type Definition struct {
	Lines []*Line `parser:"@@*"`
}

type Line struct {
	Start  *StartDecl  `parser:"  @@"`
	Accept *AcceptDecl `parser:"| @@"`
	States *StateDecl  `parser:"| @@"`
	Edge   *Edge       `parser:"| @@"`
}

type StartDecl struct {
	Pos   lexer.Position
	State string `parser:"'start' @Ident"`
}

type AcceptDecl struct {
	States []string `parser:"'accept' @Ident (',' @Ident)*"`
}

type StateDecl struct {
	States []string `parser:"'state' @Ident (',' @Ident)*"`
}

type Edge struct {
	Pos     lexer.Position
	From    string   `parser:"@Ident '->'"`
	To      string   `parser:"@Ident ':'"`
	Symbols []string `parser:"@(Epsilon | Ident) (',' @(Epsilon | Ident))*"`
}

var defLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_]+`},
	{Name: "Punct", Pattern: `[:,]`},
})

var parser = participle.MustBuild[Definition](
	participle.Lexer(defLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a definition and builds the automaton it describes. Syntax
// errors carry the position reported by the grammar; the result is checked
// for a start state before it is returned.
func Parse(filename, text string) (*automaton.Automaton, error) {
	def, err := parser.ParseString(filename, text)
	if err != nil {
		return nil, err
	}
	return def.Build()
}

func (d *Definition) Build() (*automaton.Automaton, error) {
	b := automaton.NewBuilder()
	ids := map[string]automaton.StateID{}
	state := func(name string) automaton.StateID {
		id, ok := ids[name]
		if !ok {
			id = b.AddNamedState(name, false)
			ids[name] = id
		}
		return id
	}

	starts := 0
	for _, l := range d.Lines {
		switch {
		case l.Start != nil:
			starts++
			if starts > 1 {
				return nil, fmt.Errorf("%s: second start state %q", l.Start.Pos, l.Start.State)
			}
			b.SetStart(state(l.Start.State))
		case l.Accept != nil:
			for _, name := range l.Accept.States {
				b.SetAccepting(state(name), true)
			}
		case l.States != nil:
			for _, name := range l.States.States {
				state(name)
			}
		case l.Edge != nil:
			from, to := state(l.Edge.From), state(l.Edge.To)
			for _, s := range l.Edge.Symbols {
				sym, err := symbol(s)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", l.Edge.Pos, err)
				}
				b.AddTransition(from, sym, to)
			}
		}
	}
	a := b.Build()
	if err := a.Check(); err != nil {
		return nil, err
	}
	return a, nil
}

func symbol(s string) (automaton.Symbol, error) {
	if s == "ε" || s == "eps" {
		return automaton.Epsilon, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("symbol %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return automaton.Symbol(r), nil
}
