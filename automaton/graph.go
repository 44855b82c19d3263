package automaton

import (
	"fmt"
	"unicode/utf8"
)

// PlainGraph is the serializable shape of an Automaton handed to drawing
// and persistence code.
type PlainGraph struct {
	States      []PlainState      `json:"states"`
	Transitions []PlainTransition `json:"transitions"`
	Start       int               `json:"start"`
}

type PlainState struct {
	ID        int    `json:"id"`
	Name      string `json:"name,omitempty"`
	Accepting bool   `json:"accepting"`
}

type PlainTransition struct {
	From    int    `json:"from"`
	To      int    `json:"to"`
	Symbol  string `json:"symbol,omitempty"`
	Epsilon bool   `json:"epsilon,omitempty"`
}

// ToPlainGraph flattens a. A nil automaton yields an empty graph whose
// start is -1.
func ToPlainGraph(a *Automaton) PlainGraph {
	if a == nil {
		return PlainGraph{States: []PlainState{}, Transitions: []PlainTransition{}, Start: int(noStart)}
	}
	g := PlainGraph{
		States:      make([]PlainState, len(a.states)),
		Transitions: make([]PlainTransition, len(a.transitions)),
		Start:       int(a.start),
	}
	for i, s := range a.states {
		g.States[i] = PlainState{ID: int(s.ID), Name: s.Name, Accepting: s.Accepting}
	}
	for i, t := range a.transitions {
		pt := PlainTransition{From: int(t.From), To: int(t.To)}
		if t.Symbol == Epsilon {
			pt.Epsilon = true
		} else {
			pt.Symbol = t.Symbol.String()
		}
		g.Transitions[i] = pt
	}
	return g
}

// FromPlainGraph rebuilds an Automaton. Graph ids may be arbitrary; states
// are renumbered in the order they are listed. References to undeclared
// ids, multi-character symbols and invalid UTF-8 are reported, never
// repaired.
func FromPlainGraph(g PlainGraph) (*Automaton, error) {
	b := NewBuilder()
	ids := make(map[int]StateID, len(g.States))
	for _, s := range g.States {
		if _, dup := ids[s.ID]; dup {
			return nil, fmt.Errorf("duplicate state id %d", s.ID)
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("q%d", s.ID)
		}
		ids[s.ID] = b.AddNamedState(name, s.Accepting)
	}
	start, ok := ids[g.Start]
	if !ok {
		return nil, &MalformedAutomatonError{Err: ErrNoStart, Start: StateID(g.Start)}
	}
	b.SetStart(start)
	for _, t := range g.Transitions {
		from, okFrom := ids[t.From]
		to, okTo := ids[t.To]
		sym := Epsilon
		if !t.Epsilon {
			r, size := utf8.DecodeRuneInString(t.Symbol)
			if size == 0 || size != len(t.Symbol) || (r == utf8.RuneError && size == 1) {
				return nil, fmt.Errorf("transition %d->%d: symbol %q must be exactly one character", t.From, t.To, t.Symbol)
			}
			sym = Symbol(r)
		}
		if !okFrom || !okTo {
			bad := Transition{From: StateID(t.From), Symbol: sym, To: StateID(t.To)}
			return nil, &MalformedAutomatonError{Err: ErrUnknownState, Transition: &bad, Start: start}
		}
		b.AddTransition(from, sym, to)
	}
	return b.Build(), nil
}
