package automaton

import "fmt"

// Builder accumulates states and transitions and finalizes them into an
// immutable Automaton. Builders do not validate; Build output is checked by
// every consumer through Check.
type Builder struct {
	states      []State
	transitions []Transition
	seen        map[Transition]struct{}
	start       StateID
}

func NewBuilder() *Builder {
	return &Builder{seen: map[Transition]struct{}{}, start: noStart}
}

// AddState adds a state named q<id>.
func (b *Builder) AddState(accepting bool) StateID {
	return b.AddNamedState("", accepting)
}

func (b *Builder) AddNamedState(name string, accepting bool) StateID {
	id := StateID(len(b.states))
	if name == "" {
		name = fmt.Sprintf("q%d", id)
	}
	b.states = append(b.states, State{ID: id, Name: name, Accepting: accepting})
	return id
}

// SetAccepting changes the accepting flag of an already added state.
// Unknown ids are ignored.
func (b *Builder) SetAccepting(id StateID, accepting bool) {
	if id >= 0 && int(id) < len(b.states) {
		b.states[id].Accepting = accepting
	}
}

func (b *Builder) SetStart(id StateID) { b.start = id }

// AddTransition records from -sym-> to. Duplicates are dropped.
func (b *Builder) AddTransition(from StateID, sym Symbol, to StateID) {
	t := Transition{From: from, Symbol: sym, To: to}
	if _, ok := b.seen[t]; ok {
		return
	}
	b.seen[t] = struct{}{}
	b.transitions = append(b.transitions, t)
}

func (b *Builder) NumStates() int { return len(b.states) }

// Build copies the accumulated parts into a new Automaton. The builder may
// keep being used afterwards without affecting the result.
func (b *Builder) Build() *Automaton {
	a := &Automaton{
		states:      make([]State, len(b.states)),
		transitions: make([]Transition, len(b.transitions)),
		start:       b.start,
	}
	copy(a.states, b.states)
	copy(a.transitions, b.transitions)
	a.index()
	return a
}
