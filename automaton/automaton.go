// Package automaton holds the finite automaton model shared by every stage of
// the regex pipeline, together with the transformations between its forms.
//
// An Automaton is immutable once built. Transformations never mutate their
// input; each returns a freshly allocated Automaton.
package automaton

import (
	"fmt"
	"sort"
)

// StateID is the positional identity of a state inside one Automaton.
type StateID int

// Symbol is a transition label: a concrete character or Epsilon.
type Symbol rune

// Epsilon labels transitions that consume no input.
const Epsilon Symbol = -1

func (s Symbol) IsEpsilon() bool { return s == Epsilon }

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

type State struct {
	ID        StateID
	Name      string
	Accepting bool
}

type Transition struct {
	From   StateID
	Symbol Symbol
	To     StateID
}

func (t Transition) String() string {
	return fmt.Sprintf("%d -%s-> %d", t.From, t.Symbol, t.To)
}

// Kind classifies an automaton by its structure.
type Kind int

const (
	KindNFAEpsilon Kind = iota // has ε-transitions
	KindNFA                    // ε-free, possibly nondeterministic
	KindDFA                    // ε-free, at most one move per (state, symbol)
)

func (k Kind) String() string {
	switch k {
	case KindNFAEpsilon:
		return "NFA-ε"
	case KindNFA:
		return "NFA"
	case KindDFA:
		return "DFA"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const noStart StateID = -1

type Automaton struct {
	states      []State
	transitions []Transition
	start       StateID

	// delta is only populated for transitions whose endpoints are known
	// states; dangling ones are reported by Check.
	delta    []map[Symbol][]StateID
	alphabet []Symbol
	kind     Kind
}

func (a *Automaton) Start() StateID { return a.start }

func (a *Automaton) NumStates() int { return len(a.states) }

func (a *Automaton) NumTransitions() int { return len(a.transitions) }

// States returns a copy of the state list, indexed by StateID.
func (a *Automaton) States() []State {
	out := make([]State, len(a.states))
	copy(out, a.states)
	return out
}

func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, len(a.transitions))
	copy(out, a.transitions)
	return out
}

func (a *Automaton) State(id StateID) (State, bool) {
	if !a.has(id) {
		return State{}, false
	}
	return a.states[id], true
}

func (a *Automaton) IsAccepting(id StateID) bool {
	return a.has(id) && a.states[id].Accepting
}

// Accepting returns the accepting states in ascending order.
func (a *Automaton) Accepting() []StateID {
	var out []StateID
	for _, s := range a.states {
		if s.Accepting {
			out = append(out, s.ID)
		}
	}
	return out
}

// Alphabet returns the sorted set of non-ε symbols used by transitions.
func (a *Automaton) Alphabet() []Symbol {
	out := make([]Symbol, len(a.alphabet))
	copy(out, a.alphabet)
	return out
}

func (a *Automaton) Kind() Kind { return a.kind }

// Successors lists the direct sym-successors of id, in insertion order.
func (a *Automaton) Successors(id StateID, sym Symbol) []StateID {
	if !a.has(id) {
		return nil
	}
	succ := a.delta[id][sym]
	out := make([]StateID, len(succ))
	copy(out, succ)
	return out
}

func (a *Automaton) HasEpsilon() bool { return a.kind == KindNFAEpsilon }

func (a *Automaton) has(id StateID) bool {
	return id >= 0 && int(id) < len(a.states)
}

func (a *Automaton) name(id StateID) string {
	if a.has(id) {
		return a.states[id].Name
	}
	return fmt.Sprintf("#%d", id)
}

func (a *Automaton) String() string {
	return fmt.Sprintf("%s(%d states, %d transitions, start %s)",
		a.kind, len(a.states), len(a.transitions), a.name(a.start))
}

// index derives the lookup tables from the raw state and transition lists.
func (a *Automaton) index() {
	a.delta = make([]map[Symbol][]StateID, len(a.states))
	for i := range a.delta {
		a.delta[i] = map[Symbol][]StateID{}
	}
	seen := map[Symbol]struct{}{}
	deterministic := true
	hasEps := false
	for _, t := range a.transitions {
		if t.Symbol == Epsilon {
			hasEps = true
		} else {
			seen[t.Symbol] = struct{}{}
		}
		if !a.has(t.From) || !a.has(t.To) {
			continue
		}
		m := a.delta[t.From]
		if t.Symbol != Epsilon && len(m[t.Symbol]) > 0 {
			deterministic = false
		}
		m[t.Symbol] = append(m[t.Symbol], t.To)
	}
	a.alphabet = make([]Symbol, 0, len(seen))
	for s := range seen {
		a.alphabet = append(a.alphabet, s)
	}
	sort.Slice(a.alphabet, func(i, j int) bool { return a.alphabet[i] < a.alphabet[j] })

	switch {
	case hasEps:
		a.kind = KindNFAEpsilon
	case deterministic:
		a.kind = KindDFA
	default:
		a.kind = KindNFA
	}
}
