package automaton

import "strings"

// Determinizer runs the subset construction. MaxStates bounds the number of
// DFA states that may be materialized; zero means unbounded.
type Determinizer struct {
	MaxStates int
}

// Determinize converts a with an unbounded Determinizer.
func Determinize(a *Automaton) (*Automaton, error) {
	return Determinizer{}.Determinize(a)
}

// Determinize builds a DFA whose states are the subsets of a's states
// reachable from the start subset. ε-transitions, if still present, are
// followed by closing every subset. A symbol with no successors gets no
// transition, which the validator treats as rejection.
//
// The result's state i is named after its subset, e.g. "{q0,q2}".
func (d Determinizer) Determinize(a *Automaton) (*Automaton, error) {
	if err := a.Check(); err != nil {
		return nil, err
	}
	closeSet := func(s stateSet) stateSet { return s }
	if a.HasEpsilon() {
		closeSet = a.epsilonClosure
	}

	b := NewBuilder()
	ids := map[string]StateID{}
	var queue []stateSet

	register := func(set stateSet) (StateID, error) {
		k := set.key()
		if id, ok := ids[k]; ok {
			return id, nil
		}
		if d.MaxStates > 0 && b.NumStates() >= d.MaxStates {
			return 0, &ResourceLimitError{Resource: "DFA state", Limit: d.MaxStates}
		}
		id := b.AddNamedState(a.subsetName(set), set.anyAccepting(a))
		ids[k] = id
		queue = append(queue, set)
		return id, nil
	}

	start, err := register(closeSet(newStateSet(a.start)))
	if err != nil {
		return nil, err
	}
	b.SetStart(start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := ids[cur.key()]
		for _, sym := range a.alphabet {
			next := a.move(cur, sym)
			if len(next) == 0 {
				continue
			}
			to, err := register(closeSet(next))
			if err != nil {
				return nil, err
			}
			b.AddTransition(from, sym, to)
		}
	}
	return b.Build(), nil
}

func (a *Automaton) subsetName(set stateSet) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range set.sorted() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.states[id].Name)
	}
	sb.WriteByte('}')
	return sb.String()
}
