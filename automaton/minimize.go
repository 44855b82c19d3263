package automaton

import (
	"strconv"
	"strings"
)

// Minimize returns the minimal DFA equivalent to d.
//
// Unreachable and dead states (those that cannot reach acceptance) are
// dropped first, so a missing transition and a transition into a dead state
// mean the same thing. The remaining states are split by partition refinement
// until no block can be told apart by a single symbol. Each block keeps the
// name of its first member in breadth-first order from the start state.
func Minimize(d *Automaton) (*Automaton, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	if d.kind != KindDFA {
		return nil, ErrNotDeterministic
	}
	live := d.live()
	if _, ok := live[d.start]; !ok {
		b := NewBuilder()
		b.SetStart(b.AddNamedState(d.states[d.start].Name, false))
		return b.Build(), nil
	}

	var members []StateID
	for _, id := range d.reachable() {
		if _, ok := live[id]; ok {
			members = append(members, id)
		}
	}
	next := func(s StateID, sym Symbol) (StateID, bool) {
		succ := d.delta[s][sym]
		if len(succ) == 0 {
			return 0, false
		}
		if _, ok := live[succ[0]]; !ok {
			return 0, false
		}
		return succ[0], true
	}

	// initial split: accepting vs non-accepting
	block := map[StateID]int{}
	for _, s := range members {
		if d.states[s].Accepting {
			block[s] = 1
		} else {
			block[s] = 0
		}
	}
	count := -1
	for {
		sigs := map[string]int{}
		refined := make(map[StateID]int, len(members))
		for _, s := range members {
			var sig strings.Builder
			sig.WriteString(strconv.Itoa(block[s]))
			for _, sym := range d.alphabet {
				sig.WriteByte('|')
				if to, ok := next(s, sym); ok {
					sig.WriteString(strconv.Itoa(block[to]))
				} else {
					sig.WriteByte('-')
				}
			}
			k := sig.String()
			id, ok := sigs[k]
			if !ok {
				id = len(sigs)
				sigs[k] = id
			}
			refined[s] = id
		}
		block = refined
		if len(sigs) == count {
			break
		}
		count = len(sigs)
	}

	// number blocks in discovery order from the start state
	b := NewBuilder()
	newID := map[int]StateID{}
	for _, s := range members {
		if _, ok := newID[block[s]]; !ok {
			newID[block[s]] = b.AddNamedState(d.states[s].Name, d.states[s].Accepting)
		}
	}
	b.SetStart(newID[block[d.start]])
	for _, s := range members {
		for _, sym := range d.alphabet {
			if to, ok := next(s, sym); ok {
				b.AddTransition(newID[block[s]], sym, newID[block[to]])
			}
		}
	}
	return b.Build(), nil
}

// live returns the states from which some accepting state is reachable.
func (a *Automaton) live() stateSet {
	rev := make([][]StateID, len(a.states))
	for _, t := range a.transitions {
		rev[t.To] = append(rev[t.To], t.From)
	}
	set := stateSet{}
	var stack []StateID
	for _, s := range a.states {
		if s.Accepting {
			set[s.ID] = struct{}{}
			stack = append(stack, s.ID)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, from := range rev[s] {
			if _, ok := set[from]; !ok {
				set[from] = struct{}{}
				stack = append(stack, from)
			}
		}
	}
	return set
}
