package automaton

import (
	"container/list"
	"sort"
	"strconv"
	"strings"
)

type stateSet map[StateID]struct{}

func newStateSet(ids ...StateID) stateSet {
	set := make(stateSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s stateSet) sorted() []StateID {
	ids := make([]StateID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// key is a canonical string for the set, usable as a map key.
func (s stateSet) key() string {
	var b strings.Builder
	for i, id := range s.sorted() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

func (s stateSet) anyAccepting(a *Automaton) bool {
	for id := range s {
		if a.IsAccepting(id) {
			return true
		}
	}
	return false
}

// epsilonClosure extends set in place with everything reachable through
// ε-transitions. The visited set bounds the walk, so ε-cycles terminate.
func (a *Automaton) epsilonClosure(set stateSet) stateSet {
	stack := list.New()
	for s := range set {
		stack.PushBack(s)
	}
	for stack.Len() > 0 {
		s := stack.Remove(stack.Back()).(StateID)
		for _, to := range a.delta[s][Epsilon] {
			if _, ok := set[to]; !ok {
				set[to] = struct{}{}
				stack.PushBack(to)
			}
		}
	}
	return set
}

// EpsilonClosure returns the sorted ε-closure of the given states, which
// always includes the states themselves. Unknown ids are skipped.
func (a *Automaton) EpsilonClosure(ids ...StateID) []StateID {
	set := stateSet{}
	for _, id := range ids {
		if a.has(id) {
			set[id] = struct{}{}
		}
	}
	return a.epsilonClosure(set).sorted()
}

// move collects the direct sym-successors of every state in set.
func (a *Automaton) move(set stateSet, sym Symbol) stateSet {
	res := stateSet{}
	for s := range set {
		for _, to := range a.delta[s][sym] {
			res[to] = struct{}{}
		}
	}
	return res
}
