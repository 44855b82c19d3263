package automaton

// Trim keeps only the states reachable from the start state, renumbered in
// breadth-first discovery order (symbols visited in ascending order, ε first).
func Trim(a *Automaton) (*Automaton, error) {
	if err := a.Check(); err != nil {
		return nil, err
	}
	order := a.reachable()
	remap := make(map[StateID]StateID, len(order))
	b := NewBuilder()
	for _, old := range order {
		s := a.states[old]
		remap[old] = b.AddNamedState(s.Name, s.Accepting)
	}
	b.SetStart(remap[a.start])
	for _, old := range order {
		for _, sym := range a.symbolsFrom(old) {
			for _, to := range a.delta[old][sym] {
				b.AddTransition(remap[old], sym, remap[to])
			}
		}
	}
	return b.Build(), nil
}

func (a *Automaton) reachable() []StateID {
	seen := newStateSet(a.start)
	order := []StateID{a.start}
	for i := 0; i < len(order); i++ {
		cur := order[i]
		for _, sym := range a.symbolsFrom(cur) {
			for _, to := range a.delta[cur][sym] {
				if _, ok := seen[to]; !ok {
					seen[to] = struct{}{}
					order = append(order, to)
				}
			}
		}
	}
	return order
}

// symbolsFrom lists the symbols leaving id: ε first, then the alphabet order.
func (a *Automaton) symbolsFrom(id StateID) []Symbol {
	var out []Symbol
	if len(a.delta[id][Epsilon]) > 0 {
		out = append(out, Epsilon)
	}
	for _, sym := range a.alphabet {
		if len(a.delta[id][sym]) > 0 {
			out = append(out, sym)
		}
	}
	return out
}
