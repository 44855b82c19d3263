package automaton

// EliminateEpsilon returns an ε-free automaton recognizing the same language.
//
// States keep their ids and names. A state accepts when its ε-closure holds an
// accepting state, and it gets an a-edge to every direct a-successor of any
// state in its closure. Use Trim to drop the states this leaves unreachable.
func EliminateEpsilon(a *Automaton) (*Automaton, error) {
	if err := a.Check(); err != nil {
		return nil, err
	}
	b := NewBuilder()
	closures := make([]stateSet, len(a.states))
	for _, s := range a.states {
		closures[s.ID] = a.epsilonClosure(newStateSet(s.ID))
		b.AddNamedState(s.Name, closures[s.ID].anyAccepting(a))
	}
	b.SetStart(a.start)

	for _, s := range a.states {
		for _, t := range closures[s.ID].sorted() {
			for _, sym := range a.alphabet {
				for _, to := range a.delta[t][sym] {
					b.AddTransition(s.ID, sym, to)
				}
			}
		}
	}
	return b.Build(), nil
}
