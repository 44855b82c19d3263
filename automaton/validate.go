package automaton

// Result describes one run of an automaton over an input string.
type Result struct {
	Accepted bool
	// Consumed counts the runes read before the run accepted, rejected early
	// or reached the end of input.
	Consumed int
	// Active is the sorted set of states the run ended in; empty when it
	// died on a missing transition.
	Active []StateID
}

// Validate reports whether a accepts input. Symbols with no outgoing
// transition, including symbols outside the alphabet, reject.
func Validate(a *Automaton, input string) (bool, error) {
	res, err := Simulate(a, input)
	if err != nil {
		return false, err
	}
	return res.Accepted, nil
}

// Simulate runs a over input, dispatching on the automaton's Kind.
func Simulate(a *Automaton, input string) (Result, error) {
	if err := a.Check(); err != nil {
		return Result{}, err
	}
	switch a.kind {
	case KindDFA:
		return a.runDFA(input), nil
	default:
		return a.runNFA(input), nil
	}
}

func (a *Automaton) runDFA(input string) Result {
	cur := a.start
	n := 0
	for _, r := range input {
		succ := a.delta[cur][Symbol(r)]
		if len(succ) == 0 {
			return Result{Consumed: n}
		}
		cur = succ[0]
		n++
	}
	return Result{Accepted: a.states[cur].Accepting, Consumed: n, Active: []StateID{cur}}
}

// runNFA simulates the set of active states. On automata without ε the
// closure step is the identity.
func (a *Automaton) runNFA(input string) Result {
	closeSet := func(s stateSet) stateSet { return s }
	if a.kind == KindNFAEpsilon {
		closeSet = a.epsilonClosure
	}
	active := closeSet(newStateSet(a.start))
	n := 0
	for _, r := range input {
		active = a.move(active, Symbol(r))
		if len(active) == 0 {
			return Result{Consumed: n}
		}
		active = closeSet(active)
		n++
	}
	return Result{Accepted: active.anyAccepting(a), Consumed: n, Active: active.sorted()}
}
