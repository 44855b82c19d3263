package automaton

import (
	"errors"
	"fmt"
)

var (
	ErrNoStart          = errors.New("automaton has no valid start state")
	ErrUnknownState     = errors.New("transition references a state outside the automaton")
	ErrNotDeterministic = errors.New("automaton is not deterministic")
)

// MalformedAutomatonError reports a structural violation found on an
// automaton handed to a pipeline stage.
type MalformedAutomatonError struct {
	Err        error
	Transition *Transition // offending transition, if any
	Start      StateID
}

func (e *MalformedAutomatonError) Error() string {
	if e.Transition != nil {
		return fmt.Sprintf("malformed automaton: %v: %v", e.Err, *e.Transition)
	}
	if errors.Is(e.Err, ErrNoStart) && e.Start != noStart {
		return fmt.Sprintf("malformed automaton: %v (start %d)", e.Err, e.Start)
	}
	return "malformed automaton: " + e.Err.Error()
}

func (e *MalformedAutomatonError) Unwrap() error { return e.Err }

// ResourceLimitError is returned when a configured bound is exceeded.
type ResourceLimitError struct {
	Resource string
	Limit    int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("%s limit of %d exceeded", e.Resource, e.Limit)
}

// Check verifies that the start state exists and that every transition
// connects states of the automaton.
func (a *Automaton) Check() error {
	if a == nil {
		return &MalformedAutomatonError{Err: ErrNoStart, Start: noStart}
	}
	if !a.has(a.start) {
		return &MalformedAutomatonError{Err: ErrNoStart, Start: a.start}
	}
	for i := range a.transitions {
		t := a.transitions[i]
		if !a.has(t.From) || !a.has(t.To) {
			return &MalformedAutomatonError{Err: ErrUnknownState, Transition: &t, Start: a.start}
		}
	}
	return nil
}
