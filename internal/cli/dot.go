package cli

import (
	"fmt"
	"io"

	"automata/automaton"
)

// WriteDOT prints a Graphviz description of g to w.
func WriteDOT(w io.Writer, g automaton.PlainGraph) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for _, s := range g.States {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s, label=%q];\n", s.ID, shape, s.Name)
	}
	for _, t := range g.Transitions {
		label := t.Symbol
		if t.Epsilon {
			label = "ε"
		}
		fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", t.From, t.To, label)
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", g.Start)
	fmt.Fprintln(w, "}")
}
