package cli

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"automata/automaton"
)

// WriteTable prints the transition table of a, one row per (state, symbol)
// pair with at least one successor. States without successors get a single
// row with empty Symbol and To. The start state is marked with "->" and
// accepting states with "*".
func WriteTable(w io.Writer, a *automaton.Automaton) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"From", "Symbol", "To"})

	states := a.States()
	symbols := append([]automaton.Symbol{automaton.Epsilon}, a.Alphabet()...)
	for _, s := range states {
		rows := 0
		for _, sym := range symbols {
			succ := a.Successors(s.ID, sym)
			if len(succ) == 0 {
				continue
			}
			names := make([]string, len(succ))
			for i, id := range succ {
				names[i] = states[id].Name
			}
			table.Append([]string{marker(a, s) + s.Name, sym.String(), strings.Join(names, ", ")})
			rows++
		}
		if rows == 0 {
			table.Append([]string{marker(a, s) + s.Name, "", ""})
		}
	}
	table.Render()
}

func marker(a *automaton.Automaton, s automaton.State) string {
	m := ""
	if s.ID == a.Start() {
		m += "->"
	}
	if s.Accepting {
		m += "*"
	}
	return m
}
