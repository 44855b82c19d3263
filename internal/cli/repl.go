package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"automata/automaton"
)

// Describe formats the outcome of one simulation for humans.
func Describe(a *automaton.Automaton, input string, res automaton.Result) string {
	if len(res.Active) == 0 {
		return fmt.Sprintf("rejected: no transition after %d of %d symbols",
			res.Consumed, len([]rune(input)))
	}
	states := a.States()
	names := make([]string, len(res.Active))
	for i, id := range res.Active {
		names[i] = states[id].Name
	}
	if res.Accepted {
		return "accepted in " + strings.Join(names, ", ")
	}
	return "rejected in " + strings.Join(names, ", ")
}

// REPL prompts for strings and validates each against a until the user
// enters "exit" or interrupts the prompt.
func REPL(ctx *Context, a *automaton.Automaton) error {
	fmt.Fprintf(ctx.Out, "%s, alphabet %s\n", a, alphabetString(a))
	for {
		prompt := promptui.Prompt{
			Label: "Input string (exit to quit)",
		}
		input, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "exit" {
			return nil
		}
		res, err := automaton.Simulate(a, input)
		if err != nil {
			return err
		}
		style := promptui.Styler(promptui.FGRed)
		if res.Accepted {
			style = promptui.Styler(promptui.FGGreen)
		}
		fmt.Fprintln(ctx.Out, style(Describe(a, input, res)))
	}
}

func alphabetString(a *automaton.Automaton) string {
	syms := a.Alphabet()
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
