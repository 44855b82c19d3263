// Package cli implements the automata command: it loads or compiles an
// automaton, runs it through the requested pipeline stages and prints it or
// validates strings against it.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"automata/automaton"
	"automata/fadef"
	"automata/regex"
)

type Stage string

const (
	StageENFA Stage = "enfa"
	StageNFA  Stage = "nfa"
	StageDFA  Stage = "dfa"
	StageMin  Stage = "min"
)

type Format string

const (
	FormatNone  Format = ""
	FormatJSON  Format = "json"
	FormatDOT   Format = "dot"
	FormatTable Format = "table"
)

var ErrUsage = errors.New("usage error")

type Options struct {
	Pattern   string // regex to compile; exclusive with Input
	Input     string // .json plain graph or .fa definition
	Stage     Stage
	Trim      bool
	Format    Format
	Output    string // file, or "-" for Context.Out
	Alphabet  string
	MaxDepth  int
	MaxStates int
	Strings   []string // inputs to validate

	Interactive bool
}

func (o Options) check() error {
	if (o.Pattern == "") == (o.Input == "") {
		return fmt.Errorf("%w: exactly one of -re and -in is required", ErrUsage)
	}
	switch o.Stage {
	case StageENFA, StageNFA, StageDFA, StageMin:
	default:
		return fmt.Errorf("%w: unknown stage %q", ErrUsage, o.Stage)
	}
	switch o.Format {
	case FormatNone, FormatJSON, FormatDOT, FormatTable:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, o.Format)
	}
	return nil
}

// Build produces the automaton described by o: it is loaded or compiled,
// then carried through the pipeline up to o.Stage.
func Build(ctx *Context, o Options) (*automaton.Automaton, error) {
	if err := o.check(); err != nil {
		return nil, err
	}
	a, err := load(ctx, o)
	if err != nil {
		return nil, err
	}

	type step struct {
		stage Stage
		run   func(*automaton.Automaton) (*automaton.Automaton, error)
	}
	steps := []step{
		{StageNFA, automaton.EliminateEpsilon},
		{StageDFA, automaton.Determinizer{MaxStates: o.MaxStates}.Determinize},
		{StageMin, automaton.Minimize},
	}
	for _, s := range steps {
		if rank(o.Stage) < rank(s.stage) {
			break
		}
		if a, err = s.run(a); err != nil {
			return nil, fmt.Errorf("%s: %w", s.stage, err)
		}
		ctx.Logger.Debug("stage done", "stage", s.stage, "kind", a.Kind(),
			"states", a.NumStates(), "transitions", a.NumTransitions())
	}
	if o.Trim {
		if a, err = automaton.Trim(a); err != nil {
			return nil, err
		}
		ctx.Logger.Debug("trimmed", "states", a.NumStates())
	}
	return a, nil
}

func rank(s Stage) int {
	switch s {
	case StageNFA:
		return 1
	case StageDFA:
		return 2
	case StageMin:
		return 3
	}
	return 0
}

func load(ctx *Context, o Options) (*automaton.Automaton, error) {
	if o.Pattern != "" {
		p := regex.Parser{Alphabet: o.Alphabet, MaxDepth: o.MaxDepth}
		a, err := p.Compile(o.Pattern)
		if err != nil {
			return nil, err
		}
		ctx.Logger.Debug("compiled", "pattern", o.Pattern, "states", a.NumStates(),
			"transitions", a.NumTransitions())
		return a, nil
	}
	data, err := os.ReadFile(o.Input)
	if err != nil {
		return nil, err
	}
	var a *automaton.Automaton
	if strings.EqualFold(filepath.Ext(o.Input), ".json") {
		var g automaton.PlainGraph
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("%s: %w", o.Input, err)
		}
		a, err = automaton.FromPlainGraph(g)
	} else {
		a, err = fadef.Parse(o.Input, string(data))
	}
	if err != nil {
		return nil, err
	}
	ctx.Logger.Debug("loaded", "file", o.Input, "kind", a.Kind(), "states", a.NumStates())
	return a, nil
}

// Run builds the automaton, writes it in the requested format and prints a
// verdict for every string in o.Strings, then hands over to the REPL when
// o.Interactive is set.
func Run(ctx *Context, o Options) error {
	a, err := Build(ctx, o)
	if err != nil {
		return err
	}
	if o.Format != FormatNone {
		if err := writeOutput(ctx, o, a); err != nil {
			return err
		}
	}
	for _, s := range o.Strings {
		ok, err := automaton.Validate(a, s)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.Out, "%s\t%q\n", verdict(ok), s)
	}
	if o.Interactive {
		return REPL(ctx, a)
	}
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "accept"
	}
	return "reject"
}

func writeOutput(ctx *Context, o Options, a *automaton.Automaton) error {
	if o.Output == "" || o.Output == "-" {
		return Write(ctx.Out, o.Format, a)
	}
	f, err := os.Create(o.Output)
	if err != nil {
		return err
	}
	if err := Write(f, o.Format, a); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	ctx.Logger.Info("written", "file", o.Output, "format", o.Format)
	return nil
}

// Write renders a in format f.
func Write(w io.Writer, f Format, a *automaton.Automaton) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(automaton.ToPlainGraph(a))
	case FormatDOT:
		WriteDOT(w, automaton.ToPlainGraph(a))
	case FormatTable:
		WriteTable(w, a)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, f)
	}
	return nil
}
