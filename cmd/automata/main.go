package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"automata/internal/cli"
)

func main() {
	var o cli.Options
	var stage, format string
	var verbose bool
	flag.StringVar(&o.Pattern, "re", "", "regular expression to compile")
	flag.StringVar(&o.Input, "in", "", "automaton file (.json plain graph or .fa definition)")
	flag.StringVar(&stage, "stage", "enfa", "pipeline stage: enfa, nfa, dfa or min")
	flag.BoolVar(&o.Trim, "trim", false, "drop states unreachable from the start state")
	flag.StringVar(&format, "format", "", "print the automaton as json, dot or table")
	flag.StringVar(&o.Output, "o", "-", "output file for -format")
	flag.StringVar(&o.Alphabet, "alphabet", "", "restrict regex literals to these characters")
	flag.IntVar(&o.MaxDepth, "max-depth", 0, "maximum regex nesting depth (0 = unlimited)")
	flag.IntVar(&o.MaxStates, "max-states", 0, "maximum DFA states (0 = unlimited)")
	flag.BoolVar(&o.Interactive, "repl", false, "validate strings interactively")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s (-re <pattern> | -in <file>) [flags] [string ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	o.Stage = cli.Stage(stage)
	o.Format = cli.Format(format)
	o.Strings = flag.Args()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := &cli.Context{Out: os.Stdout, Logger: logger}

	err := cli.Run(ctx, o)
	if errors.Is(err, cli.ErrUsage) {
		logger.Error(err.Error())
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}
