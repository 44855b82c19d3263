package regex

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"automata/automaton"
)

// ------------------------------------------------------------------- helpers

func mustParse(t *testing.T, pat string) *Node {
	t.Helper()
	n, err := Parse(pat)
	if err != nil {
		t.Fatalf("parse %q: %v", pat, err)
	}
	return n
}

func acc(t *testing.T, a *automaton.Automaton, in string, want bool) {
	t.Helper()
	got, err := automaton.Validate(a, in)
	if err != nil {
		t.Fatalf("validate %q: %v", in, err)
	}
	if got != want {
		t.Fatalf("%s on %q want %v got %v", a, in, want, got)
	}
}

func words(alpha string, maxLen int) []string {
	out := []string{""}
	last := []string{""}
	for n := 1; n <= maxLen; n++ {
		var next []string
		for _, w := range last {
			for _, r := range alpha {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		last = next
	}
	return out
}

// stages returns the automaton for pat at every pipeline stage.
func stages(t *testing.T, pat string) map[string]*automaton.Automaton {
	t.Helper()
	enfa := MustCompile(pat)
	nfa, err := automaton.EliminateEpsilon(enfa)
	if err != nil {
		t.Fatal(err)
	}
	dfa, err := automaton.Determinize(nfa)
	if err != nil {
		t.Fatal(err)
	}
	min, err := automaton.Minimize(dfa)
	if err != nil {
		t.Fatal(err)
	}
	return map[string]*automaton.Automaton{"enfa": enfa, "nfa": nfa, "dfa": dfa, "min": min}
}

// sameTree compares shape and symbols, ignoring positions.
func sameTree(x, y *Node) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.Kind == y.Kind && x.Symbol == y.Symbol && sameTree(x.Left, y.Left) && sameTree(x.Right, y.Right)
}

func parseErr(t *testing.T, pat string) *ParseError {
	t.Helper()
	_, err := Parse(pat)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("parse %q: want ParseError, got %v", pat, err)
	}
	return pe
}

// ------------------------------------------------------------------- lexer

func TestTokenize(t *testing.T) {
	toks, err := tokenize("a(b|#)*ε")
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		typ tokenType
		pos int
	}{
		{tLiteral, 0}, {tLParen, 1}, {tLiteral, 2}, {tUnion, 3}, {tEpsilon, 4},
		{tRParen, 5}, {tStar, 6}, {tEpsilon, 7}, {tEOF, 9},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].typ != w.typ || toks[i].pos != w.pos {
			t.Fatalf("tok %d want %v@%d got %v@%d", i, w.typ, w.pos, toks[i].typ, toks[i].pos)
		}
	}
	if toks[2].ch != 'b' {
		t.Fatalf("literal %q", toks[2].ch)
	}
}

func TestTokenizeUnrecognized(t *testing.T) {
	_, err := tokenize("ab$c")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Pos != 2 {
		t.Fatalf("want ParseError at 2, got %v", err)
	}
	if !strings.Contains(pe.Found, "$") {
		t.Fatalf("found %q", pe.Found)
	}
}

// ------------------------------------------------------------------- parser

func TestParserPrecedence(t *testing.T) {
	cases := []struct {
		pat  string
		want string
	}{
		{"a|bc*", "a|bc*"},
		{"ab|c", "ab|c"},
		{"(ab)*", "(ab)*"},
		{"a(b|c)*", "a(b|c)*"},
		{"((a))", "a"},
		{"abc", "abc"},
		{"a|b|c", "a|b|c"},
		{"a**", "a**"},
		{"(a|ε)b", "(a|ε)b"},
		{"#", "ε"},
	}
	for _, c := range cases {
		if got := mustParse(t, c.pat).String(); got != c.want {
			t.Fatalf("%q printed as %q want %q", c.pat, got, c.want)
		}
	}
}

func TestParserShape(t *testing.T) {
	a, b, c := Literal('a'), Literal('b'), Literal('c')
	cases := []struct {
		pat  string
		want *Node
	}{
		{"ab*|c", Union(Concat(a, Star(b)), c)},
		{"abc", Concat(Concat(a, b), c)}, // left-associative
		{"a|b|c", Union(Union(a, b), c)},
		{"(a|ε)b", Concat(Union(a, Empty()), b)},
		{"#*", Star(Empty())},
	}
	for _, cs := range cases {
		if n := mustParse(t, cs.pat); !sameTree(n, cs.want) {
			t.Fatalf("%q parsed as %v want %v", cs.pat, n, cs.want)
		}
	}
	n := mustParse(t, "abc")
	if n.Size() != 5 || n.Depth() != 3 {
		t.Fatalf("size %d depth %d", n.Size(), n.Depth())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		pat      string
		pos      int
		expected string
	}{
		{"(a|b", 4, "')'"},
		{"", 0, expectAtom},
		{"a|", 2, expectAtom},
		{"|a", 0, "before '|'"},
		{"*a", 0, "before '*'"},
		{"a)", 1, "end of input"},
		{"()", 1, expectAtom},
		{"a(|b)", 2, "before '|'"},
		{"a b", 1, "literal"},
	}
	for _, c := range cases {
		pe := parseErr(t, c.pat)
		if pe.Pos != c.pos || !strings.Contains(pe.Expected, c.expected) {
			t.Fatalf("%q: got %v, want pos %d expecting %s", c.pat, pe, c.pos, c.expected)
		}
	}
}

func TestParseErrorMissingParen(t *testing.T) {
	pe := parseErr(t, "(a|b")
	if pe.Found != "end of input" {
		t.Fatalf("found %q", pe.Found)
	}
}

func TestParserAlphabet(t *testing.T) {
	p := Parser{Alphabet: "ab"}
	if _, err := p.Parse("(a|b)*"); err != nil {
		t.Fatal(err)
	}
	_, err := p.Parse("abc")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Pos != 2 {
		t.Fatalf("want ParseError at 2, got %v", err)
	}
}

func TestParserMaxDepth(t *testing.T) {
	p := Parser{MaxDepth: 3}
	if _, err := p.Parse("a(b|c)"); err != nil {
		t.Fatal(err)
	}
	for _, pat := range []string{"abcd", "((((a))))"} {
		_, err := p.Parse(pat)
		var le *automaton.ResourceLimitError
		if !errors.As(err, &le) || le.Limit != 3 {
			t.Fatalf("%q: want limit error, got %v", pat, err)
		}
	}
}

// ------------------------------------------------------------------- Thompson

func TestCompileLiteral(t *testing.T) {
	a := Compile(mustParse(t, "a"))
	if a.NumStates() != 2 || a.NumTransitions() != 1 || a.Kind() != automaton.KindDFA {
		t.Fatalf("got %v", a)
	}
	if len(a.Accepting()) != 1 {
		t.Fatalf("accepting %v", a.Accepting())
	}
}

func TestCompileStateBound(t *testing.T) {
	for _, pat := range []string{"a", "ab", "a|b", "a*", "(a|b)*abb", "((a|b)(c|ε))*d", "a(b|c)*"} {
		n := mustParse(t, pat)
		a := Compile(n)
		if a.NumStates() > 2*n.Size() {
			t.Fatalf("%q: %d states for %d nodes", pat, a.NumStates(), n.Size())
		}
		if len(a.Accepting()) != 1 {
			t.Fatalf("%q: %d accepting states", pat, len(a.Accepting()))
		}
		if err := a.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCompileNil(t *testing.T) {
	a := Compile(nil)
	acc(t, a, "", false)
}

func TestCompileNilSubtree(t *testing.T) {
	// a missing operand denotes the empty language
	cases := []struct {
		n      *Node
		accept []string
		reject []string
	}{
		{Concat(nil, Literal('a')), nil, []string{"", "a"}},
		{Star(nil), []string{""}, []string{"a"}},
		{Union(Literal('a'), nil), []string{"a"}, []string{"", "aa"}},
		{Concat(Star(nil), Literal('b')), []string{"b"}, []string{"", "bb"}},
	}
	for _, c := range cases {
		a := Compile(c.n)
		if err := a.Check(); err != nil {
			t.Fatalf("%v: %v", c.n, err)
		}
		for _, w := range c.accept {
			acc(t, a, w, true)
		}
		for _, w := range c.reject {
			acc(t, a, w, false)
		}
	}
}

// ------------------------------------------------------------------- pipeline

func TestExampleBranches(t *testing.T) {
	for name, a := range stages(t, "a(b|c)*") {
		t.Run(name, func(t *testing.T) {
			acc(t, a, "a", true)
			acc(t, a, "abc", true)
			acc(t, a, "abbccb", true)
			acc(t, a, "", false)
			acc(t, a, "ba", false)
		})
	}
}

func TestExampleTextbook(t *testing.T) {
	s := stages(t, "(a|b)*abb")
	acc(t, s["dfa"], "aab", false)
	acc(t, s["dfa"], "aabb", true)
	if s["min"].NumStates() != 4 {
		t.Fatalf("minimal DFA has %d states, want 4", s["min"].NumStates())
	}
}

func TestExampleEpsilonOption(t *testing.T) {
	for name, a := range stages(t, "(a|ε)b") {
		t.Run(name, func(t *testing.T) {
			acc(t, a, "b", true)
			acc(t, a, "ab", true)
			acc(t, a, "aab", false)
		})
	}
}

// reference matcher: the standard library engine, anchored
func reference(pat string) *regexp.Regexp {
	pat = strings.NewReplacer("ε", "()", "#", "()").Replace(pat)
	return regexp.MustCompile("^(?:" + pat + ")$")
}

func TestAgainstReference(t *testing.T) {
	patterns := []string{
		"a", "ab", "a|b", "a*", "(a|b)*", "a(b|c)*", "(a|b)*abb",
		"(ab|a)*c", "(a*b*)*", "a*b*c*", "((a|b)(c|ε))*", "(a|ab)(c|bcd)",
		"(aa|b)*a", "c(a|b)*c|a",
	}
	ws := words("abc", 5)
	for _, pat := range patterns {
		ref := reference(pat)
		for name, a := range stages(t, pat) {
			for _, w := range ws {
				got, err := automaton.Validate(a, w)
				if err != nil {
					t.Fatal(err)
				}
				if want := ref.MatchString(w); got != want {
					t.Fatalf("%s of %q on %q: got %v want %v", name, pat, w, got, want)
				}
			}
		}
	}
}

func TestDeterminizeWorstCase(t *testing.T) {
	// the third symbol from the end is an a
	s := stages(t, "(a|b)*a(a|b)(a|b)")
	if got := s["min"].NumStates(); got != 8 {
		t.Fatalf("minimal DFA has %d states, want 8", got)
	}
	if s["dfa"].NumStates() > 1<<s["nfa"].NumStates() {
		t.Fatalf("subset construction exceeded 2^n")
	}
	for _, tr := range s["nfa"].Transitions() {
		if tr.Symbol.IsEpsilon() {
			t.Fatalf("ε after elimination")
		}
	}
}

func TestCompileIndependent(t *testing.T) {
	a := MustCompile("ab")
	b := MustCompile("ab")
	if a.NumStates() != b.NumStates() || a.Start() != b.Start() {
		t.Fatalf("compilations should not share numbering state")
	}
}
