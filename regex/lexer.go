package regex

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokenType int

const (
	tEOF     tokenType = iota
	tLiteral           // letter or digit
	tEpsilon           // ε or #
	tLParen            // (
	tRParen            // )
	tStar              // *
	tUnion             // |
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "end of input"
	case tLiteral:
		return "literal"
	case tEpsilon:
		return "ε"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tStar:
		return "'*'"
	case tUnion:
		return "'|'"
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	typ tokenType
	ch  rune // for tLiteral
	pos int  // byte offset in the pattern
}

func (t token) describe() string {
	if t.typ == tLiteral {
		return fmt.Sprintf("%q", t.ch)
	}
	return t.typ.String()
}

var (
	lexOnce sync.Once
	lexer   *lexmachine.Lexer
	lexErr  error
)

// patternLexer compiles the token machine once; scanners over it are
// independent and can be used from several goroutines.
func patternLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[a-zA-Z0-9]`), tokAction(tLiteral))
		l.Add([]byte(`ε`), tokAction(tEpsilon))
		l.Add([]byte(`#`), tokAction(tEpsilon))
		l.Add([]byte(`[(]`), tokAction(tLParen))
		l.Add([]byte(`[)]`), tokAction(tRParen))
		l.Add([]byte(`[*]`), tokAction(tStar))
		l.Add([]byte(`[|]`), tokAction(tUnion))
		if err := l.Compile(); err != nil {
			lexErr = err
			return
		}
		lexer = l
	})
	return lexer, lexErr
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		r, _ := utf8.DecodeRune(m.Bytes)
		return token{typ: typ, ch: r, pos: m.TC}, nil
	}
}

// tokenize scans the whole pattern. The returned slice always ends in tEOF.
func tokenize(pattern string) ([]token, error) {
	lx, err := patternLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(pattern))
	if err != nil {
		return nil, err
	}
	var toks []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			pos := scanner.TC
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) {
				pos = ui.StartTC
			}
			if pos > len(pattern) {
				pos = len(pattern)
			}
			r, _ := utf8.DecodeRuneInString(pattern[pos:])
			return nil, &ParseError{
				Pos:      pos,
				Expected: "literal, ε, '(', ')', '*' or '|'",
				Found:    fmt.Sprintf("unrecognized character %q", r),
			}
		}
		toks = append(toks, tok.(token))
	}
	return append(toks, token{typ: tEOF, pos: len(pattern)}), nil
}
