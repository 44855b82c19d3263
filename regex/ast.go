package regex

import (
	"fmt"
	"strings"
)

type NodeKind int

const (
	KindEmpty   NodeKind = iota // ε, matches only the empty string
	KindLiteral                 // single symbol
	KindConcat
	KindUnion
	KindStar
)

func (k NodeKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindLiteral:
		return "Literal"
	case KindConcat:
		return "Concat"
	case KindUnion:
		return "Union"
	case KindStar:
		return "Star"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is one operator of a parsed expression. Star keeps its operand in
// Left.
type Node struct {
	Kind   NodeKind
	Symbol rune // for KindLiteral
	Left   *Node
	Right  *Node
	Pos    int // byte offset of the construct in the pattern
}

func Literal(r rune) *Node { return &Node{Kind: KindLiteral, Symbol: r} }
func Empty() *Node { return &Node{Kind: KindEmpty} }
func Concat(left, right *Node) *Node { return &Node{Kind: KindConcat, Left: left, Right: right} }
func Union(left, right *Node) *Node { return &Node{Kind: KindUnion, Left: left, Right: right} }
func Star(child *Node) *Node { return &Node{Kind: KindStar, Left: child} }

// Size counts the nodes of the tree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// String renders the tree back to pattern syntax, parenthesized just enough
// to reparse to the same shape.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

// precedence levels used when printing
const (
	pUnion = iota + 1
	pConcat
	pStar
)

func (n *Node) write(b *strings.Builder, outer int) {
	if n == nil {
		return
	}
	wrap := func(own int, body func()) {
		if own < outer {
			b.WriteByte('(')
			body()
			b.WriteByte(')')
			return
		}
		body()
	}
	switch n.Kind {
	case KindEmpty:
		b.WriteString("ε")
	case KindLiteral:
		b.WriteRune(n.Symbol)
	case KindUnion:
		wrap(pUnion, func() {
			n.Left.write(b, pUnion)
			b.WriteByte('|')
			n.Right.write(b, pUnion+1)
		})
	case KindConcat:
		wrap(pConcat, func() {
			n.Left.write(b, pConcat)
			n.Right.write(b, pConcat+1)
		})
	case KindStar:
		n.Left.write(b, pStar+1)
		b.WriteByte('*')
	}
}
