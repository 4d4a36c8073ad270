package lang

import (
	"strconv"
	"strings"
)

// SyntaxKind tags the variant of a Syntax node.
type SyntaxKind int

const (
	// SyntaxIndex references a caller-supplied argument by position.
	SyntaxIndex SyntaxKind = iota

	// SyntaxText holds a literal string payload.
	SyntaxText

	// Unary variants, each owning one child.
	SyntaxFix
	SyntaxGrp
	SyntaxSeq
	SyntaxNest
	SyntaxPack

	// Binary variants, each owning a left and right child.
	SyntaxLine
	SyntaxDoubleLine
	SyntaxComp
	SyntaxPadComp
	SyntaxFixComp
	SyntaxFixPadComp
)

// String returns the variant name.
func (k SyntaxKind) String() string {
	switch k {
	case SyntaxIndex:
		return "Index"
	case SyntaxText:
		return "Text"
	case SyntaxFix:
		return "Fix"
	case SyntaxGrp:
		return "Grp"
	case SyntaxSeq:
		return "Seq"
	case SyntaxNest:
		return "Nest"
	case SyntaxPack:
		return "Pack"
	case SyntaxLine:
		return "Line"
	case SyntaxDoubleLine:
		return "DoubleLine"
	case SyntaxComp:
		return "Comp"
	case SyntaxPadComp:
		return "PadComp"
	case SyntaxFixComp:
		return "FixComp"
	case SyntaxFixPadComp:
		return "FixPadComp"
	default:
		return "Unknown"
	}
}

// Prefix reports whether the variant is a unary prefix operator.
func (k SyntaxKind) Prefix() bool {
	return k >= SyntaxFix && k <= SyntaxPack
}

// Infix reports whether the variant is a binary infix operator.
func (k SyntaxKind) Infix() bool {
	return k >= SyntaxLine && k <= SyntaxFixPadComp
}

// Syntax is one node of the abstract syntax tree. Each node exclusively
// owns its children; the tree is built once by the parser and never
// mutated, so it may be shared across goroutines after construction.
//
// Exactly one field group is meaningful per Kind: Index for SyntaxIndex,
// Text for SyntaxText, Left for unary variants, Left and Right for binary
// variants.
type Syntax struct {
	Kind  SyntaxKind
	Index int
	Text  string
	Left  *Syntax
	Right *Syntax
}

// Equal reports whether two trees have identical structure and payloads.
func (n *Syntax) Equal(o *Syntax) bool {
	if n == nil || o == nil {
		return n == o
	}

	if n.Kind != o.Kind || n.Index != o.Index || n.Text != o.Text {
		return false
	}

	return n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
}

// String renders the node in canonical DSL surface syntax. Parsing the
// result reproduces an identical tree.
func (n *Syntax) String() string {
	var sb strings.Builder

	n.write(&sb)

	return sb.String()
}

func (n *Syntax) write(sb *strings.Builder) {
	if n == nil {
		return
	}

	switch n.Kind {
	case SyntaxIndex:
		sb.WriteString(strconv.Itoa(n.Index))

	case SyntaxText:
		sb.WriteString(strconv.Quote(n.Text))

	case SyntaxFix, SyntaxGrp, SyntaxSeq, SyntaxNest, SyntaxPack:
		sb.WriteString(prefixToken(n.Kind))
		sb.WriteByte(' ')
		n.Left.writeOperand(sb)

	default:
		// Right-associative, one tier: the left operand of an infix node
		// needs parentheses when it is itself infix, the right never does.
		n.Left.writeOperand(sb)
		sb.WriteByte(' ')
		sb.WriteString(infixToken(n.Kind))
		sb.WriteByte(' ')
		n.Right.write(sb)
	}
}

func (n *Syntax) writeOperand(sb *strings.Builder) {
	if n != nil && n.Kind.Infix() {
		sb.WriteByte('(')
		n.write(sb)
		sb.WriteByte(')')

		return
	}

	n.write(sb)
}

func prefixToken(k SyntaxKind) string {
	switch k {
	case SyntaxFix:
		return "fix"
	case SyntaxGrp:
		return "grp"
	case SyntaxSeq:
		return "seq"
	case SyntaxNest:
		return "nest"
	default:
		return "pack"
	}
}

func infixToken(k SyntaxKind) string {
	switch k {
	case SyntaxLine:
		return "@"
	case SyntaxDoubleLine:
		return "@@"
	case SyntaxComp:
		return "&"
	case SyntaxPadComp:
		return "+"
	case SyntaxFixComp:
		return "!&"
	default:
		return "!+"
	}
}
