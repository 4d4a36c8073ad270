package layout

import (
	"strconv"
	"strings"
)

// Kind identifies the variant of a Layout node.
type Kind int

const (
	// KindNull is the empty layout.
	KindNull Kind = iota

	// KindText is a literal text layout.
	KindText

	// KindFix marks a subtree as non-reflowable.
	KindFix

	// KindGrp marks a subtree as an atomically-chosen alternative group.
	KindGrp

	// KindSeq marks a subtree as an all-or-nothing break sequence.
	KindSeq

	// KindNest marks a subtree for indented continuation lines.
	KindNest

	// KindPack marks a subtree for margin-aligned continuation lines.
	KindPack

	// KindLine is a vertical composition with a forced line break.
	KindLine

	// KindComp is a horizontal composition of two layouts.
	KindComp
)

// String returns a string representation of the layout kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindText:
		return "Text"
	case KindFix:
		return "Fix"
	case KindGrp:
		return "Grp"
	case KindSeq:
		return "Seq"
	case KindNest:
		return "Nest"
	case KindPack:
		return "Pack"
	case KindLine:
		return "Line"
	case KindComp:
		return "Comp"
	default:
		return "Unknown"
	}
}

// Layout is an immutable description of typeset content. Construct values
// with the package-level constructors; the zero value is not meaningful.
//
// Layouts are handles with shared ownership semantics: duplicating a
// reference has no side effect, and the same Layout may appear in multiple
// positions of a larger tree.
type Layout struct {
	kind        Kind
	text        string  // KindText
	left, right *Layout // unary kinds use left only
	pad, fix    bool    // KindComp
}

// Kind returns the variant of the layout node.
func (l *Layout) Kind() Kind { return l.kind }

// nullLayout is the shared instance returned by Null.
var nullLayout = &Layout{kind: KindNull}

// Null returns the empty layout.
func Null() *Layout { return nullLayout }

// Text returns a literal text layout.
func Text(data string) *Layout {
	return &Layout{kind: KindText, text: data}
}

// Fix marks the layout as non-reflowable.
func Fix(l *Layout) *Layout {
	return &Layout{kind: KindFix, left: l}
}

// Grp marks the layout as an atomically-chosen alternative group.
func Grp(l *Layout) *Layout {
	return &Layout{kind: KindGrp, left: l}
}

// Seq marks the layout as an all-or-nothing break sequence.
func Seq(l *Layout) *Layout {
	return &Layout{kind: KindSeq, left: l}
}

// Nest marks the layout for indented continuation lines.
func Nest(l *Layout) *Layout {
	return &Layout{kind: KindNest, left: l}
}

// Pack marks the layout for margin-aligned continuation lines.
func Pack(l *Layout) *Layout {
	return &Layout{kind: KindPack, left: l}
}

// Line composes two layouts vertically with a forced line break.
func Line(left, right *Layout) *Layout {
	return &Layout{kind: KindLine, left: left, right: right}
}

// Comp composes two layouts horizontally. If pad is set a single space
// separates the operands; if fix is set the renderer never breaks between
// them.
func Comp(left, right *Layout, pad, fix bool) *Layout {
	return &Layout{kind: KindComp, left: left, right: right, pad: pad, fix: fix}
}

// String renders the layout in the DSL surface syntax. Two layouts are
// structurally identical exactly when their strings are equal.
func (l *Layout) String() string {
	var sb strings.Builder

	l.write(&sb)

	return sb.String()
}

// compToken returns the surface token for a composition's flag pair.
func compToken(pad, fix bool) string {
	switch {
	case fix && pad:
		return "!+"
	case fix:
		return "!&"
	case pad:
		return "+"
	default:
		return "&"
	}
}

func (l *Layout) write(sb *strings.Builder) {
	switch l.kind {
	case KindNull:
		sb.WriteString(`""`)

	case KindText:
		sb.WriteString(strconv.Quote(l.text))

	case KindFix, KindGrp, KindSeq, KindNest, KindPack:
		sb.WriteString(strings.ToLower(l.kind.String()))
		sb.WriteByte(' ')
		l.left.writeOperand(sb)

	case KindLine:
		l.left.writeOperand(sb)
		sb.WriteString(" @ ")
		l.right.write(sb)

	case KindComp:
		l.left.writeOperand(sb)
		sb.WriteByte(' ')
		sb.WriteString(compToken(l.pad, l.fix))
		sb.WriteByte(' ')
		l.right.write(sb)
	}
}

// writeOperand parenthesizes binary nodes so the printed form re-parses to
// the same tree under right-associative infix operators.
func (l *Layout) writeOperand(sb *strings.Builder) {
	if l.kind == KindLine || l.kind == KindComp {
		sb.WriteByte('(')
		l.write(sb)
		sb.WriteByte(')')

		return
	}

	l.write(sb)
}
