package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render produces printable text for a compiled document.
//
// Each document line renders independently. At the head of a line the
// first emission indents to the level established by enclosing Nest and
// Pack regions, rounded up to the next tab stop for Nest and pinned to the
// region's starting column for Pack; text already placed on the line
// suppresses the offset. Within a line, unfixed compositions are break
// opportunities: the renderer breaks greedily when the next unbreakable
// segment would exceed width, and whenever a Seq region has already
// broken.
func Render(doc *Doc, tab, width int) string {
	r := &renderer{tab: tab, width: width, marks: make(map[int]int)}

	for i, line := range doc.lines {
		if i > 0 {
			r.sb.WriteByte('\n')
		}

		r.state = state{head: true}

		if line.obj != nil {
			r.visit(line.obj)
		}
	}

	return r.sb.String()
}

// Print renders a layout with conventional defaults (2-column tab stops,
// 80-column width).
func Print(l *Layout) string {
	return Render(Compile(l), 2, 80)
}

// state is the per-line render state threaded through object visits.
type state struct {
	head bool // at head of line, indentation not yet emitted
	line bool // forced-break mode (inside a broken Seq)
	flat bool // no-break mode (inside a fitting Grp or Seq)
	lvl  int  // indentation level for lines created by breaks
	pos  int  // current column
}

type renderer struct {
	sb    strings.Builder
	state state
	tab   int
	width int
	marks map[int]int // Pack index to pinned column
}

// emit writes pad spaces then data, applying head-of-line indentation.
func (r *renderer) emit(pad int, data string) {
	if r.state.head {
		if off := r.state.lvl - r.state.pos; off > 0 {
			r.sb.WriteString(strings.Repeat(" ", off))
			r.state.pos += off
		}

		r.state.head = false
	}

	if pad > 0 {
		r.sb.WriteString(strings.Repeat(" ", pad))
		r.state.pos += pad
	}

	r.sb.WriteString(data)
	r.state.pos += lipgloss.Width(data)
}

func (r *renderer) visit(obj *object) {
	switch obj.kind {
	case objText:
		r.emit(0, obj.text)

	case objFix:
		r.visitFix(obj.fix, 0)

	case objGrp:
		// Atomic choice: flat when the whole group fits from its start
		// column, otherwise render the group in whatever mode already
		// applies.
		if !r.state.flat && r.fits(r.column()+measure(obj.child)) {
			saved := r.state.flat
			r.state.flat = true
			r.visit(obj.child)
			r.state.flat = saved

			return
		}

		r.visit(obj.child)

	case objSeq:
		// All-or-nothing: flat when it fits from its start column,
		// otherwise every composition inside breaks.
		if !r.state.flat && !r.fits(r.column()+measure(obj.child)) {
			saved := r.state.line
			r.state.line = true
			r.visit(obj.child)
			r.state.line = saved

			return
		}

		r.visit(obj.child)

	case objNest:
		saved := r.state.lvl
		r.state.lvl = r.indent(r.state.lvl)
		r.visit(obj.child)
		r.state.lvl = saved

	case objPack:
		col, ok := r.marks[obj.index]
		if !ok {
			col = r.column()
			r.marks[obj.index] = col
		}

		saved := r.state.lvl
		r.state.lvl = col
		r.visit(obj.child)
		r.state.lvl = saved

	case objComp:
		r.visit(obj.left)

		pad := 0
		if obj.pad {
			pad = 1
		}

		if !r.state.flat &&
			(r.state.line || !r.fits(r.state.pos+pad+segment(obj.right))) {
			r.sb.WriteByte('\n')
			r.state.head = true
			r.state.pos = 0
			r.visit(obj.right)

			return
		}

		if pad > 0 {
			r.emit(pad, "")
		}

		r.visit(obj.right)
	}
}

// visitFix emits a non-reflowable subtree left to right.
func (r *renderer) visitFix(f *fixObj, pad int) {
	if f == nil {
		return
	}

	if f.left == nil && f.right == nil {
		r.emit(pad, f.text)

		return
	}

	r.visitFix(f.left, pad)

	rightPad := 0
	if f.pad {
		rightPad = 1
	}

	r.visitFix(f.right, rightPad)
}

// fits reports whether a line ending at column end stays within width.
func (r *renderer) fits(end int) bool { return end <= r.width }

// column returns the column at which the next emission would begin.
func (r *renderer) column() int {
	if r.state.head && r.state.lvl > r.state.pos {
		return r.state.lvl
	}

	return r.state.pos
}

// indent rounds a level up to the next tab stop.
func (r *renderer) indent(lvl int) int {
	if r.tab <= 0 {
		return lvl
	}

	return lvl + (r.tab - lvl%r.tab)
}

// measure returns the flat width of an object rendered without breaks.
func measure(obj *object) int {
	switch obj.kind {
	case objText:
		return lipgloss.Width(obj.text)

	case objFix:
		return measureFix(obj.fix)

	case objGrp, objSeq, objNest, objPack:
		return measure(obj.child)

	case objComp:
		pad := 0
		if obj.pad {
			pad = 1
		}

		return measure(obj.left) + pad + measure(obj.right)

	default:
		return 0
	}
}

func measureFix(f *fixObj) int {
	if f == nil {
		return 0
	}

	if f.left == nil && f.right == nil {
		return lipgloss.Width(f.text)
	}

	pad := 0
	if f.pad {
		pad = 1
	}

	return measureFix(f.left) + pad + measureFix(f.right)
}

// segment returns the width of an object up to its first break opportunity:
// the stretch that must fit on the current line if no break is taken here.
func segment(obj *object) int {
	switch obj.kind {
	case objComp:
		return segment(obj.left)

	case objSeq, objNest, objPack:
		return segment(obj.child)

	case objGrp:
		// Groups are atomic: the whole group is one segment.
		return measure(obj.child)

	default:
		return measure(obj)
	}
}
