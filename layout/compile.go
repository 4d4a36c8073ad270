package layout

// Doc is a compiled layout: a spine of document lines in which every forced
// break is explicit and no composition spans a line boundary.
type Doc struct {
	lines []docLine
}

// Lines reports the number of document lines, including blank lines.
func (d *Doc) Lines() int { return len(d.lines) }

// docLine is one line of a compiled document. A nil obj is a blank line.
type docLine struct {
	obj *object
}

// objKind identifies the variant of an in-line document object.
type objKind int

const (
	objText objKind = iota
	objFix
	objGrp
	objSeq
	objNest
	objPack
	objComp
)

// object is a within-line composition tree. Fixed subtrees are flattened
// into fixObj so the renderer never considers breaking inside them.
type object struct {
	kind        objKind
	text        string  // objText
	fix         *fixObj // objFix
	child       *object // objGrp, objSeq, objNest, objPack
	left, right *object // objComp
	pad         bool    // objComp
	index       int     // objPack
}

// fixObj is a non-reflowable subtree: only literal text and padded
// concatenation survive inside a fixed region.
type fixObj struct {
	text        string
	left, right *fixObj
	pad         bool
}

// compiler tracks state shared across one Compile call.
type compiler struct {
	packs int // next Pack mark index
}

// Compile normalizes a layout into a line-structured document.
//
// Normalization applies three rewrites until none fires:
//   - Null is eliminated as the identity of composition.
//   - Compositions distribute over forced line breaks, so the break rises
//     to the document spine: comp(a, line(b, c)) becomes
//     line(comp(a, b), c), and symmetrically on the left.
//   - Unary transforms distribute over forced line breaks to apply
//     per line.
//
// A Null left standing on the spine (as produced by the double-line
// desugaring line(l, line(null, r))) becomes a blank document line.
func Compile(l *Layout) *Doc {
	c := &compiler{}

	parts := flatten(l)
	doc := &Doc{lines: make([]docLine, 0, len(parts))}

	for _, part := range parts {
		doc.lines = append(doc.lines, docLine{obj: c.object(part)})
	}

	return doc
}

// flatten splits a layout on its forced line breaks, returning one layout
// per document line. No element of the result contains a KindLine node;
// blank lines are represented by the null layout.
func flatten(l *Layout) []*Layout {
	switch l.kind {
	case KindLine:
		return append(flatten(l.left), flatten(l.right)...)

	case KindFix, KindGrp, KindSeq, KindNest, KindPack:
		parts := flatten(l.left)
		for i, part := range parts {
			if part.kind == KindNull {
				continue
			}

			parts[i] = &Layout{kind: l.kind, left: part}
		}

		return parts

	case KindComp:
		left := flatten(l.left)
		right := flatten(l.right)

		if len(left) == 1 && len(right) == 1 {
			return []*Layout{joinComp(left[0], right[0], l.pad, l.fix)}
		}

		// The composition seam joins the last line of the left operand to
		// the first line of the right operand.
		seam := joinComp(left[len(left)-1], right[0], l.pad, l.fix)

		parts := make([]*Layout, 0, len(left)+len(right)-1)
		parts = append(parts, left[:len(left)-1]...)
		parts = append(parts, seam)
		parts = append(parts, right[1:]...)

		return parts

	default:
		return []*Layout{l}
	}
}

// joinComp composes two line fragments, dropping Null operands.
func joinComp(left, right *Layout, pad, fix bool) *Layout {
	if left.kind == KindNull {
		return right
	}

	if right.kind == KindNull {
		return left
	}

	return &Layout{kind: KindComp, left: left, right: right, pad: pad, fix: fix}
}

// object converts a line fragment (no KindLine nodes) into a document
// object. Returns nil for the null layout (a blank line).
func (c *compiler) object(l *Layout) *object {
	switch l.kind {
	case KindNull:
		return nil

	case KindText:
		return &object{kind: objText, text: l.text}

	case KindFix:
		return &object{kind: objFix, fix: fixed(l.left)}

	case KindGrp:
		return wrap(objGrp, c.object(l.left))

	case KindSeq:
		return wrap(objSeq, c.object(l.left))

	case KindNest:
		return wrap(objNest, c.object(l.left))

	case KindPack:
		child := c.object(l.left)
		if child == nil {
			return nil
		}

		obj := &object{kind: objPack, child: child, index: c.packs}
		c.packs++

		return obj

	case KindComp:
		if l.fix {
			return &object{kind: objFix, fix: fixed(l)}
		}

		left, right := c.object(l.left), c.object(l.right)
		if left == nil {
			return right
		}

		if right == nil {
			return left
		}

		return &object{kind: objComp, left: left, right: right, pad: l.pad}

	default:
		return nil
	}
}

// wrap applies a unary object kind, eliding wrappers around nothing.
func wrap(kind objKind, child *object) *object {
	if child == nil {
		return nil
	}

	return &object{kind: kind, child: child}
}

// fixed flattens a subtree into its non-reflowable form. Breakability
// transforms (Grp, Seq, Nest, Pack) are meaningless inside a fixed region
// and reduce to their children.
func fixed(l *Layout) *fixObj {
	switch l.kind {
	case KindNull:
		return nil

	case KindText:
		return &fixObj{text: l.text}

	case KindFix, KindGrp, KindSeq, KindNest, KindPack:
		return fixed(l.left)

	case KindComp:
		left, right := fixed(l.left), fixed(l.right)
		if left == nil {
			return right
		}

		if right == nil {
			return left
		}

		return &fixObj{left: left, right: right, pad: l.pad}

	default:
		return nil
	}
}
