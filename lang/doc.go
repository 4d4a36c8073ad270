// Package lang implements the textual front-end for the typeset layout
// language. It parses a DSL expression together with a positional list of
// previously constructed layout values and produces a single layout value
// for the rendering engine.
//
// # Grammar
//
// Informal EBNF:
//
//	Expression → Operand (Infix Expression)?
//	Operand    → Prefix Operand | Primary
//	Primary    → index | text | '(' Expression ')'
//	Prefix     → 'fix' | 'grp' | 'seq' | 'nest' | 'pack'
//	Infix      → '@' | '@@' | '&' | '+' | '!&' | '!+'
//	index      → decimal integer, a 0-based argument position
//	text       → double-quoted string literal with Go escape sequences
//
// Comments run from '#' to end of line. Whitespace is insignificant.
//
// All six infix operators share one precedence tier and associate to the
// right: a @ b @ c parses as a @ (b @ c). Prefix operators bind tighter
// than any infix operator: fix a & b parses as (fix a) & b.
//
// # Operators
//
//	fix x    render x without reflowing
//	grp x    choose flat or broken layout for x atomically
//	seq x    break all of x if any part of x breaks
//	nest x   indent x one tab stop deeper
//	pack x   align continuation lines of x to its start column
//	l @ r    l above r, one line break
//	l @@ r   l above r, blank line between
//	l & r    l beside r, no padding
//	l + r    l beside r, single space padding
//	l !& r   l beside r, no padding, never breaks between them
//	l !+ r   l beside r, padded, never breaks between them
//
// # Example
//
//	lang.Parse(ctx, `grp (0 + "=" + nest 1)`, name, value)
//
// parses the expression, substitutes the name and value layouts for the
// index atoms, and returns the composed layout.
//
// Parsing and interpretation are synchronous and allocate no shared
// mutable state. Parsed trees for identical inputs are cached and may be
// shared freely across goroutines.
package lang
