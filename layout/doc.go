// Package layout implements the typeset layout engine: an immutable tree of
// layout primitives, a compiler that normalizes a layout into a
// line-structured document, and a greedy width-aware renderer.
//
// # Primitives
//
// A [Layout] is built from nine constructors:
//
//   - [Null]: the empty layout, identity under composition
//   - [Text]: literal text
//   - [Fix]: the subtree never reflows
//   - [Grp]: compositions in the subtree break all-or-nothing
//   - [Seq]: once any composition in the subtree breaks, all of them break
//   - [Nest]: continuation lines in the subtree indent one tab stop
//   - [Pack]: continuation lines in the subtree align at the column where
//     the subtree began
//   - [Line]: vertical composition with a forced line break
//   - [Comp]: horizontal composition; padded inserts one space, fixed
//     forbids breaking between the operands
//
// # Compile and render
//
// [Compile] rewrites a layout into a [Doc]: a spine of document lines where
// every forced break is explicit and compositions no longer span lines.
// [Render] walks the compiled document and produces printable text, breaking
// unfixed compositions greedily when the current line would exceed the
// target width. Indentation introduced by [Nest] and [Pack] applies at the
// head of each line produced by such a break.
//
// The fitting policy is owned entirely by this package; the lang package
// consumes only the constructor signatures.
package layout
