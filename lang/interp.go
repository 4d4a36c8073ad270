package lang

import "log/slog"

// Engine supplies the layout primitives invoked during interpretation.
// The interpreter never inspects the values it builds; it only threads
// them between constructor calls. Implementations must tolerate the same
// value appearing as an operand more than once.
type Engine[T any] interface {
	// Null returns the empty layout.
	Null() T

	// Text returns a literal text layout.
	Text(s string) T

	// Unary transforms.
	Fix(x T) T
	Grp(x T) T
	Seq(x T) T
	Nest(x T) T
	Pack(x T) T

	// Line composes left above right with one line break.
	Line(l, r T) T

	// Comp composes left beside right, optionally padded or fixed.
	Comp(l, r T, pad, fix bool) T
}

// Interpret evaluates a syntax tree bottom-up against the given engine.
// Index nodes resolve positionally into args; an index at or beyond
// len(args) fails with ErrIndexRange naming the offending index. The
// first failure in any subtree aborts the whole evaluation.
func Interpret[T any](root *Syntax, engine Engine[T], args ...T) (T, error) {
	var zero T

	if root == nil {
		return zero, ErrInternal.With(slog.String("node", "nil"))
	}

	switch root.Kind {
	case SyntaxIndex:
		if root.Index < 0 || root.Index >= len(args) {
			return zero, ErrIndexRange.With(
				slog.Int("index", root.Index),
				slog.Int("args", len(args)),
			)
		}

		return args[root.Index], nil

	case SyntaxText:
		return engine.Text(root.Text), nil

	case SyntaxFix, SyntaxGrp, SyntaxSeq, SyntaxNest, SyntaxPack:
		child, err := Interpret(root.Left, engine, args...)
		if err != nil {
			return zero, err
		}

		switch root.Kind {
		case SyntaxFix:
			return engine.Fix(child), nil
		case SyntaxGrp:
			return engine.Grp(child), nil
		case SyntaxSeq:
			return engine.Seq(child), nil
		case SyntaxNest:
			return engine.Nest(child), nil
		default:
			return engine.Pack(child), nil
		}

	case SyntaxLine, SyntaxDoubleLine,
		SyntaxComp, SyntaxPadComp, SyntaxFixComp, SyntaxFixPadComp:
		left, err := Interpret(root.Left, engine, args...)
		if err != nil {
			return zero, err
		}

		right, err := Interpret(root.Right, engine, args...)
		if err != nil {
			return zero, err
		}

		switch root.Kind {
		case SyntaxLine:
			return engine.Line(left, right), nil

		case SyntaxDoubleLine:
			// Sugar for a line break onto an empty line above the right
			// operand.
			return engine.Line(left, engine.Line(engine.Null(), right)), nil

		case SyntaxComp:
			return engine.Comp(left, right, false, false), nil

		case SyntaxPadComp:
			return engine.Comp(left, right, true, false), nil

		case SyntaxFixComp:
			return engine.Comp(left, right, false, true), nil

		default:
			return engine.Comp(left, right, true, true), nil
		}

	default:
		return zero, ErrInternal.With(slog.String("kind", root.Kind.String()))
	}
}
