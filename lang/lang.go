package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/typeset/layout"
	"github.com/ardnew/typeset/log"
)

// DefaultMaxDepth bounds expression nesting (parentheses and prefix
// chains) during parsing.
const DefaultMaxDepth = 200

// options configures a single parse or interpret call.
type options struct {
	logger   log.Logger
	grammar  Grammar
	maxDepth int
	custom   bool // true when a non-default grammar or depth is set
}

// Option applies a configuration option to a parse call.
type Option func(*options)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithGrammar substitutes a custom operator table. Calls with a custom
// grammar bypass the parse cache.
func WithGrammar(g Grammar) Option {
	return func(o *options) {
		o.grammar = g
		o.custom = true
	}
}

// WithMaxDepth sets the maximum expression nesting depth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
		o.custom = o.custom || depth != DefaultMaxDepth
	}
}

func makeOptions(opts ...Option) options {
	o := options{
		grammar:  DefaultGrammar(),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Parse parses a DSL expression and interprets it against the layout
// engine, substituting args for index atoms in the order given. This is
// the primary entry point.
func Parse(
	ctx context.Context,
	input string,
	args ...*layout.Layout,
) (*layout.Layout, error) {
	return ParseWith(ctx, input, args)
}

// ParseWith is Parse with explicit options.
func ParseWith(
	ctx context.Context,
	input string,
	args []*layout.Layout,
	opts ...Option,
) (*layout.Layout, error) {
	root, err := ParseSyntax(ctx, input, opts...)
	if err != nil {
		return nil, err
	}

	o := makeOptions(opts...)
	o.logger.TraceContext(ctx, "interpret",
		slog.String("syntax", root.String()),
		slog.Int("args", len(args)),
	)

	return Interpret(root, layoutEngine{}, args...)
}

// ParseSyntax parses a DSL expression into its syntax tree without
// interpreting it. Identical inputs under default options share one
// cached tree; the tree is immutable and safe for concurrent reuse.
func ParseSyntax(
	ctx context.Context,
	input string,
	opts ...Option,
) (*Syntax, error) {
	o := makeOptions(opts...)

	if o.custom {
		o.logger.TraceContext(ctx, "cache bypass",
			slog.Int("max_depth", o.maxDepth),
		)

		return parseSyntax(input, o.grammar, o.maxDepth)
	}

	return parseSyntaxCached(ctx, input, o)
}

// layoutEngine adapts the layout package's constructors to the Engine
// interface consumed by the interpreter.
type layoutEngine struct{}

func (layoutEngine) Null() *layout.Layout         { return layout.Null() }
func (layoutEngine) Text(s string) *layout.Layout { return layout.Text(s) }

func (layoutEngine) Fix(x *layout.Layout) *layout.Layout  { return layout.Fix(x) }
func (layoutEngine) Grp(x *layout.Layout) *layout.Layout  { return layout.Grp(x) }
func (layoutEngine) Seq(x *layout.Layout) *layout.Layout  { return layout.Seq(x) }
func (layoutEngine) Nest(x *layout.Layout) *layout.Layout { return layout.Nest(x) }
func (layoutEngine) Pack(x *layout.Layout) *layout.Layout { return layout.Pack(x) }

func (layoutEngine) Line(l, r *layout.Layout) *layout.Layout {
	return layout.Line(l, r)
}

func (layoutEngine) Comp(l, r *layout.Layout, pad, fix bool) *layout.Layout {
	return layout.Comp(l, r, pad, fix)
}
