package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/typeset/lang"
	"github.com/ardnew/typeset/layout"
)

// Render evaluates a layout expression and renders it to the configured
// width. Positional arguments are themselves layout expressions, bound to
// index atoms in the source in the order given.
type Render struct {
	Args   []string `arg:"" help:"Layout expressions bound as indexed arguments" name:"args" optional:""`
	Source string   `       help:"Source input file or '-' for stdin"                        default:"-" short:"f"`

	Tab   int `default:"2"  help:"Tab stop width for nested regions" short:"t"`
	Width int `default:"80" help:"Maximum render width in columns"   short:"w"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	args, err := parseArgs(ctx, r.Args)
	if err != nil {
		return err
	}

	file, err := openSource(r.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	l, err := lang.ParseReader(ctx, bufio.NewReader(file), args)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "render"))
	}

	_, err = fmt.Fprintln(
		stdout(ctx),
		layout.Render(layout.Compile(l), r.Tab, r.Width),
	)

	return err
}

// parseArgs evaluates each argument expression into the layout it denotes.
// Argument expressions cannot themselves contain index atoms, so they are
// parsed with no bindings.
func parseArgs(
	ctx context.Context,
	exprs []string,
) ([]*layout.Layout, error) {
	if len(exprs) == 0 {
		return nil, nil
	}

	args := make([]*layout.Layout, len(exprs))

	for i, src := range exprs {
		l, err := lang.Parse(ctx, src)
		if err != nil {
			return nil, ErrParseArgument.Wrap(err).
				With(slog.Int("argument", i))
		}

		args[i] = l
	}

	return args, nil
}
