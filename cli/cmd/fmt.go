package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/typeset/lang"
)

// Fmt parses a layout expression and reprints it in the chosen format
// without evaluating it.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Tree   Tree   `cmd:""                    help:"Format as an indented syntax tree."`
}

// parseSource reads the complete source and parses it into a syntax tree.
func parseSource(ctx context.Context, path string) (*lang.Syntax, error) {
	file, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(bufio.NewReader(file))
	if err != nil {
		return nil, err
	}

	return lang.ParseSyntax(ctx, string(data))
}

// Native formats input as canonical source syntax.
type Native struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Native) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	syn, err := parseSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "native"))
	}

	_, err = fmt.Fprintln(stdout(ctx), syn.String())

	return err
}

// JSON parses input and outputs the syntax tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	syn, err := parseSource(ctx, j.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "json"))
	}

	data, err := json.MarshalIndent(
		syn.ToMap(), "", strings.Repeat(" ", j.Indent),
	)
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	_, err = fmt.Fprintln(stdout(ctx), string(data))

	return err
}

// YAML parses input and outputs the syntax tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	syn, err := parseSource(ctx, y.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "yaml"))
	}

	data, err := yaml.MarshalWithOptions(
		syn.ToMap(), yaml.Indent(y.Indent),
	)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = stdout(ctx).Write(data)

	return err
}

// Tree formats input as an indented tree, one syntax node per line.
type Tree struct {
	Indent int `default:"2" help:"Indent width per tree level" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	syn, err := parseSource(ctx, t.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "tree"))
	}

	var b strings.Builder

	writeTree(&b, syn, 0, t.Indent)

	_, err = io.WriteString(stdout(ctx), b.String())

	return err
}

// writeTree recursively prints one node per line, children indented one
// level deeper than their parent.
func writeTree(b *strings.Builder, s *lang.Syntax, depth, indent int) {
	if s == nil {
		return
	}

	b.WriteString(strings.Repeat(" ", depth*indent))
	b.WriteString(s.Kind.String())

	switch s.Kind {
	case lang.SyntaxIndex:
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(s.Index))

	case lang.SyntaxText:
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(s.Text))
	}

	b.WriteByte('\n')

	writeTree(b, s.Left, depth+1, indent)
	writeTree(b, s.Right, depth+1, indent)
}
