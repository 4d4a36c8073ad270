package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/alecthomas/kong"
)

// testContext returns a context carrying a kong.Context whose stdout is
// redirected into the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	parser, err := kong.New(&struct{}{})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse([]string{})
	if err != nil {
		t.Fatal(err)
	}

	ktx.Stdout = &buf

	return WithContext(context.Background(), ktx), &buf
}

// writeTempSource writes input to a temp file and returns its path.
func writeTempSource(t *testing.T, input string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "typeset-test-*.layout")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tmpfile.WriteString(input); err != nil {
		t.Fatal(err)
	}

	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	return tmpfile.Name()
}

func TestRenderValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		args   []string
		width  int
		want   string
	}{
		{
			name:   "literal text",
			source: `"hello"`,
			width:  80,
			want:   "hello\n",
		},
		{
			name:   "padded composition of arguments",
			source: `0 + "=" + 1`,
			args:   []string{`"name"`, `"value"`},
			width:  80,
			want:   "name = value\n",
		},
		{
			name:   "unpadded composition",
			source: `"a" & "b"`,
			width:  80,
			want:   "ab\n",
		},
		{
			name:   "group breaks when too wide",
			source: `grp ("aaaa" + "bbbb")`,
			width:  6,
			want:   "aaaa\nbbbb\n",
		},
		{
			name:   "nested region indents",
			source: `"head" @ nest "body"`,
			width:  80,
			want:   "head\n  body\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testContext(t)

			render := &Render{
				Args:   tt.args,
				Source: writeTempSource(t, tt.source),
				Tab:    2,
				Width:  tt.width,
			}

			if err := render.Run(ctx); err != nil {
				t.Fatalf("Render.Run() unexpected error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Render.Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderInvalidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "dangling operator", source: `"a" @`},
		{name: "unknown keyword", source: `wrap "a"`},
		{name: "unterminated text", source: `"abc`},
		{name: "index without binding", source: `0 & 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t)

			render := &Render{
				Source: writeTempSource(t, tt.source),
				Tab:    2,
				Width:  80,
			}

			if err := render.Run(ctx); err == nil {
				t.Error("Render.Run() expected error but got nil")
			}
		})
	}
}

func TestRenderInvalidArgument(t *testing.T) {
	ctx, _ := testContext(t)

	render := &Render{
		Args:   []string{`"ok"`, `seq`},
		Source: writeTempSource(t, `0 & 1`),
		Tab:    2,
		Width:  80,
	}

	err := render.Run(ctx)
	if !errors.Is(err, ErrParseArgument) {
		t.Errorf("Render.Run() error = %v, want ErrParseArgument", err)
	}
}

func TestRenderMissingSource(t *testing.T) {
	ctx, _ := testContext(t)

	render := &Render{
		Source: "/nonexistent/path/to/source.layout",
		Tab:    2,
		Width:  80,
	}

	if err := render.Run(ctx); err == nil {
		t.Error("Render.Run() expected error but got nil")
	}
}

func TestRenderStdin(t *testing.T) {
	// Save and restore stdin
	oldStdin := os.Stdin

	defer func() { os.Stdin = oldStdin }()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	os.Stdin = r

	go func() {
		defer w.Close()

		io.WriteString(w, `"a" + "b"`)
	}()

	ctx, buf := testContext(t)

	render := &Render{
		Source: "-",
		Tab:    2,
		Width:  80,
	}

	if err := render.Run(ctx); err != nil {
		t.Fatalf("Render.Run() unexpected error = %v", err)
	}

	if got, want := buf.String(), "a b\n"; got != want {
		t.Errorf("Render.Run() output = %q, want %q", got, want)
	}
}
