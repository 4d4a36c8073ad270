package lang

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string) *Syntax {
	t.Helper()

	root, err := ParseSyntax(context.Background(), input)
	if err != nil {
		t.Fatalf("ParseSyntax(%q) failed: %v", input, err)
	}

	return root
}

func TestParseSyntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string // canonical form
	}{
		{
			name:  "index atom",
			input: "0",
			want:  "0",
		},
		{
			name:  "multi digit index",
			input: "42",
			want:  "42",
		},
		{
			name:  "text atom",
			input: `"hello"`,
			want:  `"hello"`,
		},
		{
			name:  "text with escapes",
			input: `"a\"b\nc"`,
			want:  `"a\"b\nc"`,
		},
		{
			name:  "empty text",
			input: `""`,
			want:  `""`,
		},
		{
			name:  "parens are grouping only",
			input: "(((0)))",
			want:  "0",
		},
		{
			name:  "single prefix",
			input: "fix 0",
			want:  "fix 0",
		},
		{
			name:  "stacked prefixes",
			input: "grp nest pack 0",
			want:  "grp nest pack 0",
		},
		{
			name:  "line composition",
			input: "0 @ 1",
			want:  "0 @ 1",
		},
		{
			name:  "double line composition",
			input: "0 @@ 1",
			want:  "0 @@ 1",
		},
		{
			name:  "padded composition",
			input: `0 + "x"`,
			want:  `0 + "x"`,
		},
		{
			name:  "fixed compositions",
			input: "0 !& 1 !+ 2",
			want:  "0 !& 1 !+ 2",
		},
		{
			name:  "prefix binds tighter than infix",
			input: "fix 0 & 1",
			want:  "fix 0 & 1",
		},
		{
			name:  "prefix over parenthesized infix",
			input: "fix (0 & 1)",
			want:  "fix (0 & 1)",
		},
		{
			name:  "left grouping needs parens",
			input: "(0 @ 1) @ 2",
			want:  "(0 @ 1) @ 2",
		},
		{
			name:  "comment and whitespace",
			input: "0 # trailing comment\n  @ 1",
			want:  "0 @ 1",
		},
		{
			name:  "seq prefix of composition operand",
			input: `seq ("a" & "b") @ "c"`,
			want:  `seq ("a" & "b") @ "c"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := mustParse(t, tt.input)

			if got := root.String(); got != tt.want {
				t.Errorf("canonical form = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRightAssociative(t *testing.T) {
	t.Parallel()

	for _, op := range []string{"@", "@@", "&", "+", "!&", "!+"} {
		t.Run(op, func(t *testing.T) {
			t.Parallel()

			bare := mustParse(t, "0 "+op+" 1 "+op+" 2")
			right := mustParse(t, "0 "+op+" (1 "+op+" 2)")
			left := mustParse(t, "(0 "+op+" 1) "+op+" 2")

			if !bare.Equal(right) {
				t.Errorf("0 %s 1 %s 2 does not group right", op, op)
			}

			if bare.Equal(left) {
				t.Errorf("0 %s 1 %s 2 unexpectedly groups left", op, op)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()

	const input = `grp (fix "k" + nest (0 @ pack 1))`

	first := mustParse(t, input)

	for range 5 {
		if again := mustParse(t, input); !first.Equal(again) {
			t.Fatal("repeated parses produced different trees")
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{"empty input", "", 1, 1},
		{"only comment", "# nothing here", 1, 15},
		{"trailing input", "0 1", 1, 3},
		{"dangling operator", "0 &", 1, 4},
		{"leading operator", "& 0", 1, 1},
		{"unclosed paren", "(0 @ 1", 1, 7},
		{"unmatched close paren", "0)", 1, 2},
		{"unknown keyword", "fixx 0", 1, 1},
		{"bare bang", "0 ! 1", 1, 4},
		{"unterminated text", `"abc`, 1, 5},
		{"text across newline", "\"ab\nc\"", 1, 4},
		{"negative index", "-1", 1, 1},
		{"second line error", "0 @\n  ]", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseSyntax(context.Background(), tt.input)
			if err == nil {
				t.Fatalf("ParseSyntax(%q) succeeded, want error", tt.input)
			}

			se := &SyntaxError{}
			if !errors.As(err, &se) {
				t.Fatalf("error type = %T, want *SyntaxError", err)
			}

			if se.Pos.Line != tt.line || se.Pos.Column != tt.column {
				t.Errorf("position = %d:%d, want %d:%d",
					se.Pos.Line, se.Pos.Column, tt.line, tt.column)
			}

			if len(se.Expected) == 0 {
				t.Error("SyntaxError carries no expected tokens")
			}
		})
	}
}

func TestParseErrorSnippet(t *testing.T) {
	t.Parallel()

	_, err := ParseSyntax(context.Background(), `0 @ ]`)
	if err == nil {
		t.Fatal("expected syntax error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "1 | 0 @ ]") {
		t.Errorf("message does not show source line:\n%s", msg)
	}

	if !strings.Contains(msg, "^") {
		t.Errorf("message does not mark the failing column:\n%s", msg)
	}

	if !strings.Contains(msg, "expected:") {
		t.Errorf("message does not list expectations:\n%s", msg)
	}
}

func TestParseMaxDepth(t *testing.T) {
	t.Parallel()

	deep := strings.Repeat("(", 300) + "0" + strings.Repeat(")", 300)

	_, err := ParseSyntax(context.Background(), deep)
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("error = %v, want ErrMaxDepth", err)
	}

	_, err = ParseSyntax(
		context.Background(), deep, WithMaxDepth(1000),
	)
	if err != nil {
		t.Errorf("raised depth limit still fails: %v", err)
	}
}

func TestParseCustomGrammar(t *testing.T) {
	t.Parallel()

	// A grammar without the pack prefix rejects pack expressions.
	g := DefaultGrammar()
	delete(g.prefix, TokenPack)

	_, err := ParseSyntax(context.Background(), "pack 0", WithGrammar(g))
	if err == nil {
		t.Error("restricted grammar accepted removed operator")
	}

	if _, err := ParseSyntax(context.Background(), "fix 0", WithGrammar(g)); err != nil {
		t.Errorf("restricted grammar rejected retained operator: %v", err)
	}
}

func TestGrammarTableMismatch(t *testing.T) {
	t.Parallel()

	// A prefix entry mapping to a binary variant is a table defect, not
	// bad input. It must surface as an error, never succeed silently.
	g := DefaultGrammar()
	g.prefix[TokenFix] = SyntaxLine

	_, err := ParseSyntax(context.Background(), "fix 0", WithGrammar(g))
	if !errors.Is(err, ErrInternal) {
		t.Errorf("error = %v, want ErrInternal", err)
	}
}

func BenchmarkParseSyntax(b *testing.B) {
	const input = `grp (fix "key" + nest (0 @ pack (1 & "suffix")))`

	ctx := context.Background()

	b.ReportAllocs()

	for b.Loop() {
		ClearCache()

		if _, err := ParseSyntax(ctx, input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseSyntaxCached(b *testing.B) {
	const input = `grp (fix "key" + nest (0 @ pack (1 & "suffix")))`

	ctx := context.Background()

	b.ReportAllocs()

	for b.Loop() {
		if _, err := ParseSyntax(ctx, input); err != nil {
			b.Fatal(err)
		}
	}
}
