package cmd

import (
	"strings"
	"testing"
)

func TestNativeFmtCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whitespace normalized",
			input: "  \"a\"@\"b\"  ",
			want:  "\"a\" @ \"b\"\n",
		},
		{
			name:  "redundant parens elided",
			input: `grp(0@1)`,
			want:  "grp (0 @ 1)\n",
		},
		{
			name:  "comments stripped",
			input: "\"a\" # trailing comment\n& \"b\"",
			want:  "\"a\" & \"b\"\n",
		},
		{
			name:  "left grouping preserved",
			input: `("a" + "b") + "c"`,
			want:  "(\"a\" + \"b\") + \"c\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testContext(t)

			native := &Native{
				Source: writeTempSource(t, tt.input),
			}

			if err := native.Run(ctx); err != nil {
				t.Fatalf("Native.Run() unexpected error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Native.Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing operand", input: `"a" +`},
		{name: "unclosed paren", input: `grp ("a"`},
		{name: "bare bang", input: `"a" ! "b"`},
		{name: "empty input", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t)

			native := &Native{
				Source: writeTempSource(t, tt.input),
			}

			if err := native.Run(ctx); err == nil {
				t.Error("Native.Run() expected error but got nil")
			}
		})
	}
}

func TestJSONFmtOutput(t *testing.T) {
	ctx, buf := testContext(t)

	jsonCmd := &JSON{
		Indent: 2,
		Source: writeTempSource(t, `0 @ "a"`),
	}

	if err := jsonCmd.Run(ctx); err != nil {
		t.Fatalf("JSON.Run() unexpected error = %v", err)
	}

	output := buf.String()

	for _, expected := range []string{
		`"kind": "Line"`,
		`"index": 0`,
		`"text": "a"`,
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("JSON.Run() output = %q, want to contain %q",
				output, expected)
		}
	}
}

func TestYAMLFmtOutput(t *testing.T) {
	ctx, buf := testContext(t)

	yamlCmd := &YAML{
		Indent: 2,
		Source: writeTempSource(t, `0 @ "a"`),
	}

	if err := yamlCmd.Run(ctx); err != nil {
		t.Fatalf("YAML.Run() unexpected error = %v", err)
	}

	output := buf.String()

	for _, expected := range []string{
		"kind: Line",
		"index: 0",
		"text: a",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("YAML.Run() output = %q, want to contain %q",
				output, expected)
		}
	}
}

func TestTreeFmtOutput(t *testing.T) {
	ctx, buf := testContext(t)

	tree := &Tree{
		Indent: 2,
		Source: writeTempSource(t, `fix (0 + "a")`),
	}

	if err := tree.Run(ctx); err != nil {
		t.Fatalf("Tree.Run() unexpected error = %v", err)
	}

	want := "Fix\n" +
		"  PadComp\n" +
		"    Index 0\n" +
		"    Text \"a\"\n"

	if got := buf.String(); got != want {
		t.Errorf("Tree.Run() output = %q, want %q", got, want)
	}
}
