package lang

import (
	"context"
	"errors"
	"testing"
)

func FuzzParseSyntax(f *testing.F) {
	seeds := []string{
		"0",
		"42",
		`"hello"`,
		`"a\"b"`,
		"fix 0",
		"grp nest pack 1",
		"0 @ 1 @@ 2",
		`0 & "x" + 1 !& 2 !+ 3`,
		`grp (fix "k" + nest (0 @ pack 1))`,
		"# comment\n0",
		"(((0)))",
		"0 &",
		"& 0",
		`"unterminated`,
		"! 0",
		"fixx",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		ctx := context.Background()

		root, err := ParseSyntax(ctx, input, WithGrammar(DefaultGrammar()))
		if err != nil {
			// Failures must be typed, never raw.
			se := &SyntaxError{}

			ee := &Error{}
			if !errors.As(err, &se) && !errors.As(err, &ee) {
				t.Fatalf("untyped error %T: %v", err, err)
			}

			return
		}

		// A successful parse must round-trip through its canonical form.
		again, err := ParseSyntax(ctx, root.String(), WithGrammar(DefaultGrammar()))
		if err != nil {
			t.Fatalf("canonical form %q does not reparse: %v", root.String(), err)
		}

		if !root.Equal(again) {
			t.Fatalf("canonical form %q reparses to a different tree", root.String())
		}

		// Interpretation with ample arguments must not panic. Index range
		// failures are legitimate for large literals.
		engine := &recordEngine{}
		args := make([]string, 64)

		for i := range args {
			args[i] = "arg"
		}

		_, err = Interpret(root, engine, args...)
		if err != nil && !errors.Is(err, ErrIndexRange) {
			t.Fatalf("interpretation failed on valid tree: %v", err)
		}
	})
}
