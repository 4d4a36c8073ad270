package lang

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestParseCacheSharesTrees(t *testing.T) {
	ClearCache()

	const input = `fix 0 + "x"`

	ctx := context.Background()

	first, err := ParseSyntax(ctx, input)
	if err != nil {
		t.Fatal(err)
	}

	again, err := ParseSyntax(ctx, input)
	if err != nil {
		t.Fatal(err)
	}

	if first != again {
		t.Error("identical inputs did not share one cached tree")
	}

	ClearCache()

	fresh, err := ParseSyntax(ctx, input)
	if err != nil {
		t.Fatal(err)
	}

	if fresh == first {
		t.Error("ClearCache did not evict the cached tree")
	}
}

func TestParseCacheBypassWithGrammar(t *testing.T) {
	ClearCache()

	const input = "grp 0"

	ctx := context.Background()

	cached, err := ParseSyntax(ctx, input)
	if err != nil {
		t.Fatal(err)
	}

	bypassed, err := ParseSyntax(ctx, input, WithGrammar(DefaultGrammar()))
	if err != nil {
		t.Fatal(err)
	}

	if cached == bypassed {
		t.Error("custom grammar parse returned the cached tree")
	}
}

func TestParseCacheCachesErrors(t *testing.T) {
	ClearCache()

	ctx := context.Background()

	_, err1 := ParseSyntax(ctx, "0 &")
	_, err2 := ParseSyntax(ctx, "0 &")

	if err1 == nil || err2 == nil {
		t.Fatal("malformed input accepted")
	}

	se := &SyntaxError{}
	if !errors.As(err2, &se) {
		t.Errorf("cached error lost its type: %T", err2)
	}
}

func TestParseCacheConcurrent(t *testing.T) {
	ClearCache()

	const input = `grp (0 @ 1 @ "tail")`

	ctx := context.Background()

	var wg sync.WaitGroup

	roots := make([]*Syntax, 16)

	for i := range roots {
		wg.Add(1)

		go func() {
			defer wg.Done()

			root, err := ParseSyntax(ctx, input)
			if err != nil {
				t.Error(err)

				return
			}

			roots[i] = root
		}()
	}

	wg.Wait()

	for i := 1; i < len(roots); i++ {
		if roots[i] != roots[0] {
			t.Fatal("concurrent parses did not converge on one tree")
		}
	}
}

func TestParseReader(t *testing.T) {
	ClearCache()

	got, err := ParseReader(
		context.Background(),
		strings.NewReader(`"a" & "b"`),
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}

	if got == nil {
		t.Fatal("ParseReader returned nil layout")
	}

	if s := got.String(); s != `"a" & "b"` {
		t.Errorf("layout = %q, want %q", s, `"a" & "b"`)
	}
}

func TestParseReaderFailure(t *testing.T) {
	_, err := ParseReader(
		context.Background(),
		strings.NewReader("0 @"),
		nil,
	)
	if err == nil {
		t.Fatal("malformed reader input accepted")
	}
}
