package lang

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSyntaxToMap(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `fix 0 + "x"`)

	m := root.ToMap()
	if m["kind"] != "PadComp" {
		t.Errorf("root kind = %v, want PadComp", m["kind"])
	}

	left, ok := m["left"].(map[string]any)
	if !ok {
		t.Fatalf("left operand = %T, want map", m["left"])
	}

	if left["kind"] != "Fix" {
		t.Errorf("left kind = %v, want Fix", left["kind"])
	}

	child, ok := left["child"].(map[string]any)
	if !ok || child["kind"] != "Index" || child["index"] != 0 {
		t.Errorf("fix child = %v, want Index 0", left["child"])
	}

	right, ok := m["right"].(map[string]any)
	if !ok || right["kind"] != "Text" || right["text"] != "x" {
		t.Errorf("right operand = %v, want Text x", m["right"])
	}
}

func TestSyntaxMarshalJSON(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "nest 1")

	data, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded["kind"] != "Nest" {
		t.Errorf("kind = %v, want Nest", decoded["kind"])
	}
}

func TestSyntaxMarshalYAML(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `"a" @ 0`)

	data, err := root.MarshalYAML()
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	for _, want := range []string{"kind: Line", "text: a", "index: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestSyntaxStringRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"0",
		`"text with spaces"`,
		"fix (0 & 1)",
		`(0 @ 1) @ grp 2`,
		`seq ("a" + "b" + "c")`,
		"pack nest (0 !+ 1)",
	}

	for _, input := range inputs {
		root := mustParse(t, input)

		again := mustParse(t, root.String())
		if !root.Equal(again) {
			t.Errorf("%q: canonical form %q reparses differently",
				input, root.String())
		}
	}
}
