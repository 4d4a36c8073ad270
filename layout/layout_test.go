package layout

import "testing"

func TestLayoutString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		l    *Layout
		want string
	}{
		{
			name: "null",
			l:    Null(),
			want: `""`,
		},
		{
			name: "text",
			l:    Text("hello"),
			want: `"hello"`,
		},
		{
			name: "text escapes",
			l:    Text("a\"b\nc"),
			want: `"a\"b\nc"`,
		},
		{
			name: "unary chain",
			l:    Grp(Nest(Text("x"))),
			want: `grp nest "x"`,
		},
		{
			name: "line",
			l:    Line(Text("a"), Text("b")),
			want: `"a" @ "b"`,
		},
		{
			name: "comp flag tokens",
			l: Comp(
				Comp(Text("a"), Text("b"), false, false),
				Comp(Text("c"), Text("d"), true, true),
				true, false,
			),
			want: `("a" & "b") + "c" !+ "d"`,
		},
		{
			name: "fixed unpadded comp",
			l:    Comp(Text("a"), Text("b"), false, true),
			want: `"a" !& "b"`,
		},
		{
			name: "binary operand of unary",
			l:    Fix(Line(Text("a"), Text("b"))),
			want: `fix ("a" @ "b")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNullIsShared(t *testing.T) {
	t.Parallel()

	if Null() != Null() {
		t.Error("Null() allocated distinct instances")
	}

	if Null().Kind() != KindNull {
		t.Errorf("Null().Kind() = %v, want KindNull", Null().Kind())
	}
}

func TestSharedSubtrees(t *testing.T) {
	t.Parallel()

	// The same layout value may appear in several positions.
	shared := Text("v")
	both := Line(shared, shared)

	if got, want := both.String(), `"v" @ "v"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := Print(both), "v\nv"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	kinds := map[Kind]string{
		KindNull: "Null",
		KindText: "Text",
		KindFix:  "Fix",
		KindGrp:  "Grp",
		KindSeq:  "Seq",
		KindNest: "Nest",
		KindPack: "Pack",
		KindLine: "Line",
		KindComp: "Comp",
	}

	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
