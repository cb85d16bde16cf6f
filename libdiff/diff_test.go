package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/ir"
	"github.com/yamltree/yamltree/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

// summarize writes each change as "op path: from -> to".
func summarize(changes []Change) []string {
	var res []string
	for _, c := range changes {
		s := c.Op.String() + " " + c.Path.String()
		if c.Key != nil {
			s += " key=" + encode.MustString(c.Key)
		}
		s += ":"
		if c.From != nil {
			s += " " + encode.MustString(c.From)
		}
		s += " ->"
		if c.To != nil {
			s += " " + encode.MustString(c.To)
		}
		res = append(res, s)
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "equal",
			from: "a: 1\nb:\n  - x",
			to:   "b:\n  - x\na: 1",
			want: nil,
		},
		{
			name: "mapping entries",
			from: "a: 1\nb: 2\nc: 3",
			to:   "a: 1\nb: 5\nd: 4",
			want: []string{
				"replace b: 2 -> 5",
				"delete c: 3 ->",
				"insert d: -> 4",
			},
		},
		{
			name: "root type change",
			from: "hello",
			to:   "- hello",
			want: []string{"replace : hello -> - hello"},
		},
		{
			name: "sequence replace",
			from: "- a\n- b\n- c",
			to:   "- a\n- x\n- c",
			want: []string{"replace [1]: b -> x"},
		},
		{
			name: "sequence insert",
			from: "- a\n- c",
			to:   "- a\n- b\n- c",
			want: []string{"insert [1]: -> b"},
		},
		{
			name: "sequence delete",
			from: "- a\n- b\n- c",
			to:   "- a\n- c",
			want: []string{"delete [1]: b ->"},
		},
		{
			name: "nested",
			from: "list:\n  - name: n0\n    v: 1\n  - name: n1",
			to:   "list:\n  - name: n0\n    v: 2\n  - name: n1",
			want: []string{"replace list[0].v: 1 -> 2"},
		},
		{
			name: "quoted field",
			from: "\"a.b\": 1",
			to:   "\"a.b\": 2",
			want: []string{`replace "a.b": 1 -> 2`},
		},
		{
			name: "complex key",
			from: "?\n  - k\n: v1\nx: y",
			to:   "?\n  - k\n: v2\nx: y",
			want: []string{"replace  key=- k: v1 -> v2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(Diff(mustParse(t, tt.from), mustParse(t, tt.to)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	from := mustParse(t, "a: 1\nb: 2")
	to := mustParse(t, "a: 3\nc: 4")
	got := summarize(Reverse(Diff(from, to)))
	want := summarize(Diff(to, from))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLineDiff(t *testing.T) {
	got := LineDiff("a\nb\nc\n", "a\nx\nc\n")
	want := "= a\n- b\n+ x\n= c\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestChangeNode(t *testing.T) {
	c := MakeChange(nil, nil, ir.FromString("a\nb\n"), ir.FromString("a\nc\n"))
	n := c.Node()
	if s, _ := n.Scalar(ir.Key("op")); s != "replace" {
		t.Errorf("op %q", s)
	}
	lines, ok := n.Literal(ir.Key("lines"))
	if !ok {
		t.Fatalf("no lines in\n%s", encode.MustString(n))
	}
	if lines != "= a\n- b\n+ c\n" {
		t.Errorf("lines %q", lines)
	}

	ins := MakeChange(nil, nil, nil, ir.FromString("x")).Node()
	if ins.Value(ir.Key("from")) != nil {
		t.Errorf("insert has a from field")
	}
	all := Node([]Change{c, MakeChange(nil, nil, ir.FromString("x"), nil)})
	if all.Len() != 2 {
		t.Errorf("got %d changes", all.Len())
	}
	// the rendering reads back as the same tree
	back, err := parse.ParseString(encode.MustString(all))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(back, all) {
		t.Errorf("read back differs:\n%s", encode.MustString(back))
	}
}
