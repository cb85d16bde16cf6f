package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yamltree/yamltree/ir"
)

func testView(t *testing.T, in string, opts ...ParseOption) *view {
	t.Helper()
	pOpts := &parseOpts{}
	for _, o := range opts {
		o(pOpts)
	}
	v, err := newView(Split(in), pOpts)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestReadMappingChildrenInKeyOrder(t *testing.T) {
	r := &readMapping{testView(t, "zkey: v1\nbkey:\n  c1: x\n  c2: y\nakey: v2\n")}
	keys, err := r.keys()
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, k := range keys {
		got = append(got, k.String)
	}
	if diff := cmp.Diff([]string{"akey", "bkey", "zkey"}, got); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	children, err := r.children()
	if err != nil {
		t.Fatal(err)
	}
	want := []*ir.Node{
		ir.FromString("v2"),
		ir.NewMappingBuilder().Add("c1", "x").Add("c2", "y").Build(),
		ir.FromString("v1"),
	}
	if len(children) != len(want) {
		t.Fatalf("got %d children", len(children))
	}
	for i := range want {
		if !ir.Equal(children[i], want[i]) {
			t.Errorf("child %d differs", i)
		}
	}
}

func TestReadMappingTypedLookups(t *testing.T) {
	r := &readMapping{testView(t, "m:\n  k: v\ns:\n  - x\nv: text\n")}
	tests := []struct {
		key  string
		get  func(*ir.Node) (*ir.Node, error)
		want ir.Type
		ok   bool
	}{
		{"m", r.mapping, ir.MappingType, true},
		{"m", r.sequence, 0, false},
		{"s", r.sequence, ir.SequenceType, true},
		{"s", r.scalar, 0, false},
		{"v", r.scalar, ir.ScalarType, true},
		{"v", r.mapping, 0, false},
		{"m", r.value, ir.MappingType, true},
		{"s", r.value, ir.SequenceType, true},
		{"v", r.value, ir.ScalarType, true},
		{"missing", r.value, 0, false},
	}
	for _, tt := range tests {
		n, err := tt.get(ir.Key(tt.key))
		if err != nil {
			t.Fatal(err)
		}
		if (n != nil) != tt.ok {
			t.Errorf("%s: got %v", tt.key, n)
			continue
		}
		if n != nil && n.Type != tt.want {
			t.Errorf("%s: got %s want %s", tt.key, n.Type, tt.want)
		}
	}
}

func TestReadMappingComplexKeyLookup(t *testing.T) {
	in := `?
  b: 2
  a: 1
: found
?
  - q
other: x
`
	r := &readMapping{testView(t, in)}
	key := ir.NewMappingBuilder().Add("a", "1").Add("b", "2").Build()
	n, err := r.value(key)
	if err != nil {
		t.Fatal(err)
	}
	if n == nil || n.String != "found" {
		t.Errorf("got %v", n)
	}
	// no ":" line follows the second key
	n, err = r.value(ir.NewSequenceBuilder().Add("q").Build())
	if err != nil || n != nil {
		t.Errorf("got %v %v", n, err)
	}
}

func TestReadMappingMalformedKey(t *testing.T) {
	r := &readMapping{testView(t, "a: b\nbare\n")}
	_, err := r.keys()
	if !errors.Is(err, ErrMalformedKey) {
		t.Errorf("got %v", err)
	}
}

func TestReadSequence(t *testing.T) {
	r := &readSequence{testView(t, "- b\n- a\n-\n  k: v\n")}
	n, err := r.len()
	if err != nil || n != 3 {
		t.Fatalf("len %d %v", n, err)
	}
	e, err := r.index(0)
	if err != nil || e.String != "b" {
		t.Errorf("index 0: %v %v", e, err)
	}
	e, err = r.index(2)
	if err != nil || e.Type != ir.MappingType {
		t.Errorf("index 2: %v %v", e, err)
	}
	e, err = r.index(3)
	if err != nil || e != nil {
		t.Errorf("index 3: %v %v", e, err)
	}
}

func TestViewKind(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Type
	}{
		{"", ir.ScalarType},
		{"text\nmore\n", ir.ScalarType},
		{"'a: b'\n", ir.ScalarType},
		{"|\n  x\n", ir.ScalarType},
		{"[]\n", ir.SequenceType},
		{"{} # none\n", ir.MappingType},
		{"- a\n", ir.SequenceType},
		{"a: b\n", ir.MappingType},
		{"?\n  - k\n: v\n", ir.MappingType},
	}
	for _, tt := range tests {
		v := testView(t, tt.in)
		if got := v.kind(); got != tt.want {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.want)
		}
		n, err := v.node()
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if n.Type != tt.want {
			t.Errorf("%q: node is %s, kind said %s", tt.in, n.Type, tt.want)
		}
	}
}

func TestReadMappingValueLine(t *testing.T) {
	r := &readMapping{testView(t, "?\n  - a\n\n# c\n: v\n? b\nc: d\n")}
	es, err := r.entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(es) != 3 {
		t.Fatalf("got %d entries", len(es))
	}
	cl, ok := r.valueLine(es[0])
	if !ok || cl.Number() != 4 {
		t.Errorf("got %v %v", cl, ok)
	}
	if _, ok := r.valueLine(es[1]); ok {
		t.Error("value line found after a key without one")
	}
}

func TestViewNested(t *testing.T) {
	v := testView(t, "- a: 1\n  b: 2\n- c\n")
	l, err := v.raw.Line(0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"  a: 1", "  b: 2"}, texts(v.nested(l))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
