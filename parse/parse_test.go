package parse

import (
	"errors"
	"testing"

	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/ir"
)

type parseTest struct {
	name string
	in   string
	want *ir.Node
}

func mb() *ir.MappingBuilder { return ir.NewMappingBuilder() }
func sb() *ir.SequenceBuilder { return ir.NewSequenceBuilder() }

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			name: "empty",
			in:   "",
			want: mb().Build(),
		},
		{
			name: "comments only",
			in:   "# nothing\n\n---\n",
			want: mb().Build(),
		},
		{
			name: "flat mapping",
			in:   "b: 2\na: 1\n",
			want: mb().Add("a", "1").Add("b", "2").Build(),
		},
		{
			name: "nested",
			in: `a:
  b: c
  d:
    - x
    - y
`,
			want: mb().AddMapping("a", mb().
				Add("b", "c").
				AddSequence("d", sb().Add("x").Add("y").Build()).
				Build()).Build(),
		},
		{
			name: "sequence of mappings",
			in: `- a: 1
  b: 2
- c: 3
-
  d: 4
`,
			want: sb().
				AddNode(mb().Add("a", "1").Add("b", "2").Build()).
				AddNode(mb().Add("c", "3").Build()).
				AddNode(mb().Add("d", "4").Build()).
				Build(),
		},
		{
			name: "nested sequences",
			in:   "- - a\n  - b\n- c\n",
			want: sb().AddNode(sb().Add("a").Add("b").Build()).Add("c").Build(),
		},
		{
			name: "root scalar",
			in:   "hello\n",
			want: ir.FromString("hello"),
		},
		{
			name: "multi-line plain scalar",
			in:   "a: one\n  two\nb:\n  three\n  four\n",
			want: mb().Add("a", "one two").Add("b", "three four").Build(),
		},
		{
			name: "markers and directives",
			in:   "%YAML 1.2\n---\na: b\n...\n",
			want: mb().Add("a", "b").Build(),
		},
		{
			name: "comments",
			in:   "# head\na: b # trailing\n\n# between\nc: 'd # kept'\n",
			want: mb().Add("a", "b").Add("c", "d # kept").Build(),
		},
		{
			name: "quoted keys and values",
			in:   `"a: b": "c\td"` + "\n'it''s': 'x'\nurl: http://h:80/p\n",
			want: mb().Add("a: b", "c\td").Add("it's", "x").Add("url", "http://h:80/p").Build(),
		},
		{
			name: "empty collections",
			in:   "a: []\nb: {}\nc: \"[]\"\n",
			want: mb().AddSequence("a", sb().Build()).AddMapping("b", mb().Build()).Add("c", "[]").Build(),
		},
		{
			name: "empty values",
			in:   "a:\nb: ''\n",
			want: mb().Add("a", "").Add("b", "").Build(),
		},
		{
			name: "last definition wins",
			in:   "a: 1\nb: 2\na: 3\n",
			want: mb().Add("a", "3").Add("b", "2").Build(),
		},
		{
			name: "complex key",
			in: `?
  - a
  - b
: value
plain: x
`,
			want: mb().
				AddNode(sb().Add("a").Add("b").Build(), ir.FromString("value")).
				Add("plain", "x").
				Build(),
		},
		{
			name: "complex key inline",
			in:   "? k: v\n: |\n  text\n? - z\n:\n  n: 1\n",
			want: mb().
				AddNode(mb().Add("k", "v").Build(), ir.FromLiteral("text\n", ir.Clip)).
				AddNode(sb().Add("z").Build(), mb().Add("n", "1").Build()).
				Build(),
		},
		{
			name: "complex key without value",
			in:   "?\n  - a\nb: c\n",
			want: mb().AddNode(sb().Add("a").Build(), ir.FromString("")).Add("b", "c").Build(),
		},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			got, err := ParseString(pt.in)
			if err != nil {
				t.Fatalf("parse %q: %v", pt.in, err)
			}
			if !ir.Equal(got, pt.want) {
				t.Errorf("parse %q\ngot:\n%s\nwant:\n%s", pt.in, encode.MustString(got), encode.MustString(pt.want))
			}
		})
	}
}

func TestParseBlockScalars(t *testing.T) {
	in := `a: |
  line1
    indented
  line2
b: >-
  f1
  f2

  f3
c: |+
  k

d: |-
  s
e: >
  x


  y
`
	got, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key   string
		text  string
		style ir.Style
		chomp ir.Chomp
	}{
		{"a", "line1\n  indented\nline2\n", ir.Literal, ir.Clip},
		{"b", "f1 f2\nf3", ir.Folded, ir.Strip},
		{"c", "k\n\n", ir.Literal, ir.Keep},
		{"d", "s", ir.Literal, ir.Strip},
		{"e", "x\n\ny\n", ir.Folded, ir.Clip},
	}
	for _, tt := range tests {
		v := got.Value(ir.Key(tt.key))
		if v == nil {
			t.Errorf("%s: missing", tt.key)
			continue
		}
		if v.String != tt.text || v.Style != tt.style || v.Chomp != tt.chomp {
			t.Errorf("%s: got %q %s %d want %q %s %d", tt.key, v.String, v.Style, v.Chomp, tt.text, tt.style, tt.chomp)
		}
	}
}

func TestParseBlockInSequence(t *testing.T) {
	got, err := ParseString("- |\n  a\n  b\n- >\n  c\n  d\n")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.ScalarAt(0); v != "a\nb\n" {
		t.Errorf("got %q", v)
	}
	if v, _ := got.ScalarAt(1); v != "c d\n" {
		t.Errorf("got %q", v)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		line int
	}{
		{"odd indentation", "a:\n   b: c\n", ErrIndentation, 1},
		{"odd indentation deep", "a:\n  b:\n    c: d\n     e: f\n", ErrIndentation, 3},
		{"tab indentation", "a:\n\tb: c\n", ErrIndentation, 1},
		{"missing separator", "a: b\nfoo\n", ErrMalformedKey, 1},
		{"nested missing separator", "a:\n  b: c\n  d\n", ErrMalformedKey, 2},
		{"orphan value line", ": x\n", ErrMalformedKey, 0},
		{"element in mapping", "a: b\n- c\n", ErrMalformedKey, 1},
		{"key in sequence", "- a\nb: c\n", ErrMalformedElement, 1},
		{"unterminated quote", "a: \"b\n", ErrQuote, 0},
		{"text after quote", "a: 'b' c\n", ErrQuote, 0},
		{"bare word before key", "foo\nkey: value\n", ErrMalformedKey, 0},
		{"bare word in nested block", "a:\n  foo\n  b: 1\n", ErrMalformedKey, 1},
		{"key under inline value", "a: 1\n  b: 2\n", ErrMalformedKey, 0},
		{"element after bare word", "foo\n- x\n", ErrMalformedKey, 0},
		{"bare element content before key", "- foo\n  b: 1\n", ErrMalformedKey, 0},
		{"text after quoted scalar", "'a'\nb\n", ErrQuote, 0},
		{"lines under quoted value", "a: 'x'\n  y\n", ErrQuote, 0},
		{"lines under empty collection", "a: []\n  - x\n", ErrMalformedKey, 0},
		{"deeper line before level", "  a: 1\nb: 2\n", ErrIndentation, 0},
		{"deeper line before nested level", "a:\n    b: 1\n  c: 2\n", ErrIndentation, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseString(tt.in)
			if n != nil {
				t.Errorf("got a tree on error")
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v want %v", err, tt.err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v is not ErrParse", err)
			}
			var le *LineError
			if !errors.As(err, &le) {
				t.Fatalf("%v is not a *LineError", err)
			}
			if le.Line != tt.line {
				t.Errorf("line %d want %d", le.Line, tt.line)
			}
		})
	}
}

func TestComplexKeyWithoutValue(t *testing.T) {
	n, err := ParseString("?\n  - a\nb: c\n")
	if err != nil {
		t.Fatal(err)
	}
	key := sb().Add("a").Build()
	v := n.Value(key)
	if v == nil {
		t.Fatal("key without a value line is missing from the tree")
	}
	if v.Type != ir.ScalarType || v.String != "" {
		t.Errorf("got %v", v)
	}
	// the read view reports the same value as absent
	r := &readMapping{testView(t, "?\n  - a\nb: c\n")}
	if v, err := r.value(key); err != nil || v != nil {
		t.Errorf("view: got %v %v", v, err)
	}
}

func TestRejectDuplicateKeys(t *testing.T) {
	in := "a: 1\nb: 2\na: 3\n"
	_, err := ParseString(in, RejectDuplicateKeys())
	var le *LineError
	if !errors.As(err, &le) || !errors.Is(err, ErrDuplicateKey) || le.Line != 2 {
		t.Fatalf("got %v", err)
	}
	in = "?\n  - a\n: 1\n? - a\n: 2\n"
	if _, err := ParseString(in, RejectDuplicateKeys()); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("complex: got %v", err)
	}
}

func TestWithFilename(t *testing.T) {
	_, err := Parse([]byte("a: b\nfoo\n"), WithFilename("cfg.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	want := `cfg.yaml:2: parse error: missing key separator: "foo"`
	if err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
}
