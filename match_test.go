package yamltree

import (
	"bytes"
	"testing"

	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{
		in:    `1`,
		match: `1`,
		res:   true,
	},
	{
		in:    `0`,
		match: `1`,
		res:   false,
	},
	{
		in:    `- 1`,
		match: `- 1`,
		res:   true,
	},
	{
		in:    `[]`,
		match: `[]`,
		res:   true,
	},
	{
		in:    `- 1`,
		match: `- 2`,
		res:   false,
	},
	{
		in:    `- 1`,
		match: `hello`,
		res:   false,
	},
	{
		in:    "- 1\n- 2",
		match: "- 1",
		res:   false,
	},
	{
		in:    "a: b\nc: d",
		match: "a: b",
		res:   true,
	},
	{
		in:    "a: b",
		match: "a: b\nc: d",
		res:   false,
	},
	{
		in:    "a: b",
		match: `""`,
		res:   true,
	},
	{
		in:    "a: b\nc:\n  - x\n  - y",
		match: "c:",
		res:   true,
	},
	{
		in:    "a: b\nc:\n  - x\n  - y",
		match: "c:\n  -\n  - y",
		res:   true,
	},
	{
		in:    "a:\n  b:\n    c: d\n    e: f",
		match: "a:\n  b:\n    c: d",
		res:   true,
	},
	{
		in:    "a:\n  b:\n    c: d",
		match: "a:\n  b: d",
		res:   false,
	},
	{
		in:    "?\n  - k\n: v\nx: y",
		match: "? - k\n: v",
		res:   true,
	},
	{
		in:    "?\n  - k\n: v",
		match: "? - j\n: v",
		res:   false,
	},
	{
		in:    "a: |\n  text\n",
		match: "a: |-\n  text",
		res:   false,
	},
	{
		in:    "a: |\n  text\n",
		match: "a: \"text\\n\"",
		res:   true,
	},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		doc, err := parse.Parse([]byte(mt.in))
		if err != nil {
			t.Errorf("# could not decode\n%s\n# error %v\n", mt.in, err)
			continue
		}
		m, err := parse.Parse([]byte(mt.match))
		if err != nil {
			t.Errorf("# could not decode\n%s\n# error %v\n", mt.match, err)
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(m, buf); err != nil {
			t.Error(err)
			continue
		}
		t.Logf("# match\n---\n%s", buf.String())
		if res := Match(doc, m); res != mt.res {
			t.Errorf("match %q on %q: got %t want %t", mt.in, mt.match, res, mt.res)
		}
	}
}

type trimTest struct {
	doc    string
	match  string
	result string
}

var trimTests = []trimTest{
	{
		doc:    "a: b\nc: d\ne: f",
		match:  "a: b\nc: d",
		result: "a: b\nc: d",
	},
	{
		doc:    "a: b\nc: d",
		match:  "a: b",
		result: "a: b",
	},
	{
		doc:    "a: b\nc: d",
		match:  "c: d",
		result: "c: d",
	},
	{
		doc:    "a:\n  x: 1\n  y: 2\nb: 3",
		match:  "a:\n  x: 1\nb: 3",
		result: "a:\n  x: 1\nb: 3",
	},
	{
		doc:    "- a: 1\n- b: 2\n- c: 3",
		match:  "- a: 1\n- c: 3",
		result: "- a: 1\n- c: 3",
	},
	{
		doc:    "a: b",
		match:  "a: b\nc:",
		result: "a: b",
	},
	{
		doc:    "a:\n  x: 1\n  y: 2",
		match:  "a:",
		result: "a:\n  x: 1\n  y: 2",
	},
	{
		doc:    "hello",
		match:  "hello",
		result: "hello",
	},
}

func TestTrim(t *testing.T) {
	for i, tt := range trimTests {
		doc, err := parse.Parse([]byte(tt.doc))
		if err != nil {
			t.Errorf("test %d: could not parse doc: %v\n%s", i, err, tt.doc)
			continue
		}
		match, err := parse.Parse([]byte(tt.match))
		if err != nil {
			t.Errorf("test %d: could not parse match: %v\n%s", i, err, tt.match)
			continue
		}
		expected, err := parse.Parse([]byte(tt.result))
		if err != nil {
			t.Errorf("test %d: could not parse expected result: %v\n%s", i, err, tt.result)
			continue
		}

		result := Trim(match, doc)

		resultStr := encode.MustString(result)
		expectedStr := encode.MustString(expected)
		if resultStr != expectedStr {
			t.Errorf("test %d: trim mismatch\nDoc: %s\nMatch: %s\nGot: %s\nWant: %s",
				i, tt.doc, tt.match, resultStr, expectedStr)
		}
	}
}
