package parse

import (
	"bytes"
	"testing"

	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Scalars
		`hello`,
		`""`,
		`"with\nnewline"`,
		`'single'`,

		// Collections
		"a: b",
		"a: []\nb: {}",
		"- a\n- b",
		"a:\n  - x\n  - y: z",
		"- - a\n  - b",

		// Complex keys
		"?\n  - a\n: b",
		"? k: v\n: x",

		// Block strings
		"a: |\n  line1\n  line2",
		"a: >-\n  folded\n  text",
		"- |+\n  kept\n\n",

		// Comments
		"# comment\nvalue",
		"a: value # trailing",

		// Edge cases
		`---`,
		`...`,
		"a:\n   b",
		"a: 'b",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		node, err := Parse(data)
		if err != nil {
			return
		}

		// Secondary: the canonical form of a parsed tree parses back equal
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			t.Fatal(err)
		}
		back, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("reparse %q: %v", buf.String(), err)
		}
		if !ir.Equal(node, back) {
			t.Errorf("round trip of %q changed the tree:\n%s", data, buf.String())
		}
	})
}
