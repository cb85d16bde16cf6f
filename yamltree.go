package yamltree

import (
	"bytes"

	"github.com/yamltree/yamltree/debug"
	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/ir"
	"github.com/yamltree/yamltree/libdiff"
	"github.com/yamltree/yamltree/parse"
)

// Parse reads d.  Empty input yields an empty Mapping.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// Render returns the canonical text of node.
func Render(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		if debug.Encode() {
			debug.Logf("render failed: %v\n", err)
		}
		return "", err
	}
	if debug.Encode() {
		debug.Logf("rendered %d bytes\n", buf.Len())
	}
	return buf.String(), nil
}

// Equal reports whether a and b hold the same data.  Presentation, such
// as the style of a block scalar, is ignored.
func Equal(a, b *ir.Node) bool {
	return ir.Equal(a, b)
}

// Diff lists the changes turning from into to.  If there are no
// differences, Diff returns nil.
//
// The result may be reversed using [libdiff.Reverse].
func Diff(from, to *ir.Node) []libdiff.Change {
	return libdiff.Diff(from, to)
}
