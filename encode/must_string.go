package encode

import (
	"bytes"
	"strings"

	"github.com/yamltree/yamltree/ir"
)

// MustString encodes node and trims the surrounding whitespace.  It
// panics on an encoding error, which only a nil node can cause in the
// default format.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
