package parse

import (
	"errors"

	"github.com/yamltree/yamltree/debug"
	"github.com/yamltree/yamltree/ir"
)

// Parse reads d into a node tree.  A document without content is an
// empty Mapping.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseString(string(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, o := range opts {
		o(pOpts)
	}
	node, err := parseLines(Split(s), pOpts)
	if err != nil {
		var le *LineError
		if errors.As(err, &le) && le.File == "" {
			le.File = pOpts.filename
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s:\n%v\n", pOpts.filename, node)
	}
	return node, nil
}

func parseLines(lines Lines, opts *parseOpts) (*ir.Node, error) {
	v, err := newView(lines, opts)
	if err != nil {
		return nil, err
	}
	if _, ok := v.first(); !ok {
		return ir.FromKeyVals(nil), nil
	}
	return v.node()
}
