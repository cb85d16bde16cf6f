package libdiff

import (
	"strings"

	"github.com/yamltree/yamltree/ir"
	"github.com/yamltree/yamltree/ir/kpath"
)

// Change is one difference between two trees.
//
// Path locates the changed node from the root; Index steps name positions
// in the new tree, except that a Delete names the position it had in the
// old one.  Entries of a Mapping whose key is not a Scalar cannot be
// named by a path: for those, Path locates the Mapping and Key holds the
// entry's key.
type Change struct {
	Path *kpath.KPath
	Key  *ir.Node
	Op   Op
	From *ir.Node
	To   *ir.Node
}

// MakeChange builds the change from from to to.  A nil from is an Insert,
// a nil to a Delete.
func MakeChange(path *kpath.KPath, key, from, to *ir.Node) Change {
	c := Change{Path: path, Key: key, From: from, To: to}
	switch {
	case from == nil:
		c.Op = Insert
	case to == nil:
		c.Op = Delete
	default:
		c.Op = Replace
	}
	return c
}

// Node renders c as a Mapping with fields path, op, key, from, to and,
// for replaced multi-line text, lines.
func (c Change) Node() *ir.Node {
	b := ir.NewMappingBuilder().
		Add("path", c.Path.String()).
		Add("op", c.Op.String())
	if c.Key != nil {
		b.AddValue("key", c.Key)
	}
	if c.From != nil {
		b.AddValue("from", c.From)
	}
	if c.To != nil {
		b.AddValue("to", c.To)
	}
	if c.Op == Replace && c.From.Type == ir.ScalarType && c.To.Type == ir.ScalarType &&
		strings.Contains(c.From.String, "\n") && strings.Contains(c.To.String, "\n") {
		b.AddValue("lines", ir.FromLiteral(LineDiff(c.From.String, c.To.String), ir.Clip))
	}
	return b.Build()
}

// Node renders changes as a Sequence of [Change.Node].
func Node(changes []Change) *ir.Node {
	vals := make([]*ir.Node, len(changes))
	for i := range changes {
		vals[i] = changes[i].Node()
	}
	return ir.FromSlice(vals)
}

// Reverse returns the changes turning to back into from.  Paths are
// kept as they are.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		res[i] = Change{Path: c.Path, Key: c.Key, Op: c.Op.Reverse(), From: c.To, To: c.From}
	}
	return res
}
