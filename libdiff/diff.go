package libdiff

import (
	"github.com/yamltree/yamltree/debug"
	"github.com/yamltree/yamltree/ir"
	"github.com/yamltree/yamltree/ir/kpath"
)

// DiffFunc appends to dst the changes between from and to, found at
// path.
type DiffFunc func(dst []Change, path *kpath.KPath, from, to *ir.Node) []Change

// Diff lists the changes turning from into to, in path order.  If there
// are no differences, Diff returns nil.
//
//   - nodes of different types, and differing Scalars, give a Replace.
//   - Mapping entries are paired by key: a key only in to gives an
//     Insert, a key only in from a Delete, and shared keys are compared
//     recursively.
//   - Sequence elements are aligned first (see [DiffSequenceByIndex]).
func Diff(from, to *ir.Node) []Change {
	res := diffNode(nil, nil, from, to)
	if debug.Diff() {
		debug.Logf("diff found %d changes\n", len(res))
	}
	return res
}

func diffNode(dst []Change, path *kpath.KPath, from, to *ir.Node) []Change {
	if ir.Equal(from, to) {
		return dst
	}
	if from.Type != to.Type {
		return append(dst, MakeChange(path, nil, from, to))
	}
	switch from.Type {
	case ir.MappingType:
		return DiffMapping(dst, path, from, to, diffNode)
	case ir.SequenceType:
		return DiffSequenceByIndex(dst, path, from, to, diffNode)
	}
	return append(dst, MakeChange(path, nil, from, to))
}

// DiffMapping walks the sorted keys of from and to together.
func DiffMapping(dst []Change, path *kpath.KPath, from, to *ir.Node, df DiffFunc) []Change {
	i, j := 0, 0
	for i < len(from.Fields) || j < len(to.Fields) {
		var c int
		switch {
		case i == len(from.Fields):
			c = 1
		case j == len(to.Fields):
			c = -1
		default:
			c = ir.Compare(from.Fields[i], to.Fields[j])
		}
		switch {
		case c < 0:
			dst = append(dst, entryChange(path, from.Fields[i], from.Values[i], nil))
			i++
		case c > 0:
			dst = append(dst, entryChange(path, to.Fields[j], nil, to.Values[j]))
			j++
		default:
			k := from.Fields[i]
			switch {
			case k.Type == ir.ScalarType:
				dst = df(dst, path.Append(kpath.Field(k.String)), from.Values[i], to.Values[j])
			case !ir.Equal(from.Values[i], to.Values[j]):
				dst = append(dst, MakeChange(path, k, from.Values[i], to.Values[j]))
			}
			i++
			j++
		}
	}
	return dst
}

func entryChange(path *kpath.KPath, key, from, to *ir.Node) Change {
	if key.Type == ir.ScalarType {
		return MakeChange(path.Append(kpath.Field(key.String)), nil, from, to)
	}
	return MakeChange(path, key, from, to)
}
