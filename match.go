package yamltree

import (
	"github.com/yamltree/yamltree/debug"
	"github.com/yamltree/yamltree/ir"
)

// Match reports whether doc matches pattern.
//
//   - a Mapping pattern matches a Mapping holding each of its keys with
//     a matching value; other keys of doc are ignored.
//   - a Sequence pattern matches a Sequence of the same length whose
//     elements match pairwise.
//   - a Scalar pattern matches an equal Scalar.  The empty Scalar, as
//     written by a key with no value, matches anything.
func Match(doc, pattern *ir.Node) bool {
	if debug.Match() {
		debug.Logf("match %s against %s pattern\n", doc.Type, pattern.Type)
	}
	if pattern.Type == ir.ScalarType && pattern.String == "" {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.MappingType:
		return matchMapping(doc, pattern)
	case ir.SequenceType:
		return matchSequence(doc, pattern)
	case ir.ScalarType:
		return doc.String == pattern.String
	}
	return false
}

func matchMapping(doc, pattern *ir.Node) bool {
	for i, key := range pattern.Fields {
		v := doc.Value(key)
		if v == nil {
			return false
		}
		if !Match(v, pattern.Values[i]) {
			return false
		}
	}
	return true
}

func matchSequence(doc, pattern *ir.Node) bool {
	if len(doc.Values) != len(pattern.Values) {
		return false
	}
	for i := range doc.Values {
		if !Match(doc.Values[i], pattern.Values[i]) {
			return false
		}
	}
	return true
}

// Trim filters doc down to the parts named by match.  Mapping entries
// whose key match lacks are dropped.  Each element of a Sequence match
// keeps the first element of doc it matches that is not yet taken.
func Trim(match, doc *ir.Node) *ir.Node {
	if match.Type != doc.Type {
		return doc.Clone()
	}
	switch match.Type {
	case ir.MappingType:
		kvs := make([]ir.KeyVal, 0, len(match.Fields))
		for i, key := range doc.Fields {
			matchVal := match.Value(key)
			if matchVal == nil {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: key.Clone(), Val: Trim(matchVal, doc.Values[i])})
		}
		return ir.FromKeyVals(kvs)
	case ir.SequenceType:
		var res []*ir.Node
		used := make([]bool, len(doc.Values))
		for _, matchElem := range match.Values {
			for i, docElem := range doc.Values {
				if used[i] || !Match(docElem, matchElem) {
					continue
				}
				res = append(res, Trim(matchElem, docElem))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	default:
		return doc.Clone()
	}
}
