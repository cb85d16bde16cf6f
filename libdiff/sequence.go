package libdiff

import (
	"strings"

	"github.com/yamltree/yamltree/ir"
	"github.com/yamltree/yamltree/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSequenceByIndex aligns the elements of from and to before
// comparing them:
//
//  1. each element is summarized: a single line Scalar by its text,
//     anything else by its type alone.
//  2. the two sequences of summaries are diffed as runes.
//  3. aligned elements are compared with df, so collections and
//     multi-line text at the same place are compared recursively.
//  4. an unaligned element is a Delete or an Insert; a Delete directly
//     followed by an Insert is reported as one Replace.
func DiffSequenceByIndex(dst []Change, path *kpath.KPath, from, to *ir.Node, df DiffFunc) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	// deletes not yet paired with an insert
	var pending []int
	flush := func() {
		for _, i := range pending {
			dst = append(dst, MakeChange(path.Append(kpath.Index(i)), nil, from.Values[i], nil))
		}
		pending = pending[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				p := path.Append(kpath.Index(ti))
				if len(pending) > 0 {
					dst = append(dst, MakeChange(p, nil, from.Values[pending[0]], to.Values[ti]))
					pending = pending[1:]
				} else {
					dst = append(dst, MakeChange(p, nil, nil, to.Values[ti]))
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				dst = df(dst, path.Append(kpath.Index(ti)), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		}
	}
	flush()
	return dst
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	if node.Type != ir.ScalarType {
		return node.Type.String()
	}
	if strings.Contains(node.String, "\n") {
		return node.Type.String() + "/m"
	}
	return node.Type.String() + "-" + node.String
}
