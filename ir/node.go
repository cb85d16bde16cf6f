package ir

import (
	"maps"
	"slices"
)

// Node is a Scalar, a Sequence or a Mapping, as given by Type.
//
// A Mapping keeps its keys in Fields and the matching values in Values.
// Fields are sorted by Compare and unique under Equal, so iterating a
// Mapping always follows the key order and never the order in which
// entries were written or added.  A Sequence uses Values only, in
// document order.  A Scalar uses String, and Style/Chomp when it came
// from or should be written as a block scalar.
//
// Nodes produced by this package and by parse are not modified after
// construction.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String string
	Style  Style
	Chomp  Chomp
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

// Key is FromString, for readability at lookup sites.
func Key(v string) *Node {
	return FromString(v)
}

func FromLiteral(v string, c Chomp) *Node {
	return FromBlock(v, Literal, c)
}

func FromFolded(v string, c Chomp) *Node {
	return FromBlock(v, Folded, c)
}

func FromBlock(v string, s Style, c Chomp) *Node {
	return &Node{Type: ScalarType, String: v, Style: s, Chomp: c}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: SequenceType}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		if y == nil {
			y = FromString("")
		}
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds a Mapping.  Entries are sorted by key; when two keys
// are Equal the one appearing later in kvs wins.  kvs is not modified.
func FromKeyVals(kvs []KeyVal) *Node {
	sorted := make([]KeyVal, len(kvs))
	for i, kv := range kvs {
		if kv.Key == nil {
			kv.Key = FromString("")
		}
		if kv.Val == nil {
			kv.Val = FromString("")
		}
		sorted[i] = kv
	}
	slices.SortStableFunc(sorted, func(a, b KeyVal) int {
		return Compare(a.Key, b.Key)
	})
	res := &Node{Type: MappingType}
	res.Fields = make([]*Node, 0, len(sorted))
	res.Values = make([]*Node, 0, len(sorted))
	for _, kv := range sorted {
		n := len(res.Fields)
		if n > 0 && Equal(res.Fields[n-1], kv.Key) {
			res.Values[n-1] = kv.Val
			continue
		}
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		kvs = append(kvs, KeyVal{Key: FromString(key), Val: yMap[key]})
	}
	return FromKeyVals(kvs)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Style = y.Style
	dst.Chomp = y.Chomp
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// IsBlock reports whether y is a scalar written in literal or folded style.
func (y *Node) IsBlock() bool {
	return y.Type == ScalarType && y.Style != Plain
}

// IsEmpty reports whether y is a Mapping or Sequence without entries.
func (y *Node) IsEmpty() bool {
	return y.Type != ScalarType && len(y.Values) == 0
}
