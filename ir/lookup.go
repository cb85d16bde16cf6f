package ir

import "slices"

// Len returns the number of entries of a Mapping or elements of a
// Sequence, and 0 for a Scalar.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	return len(y.Values)
}

// Keys returns the keys of a Mapping in Compare order.
func (y *Node) Keys() []*Node {
	if y == nil || y.Type != MappingType {
		return nil
	}
	return slices.Clone(y.Fields)
}

// Children returns the values of a Mapping in key order, or the elements
// of a Sequence in document order.
func (y *Node) Children() []*Node {
	if y == nil || y.Type == ScalarType {
		return nil
	}
	return slices.Clone(y.Values)
}

// Value returns the value stored under key in a Mapping, or nil.
func (y *Node) Value(key *Node) *Node {
	if y == nil || y.Type != MappingType || key == nil {
		return nil
	}
	i, ok := slices.BinarySearchFunc(y.Fields, key, Compare)
	if !ok {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Mapping(key *Node) *Node {
	return ofType(y.Value(key), MappingType)
}

func (y *Node) Sequence(key *Node) *Node {
	return ofType(y.Value(key), SequenceType)
}

// Scalar returns the text of the scalar under key.
func (y *Node) Scalar(key *Node) (string, bool) {
	return scalarText(y.Value(key), -1)
}

// Literal is Scalar restricted to literal block scalars.
func (y *Node) Literal(key *Node) (string, bool) {
	return scalarText(y.Value(key), Literal)
}

// Folded is Scalar restricted to folded block scalars.
func (y *Node) Folded(key *Node) (string, bool) {
	return scalarText(y.Value(key), Folded)
}

// Index returns element i of a Sequence, or nil.
func (y *Node) Index(i int) *Node {
	if y == nil || y.Type != SequenceType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

func (y *Node) MappingAt(i int) *Node {
	return ofType(y.Index(i), MappingType)
}

func (y *Node) SequenceAt(i int) *Node {
	return ofType(y.Index(i), SequenceType)
}

func (y *Node) ScalarAt(i int) (string, bool) {
	return scalarText(y.Index(i), -1)
}

func ofType(y *Node, t Type) *Node {
	if y == nil || y.Type != t {
		return nil
	}
	return y
}

// scalarText returns y's text when y is a scalar of the given style; a
// negative style accepts any.
func scalarText(y *Node, s Style) (string, bool) {
	if y == nil || y.Type != ScalarType {
		return "", false
	}
	if s >= 0 && y.Style != s {
		return "", false
	}
	return y.String, true
}
