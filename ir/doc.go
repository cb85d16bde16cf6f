// Package ir provides the node tree shared by the parser and the encoder.
//
// # Overview
//
// Every document, whether read from text by package parse or assembled
// with a builder, is an ir.Node tree.  The tree is a recursive tagged
// union: the Type field says which of the other fields are in use.
//
//   - ScalarType: a text value in String, with an optional block Style
//   - SequenceType: ordered elements in Values
//   - MappingType: keys in Fields, values in Values, at the same index
//
// # Ordering
//
// Nodes are totally ordered by Compare.  Across types the order is
// Scalar < Sequence < Mapping.  Scalars order by their text.  Sequences
// order element by element.  Mappings order by size, then by their sorted
// keys and values taken pairwise.  Equal is Compare(a, b) == 0, and Hash is
// consistent with it.
//
// The order is also the iteration order of a Mapping: Fields are kept
// sorted and unique, so a Mapping read from text and one built in any
// insertion order enumerate the same way.
//
// # Creating Nodes
//
//	m := ir.NewMappingBuilder().
//	    Add("name", "alice").
//	    AddValue("langs", ir.NewSequenceBuilder().Add("go").Build()).
//	    Build()
//
// # Lookups
//
// Lookups return nil, or false, when nothing is found:
//
//	langs := m.Sequence(ir.Key("langs"))
//	name, ok := m.Scalar(ir.Key("name"))
//
// Wrap a node with Strict to get a *NotFoundError instead:
//
//	langs, err := ir.Strict(m).Sequence(ir.Key("langs"))
//
// # Related Packages
//
//   - github.com/yamltree/yamltree/parse - Parse text to IR
//   - github.com/yamltree/yamltree/encode - Encode IR to text
package ir
