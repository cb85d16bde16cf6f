package ir

import "slices"

// MappingBuilder accumulates entries for a Mapping.  Insertion order does
// not matter: Build sorts the keys, and a later Add of an Equal key
// replaces the earlier value.
type MappingBuilder struct {
	kvs []KeyVal
}

func NewMappingBuilder() *MappingBuilder {
	return &MappingBuilder{}
}

// Add adds a scalar key with a scalar value.
func (b *MappingBuilder) Add(key, value string) *MappingBuilder {
	return b.AddNode(FromString(key), FromString(value))
}

// AddValue adds a scalar key with any value.
func (b *MappingBuilder) AddValue(key string, value *Node) *MappingBuilder {
	return b.AddNode(FromString(key), value)
}

func (b *MappingBuilder) AddMapping(key string, m *Node) *MappingBuilder {
	return b.AddNode(FromString(key), m)
}

func (b *MappingBuilder) AddSequence(key string, s *Node) *MappingBuilder {
	return b.AddNode(FromString(key), s)
}

// AddNode adds an entry whose key may itself be a Sequence or Mapping.
func (b *MappingBuilder) AddNode(key, value *Node) *MappingBuilder {
	b.kvs = append(b.kvs, KeyVal{Key: key, Val: value})
	return b
}

// Build returns the Mapping.  The builder may be reused afterwards.
func (b *MappingBuilder) Build() *Node {
	return FromKeyVals(b.kvs)
}

// SequenceBuilder accumulates elements for a Sequence in insertion order.
type SequenceBuilder struct {
	values []*Node
}

func NewSequenceBuilder() *SequenceBuilder {
	return &SequenceBuilder{}
}

func (b *SequenceBuilder) Add(value string) *SequenceBuilder {
	return b.AddNode(FromString(value))
}

func (b *SequenceBuilder) AddNode(value *Node) *SequenceBuilder {
	b.values = append(b.values, value)
	return b
}

func (b *SequenceBuilder) Build() *Node {
	return FromSlice(slices.Clone(b.values))
}
