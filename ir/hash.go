package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// seed is shared so that hashes are comparable within a process.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal.
//
// A Mapping hashes to the sum of its key hashes and value hashes, so the
// result does not depend on how the entries were inserted.  Sequences
// combine element hashes in order.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	switch n.Type {
	case MappingType:
		var sum uint64
		for _, field := range n.Fields {
			sum += field.Hash()
		}
		for _, v := range n.Values {
			sum += v.Hash()
		}
		return sum
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case ScalarType:
		h.WriteString(n.String)
	case SequenceType:
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
