// Package encode writes IR nodes as canonical text.
//
// # Usage
//
//	node := ir.NewMappingBuilder().
//	    Add("name", "alice").
//	    AddSequence("langs", ir.NewSequenceBuilder().Add("go").Build()).
//	    Build()
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode to JSON
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
//	// Encode with terminal colors
//	err = encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Canonical Form
//
// Each mapping entry and sequence element is on its own line, indented by
// two spaces per level.  Mapping entries follow key order.  Keys that are
// not scalars are written as a "?" block followed by a ":" line.  Scalars
// that would read back differently are double quoted, and scalars spanning
// several lines are written as block scalars when the block reads back to
// the same text.  Encoding then parsing yields a node Equal to the
// original.
//
// # Related Packages
//
//   - github.com/yamltree/yamltree/ir - IR representation
//   - github.com/yamltree/yamltree/parse - Parse text to IR
package encode
