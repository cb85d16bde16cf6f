// Package format names the output formats of package encode.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	err = encode.Encode(node, w, encode.EncodeFormat(f))
//
// YAMLFormat is the canonical block text and the default.  JSONFormat is
// indented JSON and cannot express complex keys.
//
// # Related Packages
//
//   - github.com/yamltree/yamltree/encode - Encode IR to text
package format
