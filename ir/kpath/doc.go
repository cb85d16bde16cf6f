// Package kpath provides path parsing for node trees.
//
// A path is a chain of segments:
//   - .field - Mapping entry with a scalar key
//   - [index] - Sequence element
//   - .* / [*] - Wildcards
//
// # Usage
//
//	kp, err := kpath.Parse("users[0].name")
//
//	parent := kp.Parent()
//	child := kp.Append(kpath.Field("email"))
//
// # Related Packages
//
//   - github.com/yamltree/yamltree/ir - IR representation and path lookups
package kpath
