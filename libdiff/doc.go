// Package libdiff computes structural differences between node trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//
//	// the changes that undo it
//	undo := libdiff.Reverse(changes)
//
//	// as a tree, for printing
//	fmt.Print(encode.MustString(libdiff.Node(changes)))
//
// Mappings are compared by walking their sorted keys; Sequences are
// aligned element by element before recursing into equal-shaped pairs.
//
// # Related Packages
//
//   - github.com/yamltree/yamltree/ir - IR representation
//   - github.com/yamltree/yamltree/ir/kpath - change paths
package libdiff
