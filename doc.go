// Package yamltree reads and writes indentation-structured documents
// as trees of Scalars, Sequences and Mappings.
//
// The work is done by the sub-packages:
//
//   - [github.com/yamltree/yamltree/ir] holds the node model: ordering,
//     equality, hashing, builders and strict lookups.
//   - [github.com/yamltree/yamltree/parse] reads text into nodes.
//   - [github.com/yamltree/yamltree/encode] renders nodes in canonical form.
//   - [github.com/yamltree/yamltree/libdiff] computes structural changes.
//
// This package gathers the common entry points together with document
// matching.
package yamltree
