// Package parse reads indentation structured text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString("name: alice\nlangs:\n  - go\n")
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.WithFilename("config.yaml"))
//
// # Input
//
// The parser understands block mappings and sequences indented by two
// spaces per level, literal (|) and folded (>) block scalars, quoted
// scalars, and complex keys written as a "?" block followed by a ":" line.
// Document markers, directives, blank lines and comments are skipped.
//
// # Reading
//
// Text is split into Lines.  Before a block is read its lines pass
// through three LineSource filters: NoMarkers, WellIndented and
// SameLevel.  The lines that remain define the keys or elements of the
// block; each value is read from the lines contained below its key.
//
// Errors carry their position as a *LineError wrapping one of
// ErrIndentation, ErrMalformedKey, ErrMalformedElement, ErrDuplicateKey or
// ErrQuote.
//
// # Related Packages
//
//   - github.com/yamltree/yamltree/ir - IR representation
//   - github.com/yamltree/yamltree/encode - Encode IR to text
package parse
