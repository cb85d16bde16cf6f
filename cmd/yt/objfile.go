package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yamltree/yamltree/ir"
	"github.com/yamltree/yamltree/parse"
)

func readInput(in io.Reader, path string) ([]byte, error) {
	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cfg *MainConfig, in io.Reader, path string) (*ir.Node, error) {
	d, err := readInput(in, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// document is one "---" separated part of an input.  line is the
// position of its first line in the input.
type document struct {
	data []byte
	line int
}

func splitDocs(d []byte) []document {
	parts := bytes.Split(d, []byte("\n---\n"))
	res := make([]document, len(parts))
	line := 0
	for i, p := range parts {
		res[i] = document{data: p, line: line}
		line += bytes.Count(p, []byte("\n")) + 2
	}
	return res
}

// parseDoc parses doc, reporting error lines relative to the whole input.
func parseDoc(cfg *MainConfig, doc document, name string) (*ir.Node, error) {
	n, err := parse.Parse(doc.data, cfg.parseOpts(name)...)
	var le *parse.LineError
	if errors.As(err, &le) {
		le.Line += doc.line
	}
	return n, err
}

func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
