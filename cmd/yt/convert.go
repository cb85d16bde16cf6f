package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range filesOrStdin(args) {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		d, err := readInput(cc.In, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if err := convertDocs(cfg, cc.Out, d); err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	return nil
}

// convertDocs decodes every document of d with a full YAML decoder, which
// also reads JSON, and renders each in canonical form.
func convertDocs(cfg *ConvertConfig, w io.Writer, d []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(d))
	opts := cfg.encOpts(w)
	for i := 0; ; i++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		n, err := ir.FromAny(v)
		if err != nil {
			return fmt.Errorf("error converting document %d: %w", i, err)
		}
		if i > 0 {
			if err := writeSep(w); err != nil {
				return err
			}
		}
		if err := encode.Encode(n, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
}
