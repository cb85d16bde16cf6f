package main

import (
	"fmt"
	"io"

	"github.com/yamltree/yamltree"
	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/ir"
	"github.com/yamltree/yamltree/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match document", cli.ErrUsage)
	}
	m, err := getMatch(cfg, cc.In, args[0])
	if err != nil {
		return err
	}
	for _, arg := range filesOrStdin(args[1:]) {
		d, err := readInput(cc.In, arg)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", arg, err)
		}
		res, err := matchDocs(nil, cfg, m, d, arg)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", arg, err)
		}
		if err := writeMatches(cfg, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func getMatch(cfg *MatchConfig, in io.Reader, arg string) (*ir.Node, error) {
	return getish(cfg.String, cfg.File, in, arg, cfg.parseOpts("match"))
}

// getish reads a document given on the command line, as text with -s
// and as a file path with -f.
func getish(s, f bool, in io.Reader, arg string, opts []parse.ParseOption) (*ir.Node, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	d := []byte(arg)
	if f {
		var err error
		d, err = readInput(in, arg)
		if err != nil {
			return nil, fmt.Errorf("error reading match: %w", err)
		}
	}
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding match: %w", err)
	}
	return res, nil
}

func matchDocs(dst []*ir.Node, cfg *MatchConfig, m *ir.Node, d []byte, name string) ([]*ir.Node, error) {
	for i, doc := range splitDocs(d) {
		y, err := parseDoc(cfg.MainConfig, doc, name)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if !yamltree.Match(y, m) {
			continue
		}
		if cfg.Trim {
			y = yamltree.Trim(m, y)
		}
		dst = append(dst, y)
	}
	return dst, nil
}

func writeMatches(cfg *MatchConfig, w io.Writer, res []*ir.Node) error {
	for i, y := range res {
		if i > 0 {
			if err := writeSep(w); err != nil {
				return err
			}
		}
		if err := encode.Encode(y, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}
