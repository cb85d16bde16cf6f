package main

import (
	"fmt"
	"io"

	"github.com/yamltree/yamltree"
	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/ir"
	"github.com/yamltree/yamltree/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffInputs writes the changes from a to b as a Sequence and reports
// whether there were any.
func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if yamltree.Equal(a, b) {
		return false, nil
	}
	changes := yamltree.Diff(a, b)
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if err := encode.Encode(libdiff.Node(changes), w, cfg.encOpts(w)...); err != nil {
		return false, err
	}
	return true, nil
}
