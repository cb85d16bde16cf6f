package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yamltree/yamltree/debug"
	"github.com/yamltree/yamltree/format"

	"github.com/scott-cotton/cli"
)

func ytMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.OutFormat != nil && !cfg.OutFormat.IsJSON() {
		return fmt.Errorf("%w: -j conflicts with -O %s", cli.ErrUsage, cfg.OutFormat)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	if debug.CLI() {
		debug.Logf("running %s with %q, output format %s\n", args[0], args[1:], cfg.outFormat())
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// outOpt sends output to the file a.  Unless a format is given
// explicitly, the file name suffix chooses it.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	if cfg.OutFormat == nil {
		if fmat, ok := format.FromSuffix(a); ok {
			cfg.OutFormat = &fmat
		}
	}
	return nil, nil
}
