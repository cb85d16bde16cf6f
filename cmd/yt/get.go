package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	files := filesOrStdin(args[1:])
	for i, arg := range files {
		if err := queryArg(cfg.MainConfig, cc.Out, cc.In, arg, path, false, len(files) > 1 && i > 0); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range filesOrStdin(args[1:]) {
		if err := queryArg(cfg.MainConfig, cc.Out, cc.In, arg, path, true, false); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

// queryArg looks up query in the document read from arg.  A get that
// finds nothing is an error.
func queryArg(cfg *MainConfig, w io.Writer, in io.Reader, arg, query string, list, sep bool) error {
	target, err := getObjFile(cfg, in, arg)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if list {
		res, err := target.ListKPath(nil, query)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", arg, err)
		}
		if err := encode.Encode(ir.FromSlice(res), w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}
	res, err := target.GetKPath(query)
	if err != nil {
		return fmt.Errorf("error executing get on %s: %w", arg, err)
	}
	if sep {
		if err := writeSep(w); err != nil {
			return err
		}
		argLines := strings.Split(strings.TrimSpace(arg), "\n")
		for i, argLine := range argLines {
			msg := "# from " + argLine + "\n"
			if i != 0 {
				msg = "#     " + argLine + "\n"
			}
			if _, err := w.Write([]byte(msg)); err != nil {
				return err
			}
		}
	}
	if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
