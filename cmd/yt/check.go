package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, file := range filesOrStdin(args) {
		d, err := readInput(cc.In, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		ok, err := checkDocs(cfg, cc.Out, d, file)
		if err != nil {
			return err
		}
		failed = failed || !ok
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkDocs parses every document of d and reports the first error, or
// that the input is fine.
func checkDocs(cfg *CheckConfig, w io.Writer, d []byte, name string) (bool, error) {
	for _, doc := range splitDocs(d) {
		if _, err := parseDoc(cfg.MainConfig, doc, name); err != nil {
			_, werr := fmt.Fprintf(w, "%v\n", err)
			return false, werr
		}
	}
	_, err := fmt.Fprintf(w, "%s: ok\n", name)
	return true, err
}
