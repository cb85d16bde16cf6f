package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yamltree/yamltree/debug"
	"github.com/yamltree/yamltree/encode"
	"github.com/yamltree/yamltree/format"
	"github.com/yamltree/yamltree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	J      bool `cli:"name=j aliases=json desc='output json'"`
	Strict bool `cli:"name=strict desc='reject keys defined twice'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	res := []parse.ParseOption{parse.WithFilename(file)}
	if cfg.Strict {
		res = append(res, parse.RejectDuplicateKeys())
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.J {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.encodeOptions(w)
	if debug.Encode() {
		debug.Logf("encoding %s to %T with %d options\n", cfg.outFormat(), w, len(res))
	}
	return res
}

func (cfg *MainConfig) encodeOptions(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Watch bool `cli:"name=w aliases=watch desc='re-render the file whenever it changes'"`
	View  *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
