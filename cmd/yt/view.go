package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/yamltree/yamltree/encode"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Watch {
		if len(args) != 1 {
			return fmt.Errorf("%w: view -w requires exactly one file", cli.ErrUsage)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watchFile(ctx, cfg, cc.Out, os.Stderr, args[0])
	}
	return viewFiles(cfg, cc.Out, cc.In, filesOrStdin(args))
}

func viewFiles(cfg *ViewConfig, w io.Writer, in io.Reader, files []string) error {
	for i, file := range files {
		if i > 0 {
			if err := writeSep(w); err != nil {
				return err
			}
		}
		if err := viewFile(cfg, w, in, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, in io.Reader, file string) error {
	d, err := readInput(in, file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	if err := viewDocs(cfg, w, d, file); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewDocs(cfg *ViewConfig, w io.Writer, d []byte, name string) error {
	opts := cfg.encOpts(w)
	for i, doc := range splitDocs(d) {
		y, err := parseDoc(cfg.MainConfig, doc, name)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if i > 0 {
			if err := writeSep(w); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}

// watchFile renders file, then renders it again after every change
// until ctx is done.  Errors while rendering go to errw and do not stop
// the watch.
func watchFile(ctx context.Context, cfg *ViewConfig, w, errw io.Writer, file string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file rather than write it
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", file, err)
	}
	render := func() {
		if err := viewFile(cfg, w, nil, file); err != nil {
			fmt.Fprintf(errw, "%v\n", err)
		}
	}
	render()
	target := filepath.Clean(file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := writeSep(w); err != nil {
				return err
			}
			render()
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			fmt.Fprintf(errw, "watch error: %v\n", err)
		}
	}
}
