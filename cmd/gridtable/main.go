// ABOUTME: CLI entry point for gridtable: renders table documents to stdout
// ABOUTME: Parses flags, loads styles, renders inputs, and optionally watches them

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mauromedda/gridtable/internal/config"
	gtlog "github.com/mauromedda/gridtable/internal/log"
	"github.com/mauromedda/gridtable/pkg/table"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("gridtable %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run renders every input once, then keeps re-rendering on changes when
// -watch is set.
func run(ctx context.Context, args cliArgs, stdin io.Reader, stdout io.Writer) error {
	if args.verbose {
		gtlog.SetLevel(gtlog.LevelDebug)
	}

	if err := setupColor(args.color, stdout); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	if err := renderOnce(ctx, args, cwd, stdin, stdout); err != nil {
		return err
	}
	if !args.watch {
		return nil
	}
	return watch(ctx, args, cwd, stdout)
}

func renderOnce(ctx context.Context, args cliArgs, cwd string, stdin io.Reader, stdout io.Writer) error {
	opts, err := tableOptions(args, cwd)
	if err != nil {
		return err
	}
	out, err := renderAll(ctx, args, opts, stdin)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}

// tableOptions merges the style files with command-line overrides.
func tableOptions(args cliArgs, cwd string) ([]table.Option, error) {
	style, err := config.Load(cwd, args.config)
	if err != nil {
		return nil, err
	}
	opts, err := style.Options()
	if err != nil {
		return nil, err
	}

	if args.border != "" {
		b, err := config.LookupBorder(args.border)
		if err != nil {
			return nil, err
		}
		opts = append(opts, table.WithBorder(b))
	}
	if args.maxWidth != 0 {
		opts = append(opts, table.WithMaxWidth(args.maxWidth))
	}
	if args.compact {
		opts = append(opts, table.WithCompact(true))
	}
	if args.wrap {
		opts = append(opts, table.WithWordWrap(true))
	}
	return opts, nil
}

func watch(ctx context.Context, args cliArgs, cwd string, stdout io.Writer) error {
	for _, f := range args.inputs() {
		if f == "-" {
			return errors.New("-watch needs file arguments, not stdin")
		}
	}

	paths := append([]string(nil), args.inputs()...)
	paths = append(paths, config.StyleFiles(cwd, args.config)...)
	w := config.NewWatcher(paths, config.DefaultWatchInterval)
	gtlog.Debug("watching %d files", len(paths))

	err := w.Run(ctx, func() {
		if isTerminal(stdout) {
			_, _ = io.WriteString(stdout, "\x1b[H\x1b[2J")
		}
		if err := renderOnce(ctx, args, cwd, nil, stdout); err != nil {
			gtlog.Error("%v", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
