// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -border, -config, -format, -layout, -color, -watch, -verbose, -version

package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
)

type cliArgs struct {
	border   string
	config   string
	format   string
	color    string
	maxWidth int
	compact  bool
	wrap     bool
	layout   bool
	watch    bool
	jobs     int
	verbose  bool
	version  bool
	files    []string
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("gridtable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: gridtable [flags] [file ...]")
		fs.PrintDefaults()
	}

	fs.StringVar(&args.border, "border", "", "Border preset (default, rounded, double, ascii, markdown, dotted, minimal, none)")
	fs.StringVar(&args.config, "config", "", "Style file merged over the global and project styles")
	fs.StringVar(&args.format, "format", "auto", "Input format: auto, json, yaml, or html")
	fs.StringVar(&args.color, "color", "auto", "Color output: auto, always, or never")
	fs.IntVar(&args.maxWidth, "max-width", 0, "Truncate every cell to this many columns")
	fs.BoolVar(&args.compact, "compact", false, "Omit separators between body rows")
	fs.BoolVar(&args.wrap, "wrap", false, "Word-wrap cells")
	fs.BoolVar(&args.layout, "layout", false, "Print the computed layout as JSON instead of the table")
	fs.BoolVar(&args.watch, "watch", false, "Re-render when an input or style file changes")
	fs.IntVar(&args.jobs, "jobs", runtime.GOMAXPROCS(0), "Files rendered in parallel")
	fs.BoolVar(&args.verbose, "verbose", false, "Log debug diagnostics to stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	args.files = fs.Args()
	return args, nil
}

// inputs returns the files to render; "-" stands for stdin.
func (a cliArgs) inputs() []string {
	if len(a.files) == 0 {
		return []string{"-"}
	}
	return a.files
}
