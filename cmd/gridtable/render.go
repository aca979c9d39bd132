// ABOUTME: Renders input documents into tables, several files in parallel
// ABOUTME: Output keeps argument order; each table ends with a newline

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/gridtable/internal/document"
	gtlog "github.com/mauromedda/gridtable/internal/log"
	"github.com/mauromedda/gridtable/pkg/table"
)

var errStdin = errors.New("stdin is not available")

// renderAll renders every input and joins the results with blank lines.
func renderAll(ctx context.Context, args cliArgs, opts []table.Option, stdin io.Reader) (string, error) {
	format, err := document.ParseFormat(args.format)
	if err != nil {
		return "", err
	}

	inputs := args.inputs()
	results := make([]string, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(args.jobs, 1))
	for i, name := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := renderFile(name, format, args.layout, opts, stdin)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(results, "\n"), nil
}

// renderFile decodes one input and returns its table or layout dump with a
// trailing newline.
func renderFile(name string, format document.Format, layout bool, opts []table.Option, stdin io.Reader) (string, error) {
	var r io.Reader
	if name == "-" {
		if stdin == nil {
			return "", errStdin
		}
		r = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := document.Decode(r, format, name)
	if err != nil {
		return "", err
	}
	t, err := table.New(opts...)
	if err != nil {
		return "", err
	}
	if err := doc.Fill(t); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	gtlog.Debug("%s: %d rows", name, t.Len())

	if layout {
		l, widths := t.Layout()
		var sb strings.Builder
		if err := document.WriteLayout(&sb, l, widths); err != nil {
			return "", err
		}
		return sb.String(), nil
	}

	out := t.Render()
	if out == "" {
		return "", nil
	}
	return out + "\n", nil
}
