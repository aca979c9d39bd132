// ABOUTME: Color profile selection for -color auto|always|never
// ABOUTME: auto enables color only when stdout is a terminal and the environment allows it

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// colorProfile picks the termenv profile for mode and out.
func colorProfile(mode string, out io.Writer) (termenv.Profile, error) {
	switch mode {
	case "never":
		return termenv.Ascii, nil
	case "always":
		p := termenv.NewOutput(out).EnvColorProfile()
		if p == termenv.Ascii {
			p = termenv.ANSI256
		}
		return p, nil
	case "", "auto":
		if !isTerminal(out) {
			return termenv.Ascii, nil
		}
		return termenv.NewOutput(out).EnvColorProfile(), nil
	}
	return termenv.Ascii, fmt.Errorf("invalid -color %q (want auto, always, or never)", mode)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func setupColor(mode string, out io.Writer) error {
	p, err := colorProfile(mode, out)
	if err != nil {
		return err
	}
	lipgloss.SetColorProfile(p)
	return nil
}
