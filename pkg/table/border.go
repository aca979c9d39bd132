// ABOUTME: Border glyph sets and the built-in presets
// ABOUTME: An empty Body glyph suppresses that horizontal line entirely

package table

import "strings"

// Line holds the glyphs of one horizontal border line.
type Line struct {
	Left  string
	Body  string
	Join  string
	Right string
}

// drawn reports whether the line is rendered at all.
func (l Line) drawn() bool {
	return l.Body != ""
}

// Border is a complete glyph set. Left, Join, and Right are the vertical
// glyphs between cells on content lines.
type Border struct {
	Top       Line
	Header    Line
	Separator Line
	Bottom    Line
	Left      string
	Join      string
	Right     string
}

// Built-in border presets.
var (
	BorderDefault = Border{
		Top:       Line{"┌", "─", "┬", "┐"},
		Header:    Line{"├", "─", "┼", "┤"},
		Separator: Line{"├", "─", "┼", "┤"},
		Bottom:    Line{"└", "─", "┴", "┘"},
		Left:      "│", Join: "│", Right: "│",
	}

	BorderRounded = Border{
		Top:       Line{"╭", "─", "┬", "╮"},
		Header:    Line{"├", "─", "┼", "┤"},
		Separator: Line{"├", "─", "┼", "┤"},
		Bottom:    Line{"╰", "─", "┴", "╯"},
		Left:      "│", Join: "│", Right: "│",
	}

	BorderDouble = Border{
		Top:       Line{"╔", "═", "╦", "╗"},
		Header:    Line{"╠", "═", "╬", "╣"},
		Separator: Line{"╠", "═", "╬", "╣"},
		Bottom:    Line{"╚", "═", "╩", "╝"},
		Left:      "║", Join: "║", Right: "║",
	}

	BorderASCII = Border{
		Top:       Line{"+", "-", "+", "+"},
		Header:    Line{"+", "-", "+", "+"},
		Separator: Line{"+", "-", "+", "+"},
		Bottom:    Line{"+", "-", "+", "+"},
		Left:      "|", Join: "|", Right: "|",
	}

	// BorderMarkdown renders a pipe table: only the header rule is drawn.
	BorderMarkdown = Border{
		Header: Line{"|", "-", "|", "|"},
		Left:   "|", Join: "|", Right: "|",
	}

	BorderDotted = Border{
		Top:       Line{"⡏", "⠉", "⡏", "⢹"},
		Header:    Line{"⡇", "⠤", "⡇", "⢸"},
		Separator: Line{"⡇", "⠤", "⡇", "⢸"},
		Bottom:    Line{"⣇", "⣀", "⣇", "⣸"},
		Left:      "⡇", Join: "⡇", Right: "⢸",
	}

	// BorderMinimal draws inner verticals and the header rule only.
	BorderMinimal = Border{
		Header: Line{"", "─", "┼", ""},
		Join:   "│",
	}

	BorderNone = Border{}
)

var borderPresets = map[string]Border{
	"default":  BorderDefault,
	"single":   BorderDefault,
	"rounded":  BorderRounded,
	"double":   BorderDouble,
	"ascii":    BorderASCII,
	"markdown": BorderMarkdown,
	"dotted":   BorderDotted,
	"minimal":  BorderMinimal,
	"none":     BorderNone,
}

// BorderByName looks up a preset by name, case-insensitively.
func BorderByName(name string) (Border, bool) {
	b, ok := borderPresets[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// BorderNames lists the preset names accepted by BorderByName.
func BorderNames() []string {
	return []string{"default", "single", "rounded", "double", "ascii", "markdown", "dotted", "minimal", "none"}
}
