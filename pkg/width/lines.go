// ABOUTME: Newline splitting that keeps styles intact on every resulting line
// ABOUTME: Used for raw multi-line cells so borders between lines stay uncolored

package width

import (
	"strings"

	"github.com/mauromedda/gridtable/internal/ansitrack"
)

// SplitLines splits s on "\n". When s carries escape sequences, a style or
// hyperlink open at the end of a line is closed there and re-opened at the
// start of the next one.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if !containsESC(s) {
		return lines
	}
	var tr ansitrack.Tracker
	for i, line := range lines {
		prefix := tr.Restore()
		processAll(&tr, line)
		lines[i] = prefix + line + tr.Close()
	}
	return lines
}

// MaxLineWidth returns the width of the widest "\n"-separated line of s.
func (m *Measurer) MaxLineWidth(s string) int {
	if !strings.Contains(s, "\n") {
		return m.Width(s)
	}
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, m.Width(line))
	}
	return widest
}
