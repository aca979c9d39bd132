// ABOUTME: ANSI-aware word wrapping and hard (grapheme) wrapping
// ABOUTME: Active styles are re-applied at each line start and closed at each line end

package width

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mauromedda/gridtable/internal/ansitrack"
	"github.com/rivo/uniseg"
)

// Wrap word-wraps s with the process-wide measurer. See Measurer.Wrap.
func Wrap(s string, width int) []string {
	return defaultMeasurer.Wrap(s, width)
}

// Wrap splits s on newlines, then greedily packs the whitespace-separated
// words of each line into lines of at most width visible columns, joined by a
// single space. A word is never broken: one wider than width gets a line of
// its own. Whitespace-only lines are kept verbatim.
func (m *Measurer) Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	var tr ansitrack.Tracker
	var line strings.Builder

	for _, hard := range strings.Split(s, "\n") {
		if strings.TrimSpace(StripANSI(hard)) == "" {
			lines = append(lines, hard)
			processAll(&tr, hard)
			continue
		}

		lineWidth := 0
		open := false
		flush := func() {
			line.WriteString(tr.Close())
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
			open = false
		}

		for _, word := range splitWords(hard) {
			ww := m.Width(word)
			if open && ww > 0 && lineWidth > 0 && lineWidth+1+ww > width {
				flush()
			}
			if !open {
				line.WriteString(tr.Restore())
				open = true
			} else if ww > 0 && lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}
			line.WriteString(word)
			lineWidth += ww
			processAll(&tr, word)
		}
		if open {
			flush()
		}
	}
	return lines
}

// LongestWord returns the display width of the widest whitespace-separated
// word in s, the narrowest width Wrap can honor.
func (m *Measurer) LongestWord(s string) int {
	longest := 0
	for _, hard := range strings.Split(s, "\n") {
		for _, word := range splitWords(hard) {
			longest = max(longest, m.Width(word))
		}
	}
	return longest
}

// splitWords splits s on runs of whitespace. Escape sequences stick to the
// word they touch and never split it.
func splitWords(s string) []string {
	var words []string
	start := -1
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			if start < 0 {
				start = i
			}
			i, _ = scanEscape(s, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// WrapHard wraps s into lines of at most maxWidth visible columns, breaking
// between grapheme clusters regardless of word boundaries.
func (m *Measurer) WrapHard(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	var lines []string
	var currentLine strings.Builder
	currentWidth := 0
	var tr ansitrack.Tracker

	newLine := func() {
		currentLine.WriteString(tr.Close())
		lines = append(lines, currentLine.String())
		currentLine.Reset()
		currentWidth = 0
		// Carry style state to next line
		currentLine.WriteString(tr.Restore())
	}

	i := 0
	for i < len(s) {
		if s[i] == '\n' {
			newLine()
			i++
			continue
		}

		if s[i] == '\x1b' {
			end, _ := scanEscape(s, i)
			seq := s[i:end]
			tr.Process(seq)
			currentLine.WriteString(seq)
			i = end
			continue
		}

		// Read a grapheme cluster
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)

		if currentWidth > 0 && currentWidth+w > maxWidth {
			newLine()
		}

		currentLine.WriteString(cluster)
		currentWidth += w
		i += len(s[i:]) - len(rest)
	}

	currentLine.WriteString(tr.Close())
	lines = append(lines, currentLine.String())
	return lines
}
