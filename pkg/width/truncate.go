// ABOUTME: Width-bounded truncation at the end, start, or middle of a line
// ABOUTME: Budgets include the ellipsis width; styles survive the cut without leaking

package width

import "strings"

// Position selects which part of the text truncation removes.
type Position string

// Truncation positions.
const (
	PositionEnd    Position = "end"
	PositionStart  Position = "start"
	PositionMiddle Position = "middle"
)

// Ellipsis is the default truncation character.
const Ellipsis = "…"

// spaceSearch is how many columns a preferred cut may move to land on a space.
const spaceSearch = 3

// TruncateOptions controls Truncate. The zero value truncates at the end
// with a bare ellipsis.
type TruncateOptions struct {
	Position Position
	// Character replaces the ellipsis. Its display width counts against
	// the budget.
	Character string
	// PreferSpace moves the cut up to three columns to fall on a space.
	PreferSpace bool
	// Space separates the kept text from the ellipsis with one space.
	Space bool
}

func (o TruncateOptions) character() string {
	if o.Character == "" {
		return Ellipsis
	}
	return o.Character
}

// Truncate shortens s with the process-wide measurer. See Measurer.Truncate.
func Truncate(s string, maxWidth int, opts TruncateOptions) string {
	return defaultMeasurer.Truncate(s, maxWidth, opts)
}

// Truncate shortens every line of s to at most maxWidth visible columns.
// Lines are handled independently; a line that already fits is returned
// byte for byte. maxWidth below one yields the empty string.
func (m *Measurer) Truncate(s string, maxWidth int, opts TruncateOptions) string {
	if maxWidth < 1 {
		return ""
	}
	if !strings.Contains(s, "\n") {
		return m.truncateLine(s, maxWidth, opts)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = m.truncateLine(line, maxWidth, opts)
	}
	return strings.Join(lines, "\n")
}

func (m *Measurer) truncateLine(s string, maxWidth int, opts TruncateOptions) string {
	total := m.Width(s)
	if total <= maxWidth {
		return s
	}
	ell := opts.character()
	ellWidth := m.Width(ell)
	if maxWidth == 1 || ellWidth >= maxWidth {
		if ellWidth <= maxWidth {
			return ell
		}
		return SliceByColumn(ell, 0, maxWidth)
	}

	segs := extractSegments(s)
	var spaces map[int]bool
	if opts.PreferSpace {
		spaces = spaceColumns(segs)
	}

	switch opts.Position {
	case PositionStart:
		marker := ell
		if opts.Space {
			marker = ell + " "
		}
		keep := maxWidth - m.fitMarker(&marker, ell, maxWidth)
		from := total - keep
		if c, ok := nearestSpace(spaces, from, 1); ok {
			from = c + 1
		}
		return marker + sliceSegments(segs, from, total)

	case PositionMiddle:
		marker := ell
		if opts.Space {
			marker = " " + ell + " "
		}
		mw := m.fitMarker(&marker, ell, maxWidth)
		head := maxWidth / 2
		tail := maxWidth - head - mw
		if tail < 0 {
			head += tail
			tail = 0
		}
		tailFrom := total - tail
		if c, ok := nearestSpace(spaces, head, -1); ok {
			head = c
		}
		if c, ok := nearestSpace(spaces, tailFrom, 1); ok {
			tailFrom = c + 1
		}
		return sliceSegments(segs, 0, head) + marker + sliceSegments(segs, tailFrom, total)

	default:
		marker := ell
		if opts.Space {
			marker = " " + ell
		}
		cut := maxWidth - m.fitMarker(&marker, ell, maxWidth)
		if c, ok := nearestSpace(spaces, cut, -1); ok {
			cut = c
		}
		return sliceSegments(segs, 0, cut) + marker
	}
}

// fitMarker falls back to the bare ellipsis when the spaced marker would not
// fit, and returns the marker's width.
func (m *Measurer) fitMarker(marker *string, ell string, maxWidth int) int {
	w := m.Width(*marker)
	if w >= maxWidth {
		*marker = ell
		w = m.Width(ell)
	}
	return w
}

// nearestSpace looks for a space at col and up to spaceSearch columns away in
// direction dir (-1 left, 1 right).
func nearestSpace(spaces map[int]bool, col, dir int) (int, bool) {
	if len(spaces) == 0 {
		return col, false
	}
	for d := 0; d <= spaceSearch; d++ {
		c := col + d*dir
		if spaces[c] {
			return c, true
		}
	}
	return col, false
}
