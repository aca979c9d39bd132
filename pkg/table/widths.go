// ABOUTME: Column width and row height calculation under span constraints
// ABOUTME: A span of n needs ceil((desired - (n-1)*sep) / n) in each covered column

package table

import "github.com/mauromedda/gridtable/internal/log"

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (r *renderer) maxWidthOf(s cellSpec) int {
	if s.maxWidth > 0 {
		return s.maxWidth
	}
	return r.opts.MaxWidth
}

func (r *renderer) wordWrapOf(s cellSpec) bool {
	if s.wordWrap != nil {
		return *s.wordWrap
	}
	return r.opts.WordWrap
}

// contentWidth is the width a cell asks for, excluding padding.
func (r *renderer) contentWidth(s cellSpec) int {
	if s.content == "" {
		return 0
	}
	if mw := r.maxWidthOf(s); mw > 0 {
		return min(r.m.MaxLineWidth(s.content), mw)
	}
	if r.wordWrapOf(s) && r.opts.WrapOnWordBoundary {
		return r.m.LongestWord(s.content)
	}
	return r.m.MaxLineWidth(s.content)
}

func (r *renderer) columnWidths() []int {
	widths := make([]int, r.l.Width)
	for _, c := range r.l.Cells {
		if c.IsPlaceholder() {
			continue
		}
		desired := 0
		if cw := r.contentWidth(c.spec); cw > 0 {
			desired = cw + r.opts.PaddingLeft + r.opts.PaddingRight
		}
		if c.Width == 1 {
			widths[c.X] = max(widths[c.X], desired)
			continue
		}
		per := ceilDiv(desired-(c.Width-1)*r.sepWidth, c.Width)
		for x := c.X; x < c.X+c.Width && x < len(widths); x++ {
			widths[x] = max(widths[x], per)
		}
	}
	for x, w := range r.opts.ColWidths {
		if x >= len(widths) || w <= 0 {
			continue
		}
		if w < widths[x] {
			log.Debug("table: column %d fixed at %d, content wants %d", x, w, widths[x])
		}
		widths[x] = w
	}
	return widths
}

// spanWidth is the total width of columns [x, x+n) including the inner
// separators between them.
func (r *renderer) spanWidth(x, n int) int {
	w := (n - 1) * r.sepWidth
	for i := x; i < x+n && i < len(r.widths); i++ {
		w += r.widths[i]
	}
	return w
}

// separatorsWithin counts drawn boundary lines strictly inside rows
// [y, y+n).
func (r *renderer) separatorsWithin(y, n int) int {
	s := 0
	for b := y + 1; b < y+n && b < len(r.drawn); b++ {
		if r.drawn[b] {
			s++
		}
	}
	return s
}

func (r *renderer) rowHeights() []int {
	heights := make([]int, r.l.Height)
	for i := range heights {
		heights[i] = 1
	}
	for i, c := range r.l.Cells {
		if c.IsPlaceholder() {
			continue
		}
		lines := len(r.lines[i])
		if c.Height == 1 {
			heights[c.Y] = max(heights[c.Y], lines)
			continue
		}
		per := ceilDiv(lines-r.separatorsWithin(c.Y, c.Height), c.Height)
		for y := c.Y; y < c.Y+c.Height && y < len(heights); y++ {
			heights[y] = max(heights[y], per)
		}
	}
	return heights
}
