// ABOUTME: Row and border rendering: cell blocks, content lines, and junction glyphs
// ABOUTME: Row-spanning cells render as one block that runs through inner separator lines

package table

import (
	"strings"

	"github.com/mauromedda/gridtable/internal/pool"
	"github.com/mauromedda/gridtable/pkg/width"
)

// renderer holds the state of a single render pass.
type renderer struct {
	opts       Options
	m          *width.Measurer
	l          *Layout
	headerRows int
	sepWidth   int

	widths  []int
	heights []int
	// drawn[b] reports whether the boundary line above row b is rendered.
	drawn []bool
	// lines and blocks are indexed like l.Cells; only owners have entries.
	lines  [][]string
	blocks [][]string
}

func newRenderer(opts Options, m *width.Measurer, l *Layout, headerRows int) *renderer {
	r := &renderer{
		opts:       opts,
		m:          m,
		l:          l,
		headerRows: headerRows,
		sepWidth:   m.Width(opts.Border.Join),
	}

	r.drawn = make([]bool, l.Height)
	for b := 1; b < l.Height; b++ {
		if headerRows > 0 && b == headerRows {
			r.drawn[b] = opts.Border.Header.drawn()
			continue
		}
		r.drawn[b] = opts.Border.Separator.drawn() && !opts.Compact
	}

	r.widths = r.columnWidths()

	r.lines = make([][]string, len(l.Cells))
	for i, c := range l.Cells {
		if !c.IsPlaceholder() {
			r.lines[i] = r.cellLines(c)
		}
	}

	r.heights = r.rowHeights()

	r.blocks = make([][]string, len(l.Cells))
	for i, c := range l.Cells {
		if !c.IsPlaceholder() {
			r.blocks[i] = r.block(i, c)
		}
	}
	return r
}

// padding clamps the configured padding to the available width.
func (r *renderer) padding(avail int) (left, right, inner int) {
	left = min(r.opts.PaddingLeft, avail)
	right = min(r.opts.PaddingRight, avail-left)
	return left, right, avail - left - right
}

func (r *renderer) truncateOf(s cellSpec) width.TruncateOptions {
	if s.truncate != nil {
		return *s.truncate
	}
	return r.opts.Truncate
}

func (r *renderer) hAlignOf(c LayoutCell) HAlign {
	if c.spec.hAlign != "" {
		return c.spec.hAlign
	}
	if c.X < len(r.opts.ColAligns) && r.opts.ColAligns[c.X] != "" {
		return r.opts.ColAligns[c.X]
	}
	return AlignLeft
}

func (r *renderer) vAlignOf(s cellSpec) VAlign {
	if s.vAlign != "" {
		return s.vAlign
	}
	if r.opts.VAlign != "" {
		return r.opts.VAlign
	}
	return AlignTop
}

// cellLines produces the text lines of a cell, each no wider than the space
// left inside its span after padding. Truncation takes priority over
// wrapping, which takes priority over the raw line split.
func (r *renderer) cellLines(c LayoutCell) []string {
	s := c.spec
	if s.content == "" {
		return []string{""}
	}
	_, _, inner := r.padding(r.spanWidth(c.X, c.Width))
	trunc := r.truncateOf(s)

	if mw := r.maxWidthOf(s); mw > 0 {
		limit := min(mw, inner)
		lines := width.SplitLines(s.content)
		for i, ln := range lines {
			lines[i] = r.m.Truncate(ln, limit, trunc)
		}
		return lines
	}

	var lines []string
	switch {
	case r.wordWrapOf(s) && r.opts.WrapOnWordBoundary:
		lines = r.m.Wrap(s.content, inner)
	case r.wordWrapOf(s):
		lines = r.m.WrapHard(s.content, inner)
	default:
		lines = width.SplitLines(s.content)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	for i, ln := range lines {
		if r.m.Width(ln) > inner {
			lines[i] = r.m.Truncate(ln, inner, trunc)
		}
	}
	return lines
}

// block lays out an owner's lines over the full height of its span,
// including the separator lines it crosses.
func (r *renderer) block(i int, c LayoutCell) []string {
	height := r.separatorsWithin(c.Y, c.Height)
	for y := c.Y; y < c.Y+c.Height && y < len(r.heights); y++ {
		height += r.heights[y]
	}

	avail := r.spanWidth(c.X, c.Width)
	padL, padR, inner := r.padding(avail)
	lines := r.lines[i]
	if len(lines) > height {
		lines = lines[:height]
	}

	before := 0
	switch extra := height - len(lines); r.vAlignOf(c.spec) {
	case AlignMiddle:
		before = extra / 2
	case AlignBottom:
		before = extra
	}

	blank := strings.Repeat(" ", avail)
	head := c.Y < r.headerRows
	out := make([]string, 0, height)
	for range before {
		out = append(out, blank)
	}
	for _, ln := range lines {
		out = append(out, r.alignLine(ln, r.hAlignOf(c), head, padL, padR, inner))
	}
	for len(out) < height {
		out = append(out, blank)
	}
	return out
}

func (r *renderer) alignLine(ln string, align HAlign, head bool, padL, padR, inner int) string {
	rem := max(inner-r.m.Width(ln), 0)
	left, right := 0, rem
	switch align {
	case AlignCenter:
		left = rem / 2
		right = rem - left
	case AlignRight:
		left, right = rem, 0
	}
	if head && ln != "" && r.opts.HeadStyle != nil {
		ln = r.opts.HeadStyle.Render(ln)
	}

	sb := pool.Builder()
	defer pool.Release(sb)
	sb.WriteString(strings.Repeat(" ", padL+left))
	sb.WriteString(ln)
	sb.WriteString(strings.Repeat(" ", right+padR))
	return sb.String()
}

// lineOffset is the index in owner o's block of the first line of row y.
func (r *renderer) lineOffset(o, y int) int {
	off := 0
	for row := r.l.Cells[o].Y; row < y; row++ {
		off += r.heights[row]
		if row+1 < len(r.drawn) && r.drawn[row+1] {
			off++
		}
	}
	return off
}

// segment renders columns [x, end) on one physical line. The owner's block
// is used only when the run covers its whole column span; otherwise the run
// is blank.
func (r *renderer) segment(o, x, end, line int) string {
	c := r.l.Cells[o]
	if c.X == x && c.Width == end-x && line >= 0 && line < len(r.blocks[o]) {
		return r.blocks[o][line]
	}
	return strings.Repeat(" ", r.spanWidth(x, end-x))
}

func (r *renderer) paint(s string) string {
	if s == "" || r.opts.BorderStyle == nil {
		return s
	}
	return r.opts.BorderStyle.Render(s)
}

// fill repeats glyph to exactly n columns, padding with spaces when the
// glyph does not divide n.
func (r *renderer) fill(glyph string, n int) string {
	if n <= 0 {
		return ""
	}
	gw := r.m.Width(glyph)
	if gw <= 0 {
		return strings.Repeat(" ", n)
	}
	return strings.Repeat(glyph, n/gw) + strings.Repeat(" ", n%gw)
}

// glyph returns the first non-empty candidate, or n spaces.
func glyph(n int, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return strings.Repeat(" ", n)
}

func (r *renderer) render() string {
	if r.l.Width == 0 || r.l.Height == 0 {
		return ""
	}

	b := r.opts.Border
	var out []string
	if b.Top.drawn() {
		out = append(out, r.edgeLine(b.Top, 0))
	}
	for y := range r.l.Height {
		if y > 0 && r.drawn[y] {
			out = append(out, r.separatorLine(y))
		}
		for k := range r.heights[y] {
			out = append(out, r.contentLine(y, k))
		}
	}
	if b.Bottom.drawn() {
		out = append(out, r.edgeLine(b.Bottom, r.l.Height-1))
	}
	return strings.Join(out, "\n")
}

// edgeLine draws the top or bottom rule; a junction appears wherever row y
// changes owner.
func (r *renderer) edgeLine(ln Line, y int) string {
	b := r.opts.Border
	sb := pool.Builder()
	defer pool.Release(sb)

	sb.WriteString(r.paint(glyph(r.m.Width(b.Left), ln.Left)))
	for x := range r.l.Width {
		if x > 0 {
			if r.l.Owner(x-1, y) != r.l.Owner(x, y) {
				sb.WriteString(r.paint(glyph(r.sepWidth, ln.Join)))
			} else {
				sb.WriteString(r.paint(r.fill(ln.Body, r.sepWidth)))
			}
		}
		sb.WriteString(r.paint(r.fill(ln.Body, r.widths[x])))
	}
	sb.WriteString(r.paint(glyph(r.m.Width(b.Right), ln.Right)))
	return sb.String()
}

func (r *renderer) boundaryLine(b int) Line {
	if r.headerRows > 0 && b == r.headerRows {
		return r.opts.Border.Header
	}
	return r.opts.Border.Separator
}

// separatorLine draws the boundary above row b. Columns where an owner runs
// through the boundary show that owner's block instead of a rule.
func (r *renderer) separatorLine(b int) string {
	bd := r.opts.Border
	ln := r.boundaryLine(b)
	w := r.l.Width
	crossed := func(x int) bool {
		return r.l.Owner(x, b-1) == r.l.Owner(x, b)
	}

	sb := pool.Builder()
	defer pool.Release(sb)

	if crossed(0) {
		sb.WriteString(r.paint(bd.Left))
	} else {
		sb.WriteString(r.paint(glyph(r.m.Width(bd.Left), ln.Left)))
	}

	x := 0
	for x < w {
		if x > 0 {
			sb.WriteString(r.paint(r.junction(ln, b, x, !crossed(x-1), !crossed(x))))
		}
		if !crossed(x) {
			sb.WriteString(r.paint(r.fill(ln.Body, r.widths[x])))
			x++
			continue
		}
		o := r.l.Owner(x, b)
		end := x + 1
		for end < w && crossed(end) && r.l.Owner(end, b) == o {
			end++
		}
		line := r.lineOffset(o, b-1) + r.heights[b-1]
		sb.WriteString(r.segment(o, x, end, line))
		x = end
	}

	if crossed(w - 1) {
		sb.WriteString(r.paint(bd.Right))
	} else {
		sb.WriteString(r.paint(glyph(r.m.Width(bd.Right), ln.Right)))
	}
	return sb.String()
}

// junction picks the glyph between columns x-1 and x on boundary b. left
// and right report whether a rule is drawn on each side.
func (r *renderer) junction(ln Line, b, x int, left, right bool) string {
	bd := r.opts.Border
	switch {
	case left && right:
		up := r.l.Owner(x-1, b-1) != r.l.Owner(x, b-1)
		down := r.l.Owner(x-1, b) != r.l.Owner(x, b)
		switch {
		case up && down:
			return glyph(r.sepWidth, ln.Join)
		case up:
			return glyph(r.sepWidth, bd.Bottom.Join, ln.Join)
		case down:
			return glyph(r.sepWidth, bd.Top.Join, ln.Join)
		}
		return r.fill(ln.Body, r.sepWidth)
	case left:
		return glyph(r.sepWidth, ln.Right, ln.Join)
	case right:
		return glyph(r.sepWidth, ln.Left, ln.Join)
	}
	return glyph(r.sepWidth, bd.Join)
}

func (r *renderer) contentLine(y, k int) string {
	bd := r.opts.Border
	sb := pool.Builder()
	defer pool.Release(sb)

	sb.WriteString(r.paint(bd.Left))
	x := 0
	for x < r.l.Width {
		o := r.l.Owner(x, y)
		end := x + 1
		for end < r.l.Width && r.l.Owner(end, y) == o {
			end++
		}
		if x > 0 {
			sb.WriteString(r.paint(glyph(r.sepWidth, bd.Join)))
		}
		sb.WriteString(r.segment(o, x, end, r.lineOffset(o, y)+k))
		x = end
	}
	sb.WriteString(r.paint(bd.Right))
	return sb.String()
}
