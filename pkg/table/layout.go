// ABOUTME: Layout builder: places cells on the grid and materializes span placeholders
// ABOUTME: Cells live in a flat arena; placeholders point at their owner by index

package table

import "github.com/mauromedda/gridtable/internal/log"

// LayoutCell is one grid record. Owners carry content; placeholders cover
// the rest of an owner's span and have Parent set to the owner's index.
type LayoutCell struct {
	X, Y          int
	Width, Height int
	Content       string
	// Parent is the arena index of the owning cell, or -1 for owners.
	Parent int

	spec cellSpec
}

// IsPlaceholder reports whether c only marks a coordinate covered by a span.
func (c LayoutCell) IsPlaceholder() bool {
	return c.Parent >= 0
}

// Layout is the placed grid. Every coordinate inside Width x Height maps to
// exactly one cell record.
type Layout struct {
	Cells  []LayoutCell
	Width  int
	Height int

	index []int
}

// At returns the arena index of the record at (x, y), or -1 when the
// coordinate is outside the grid.
func (l *Layout) At(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return -1
	}
	return l.index[y*l.Width+x]
}

// Owner returns the arena index of the owner covering (x, y), or -1.
func (l *Layout) Owner(x, y int) int {
	i := l.At(x, y)
	if i < 0 {
		return -1
	}
	if p := l.Cells[i].Parent; p >= 0 {
		return p
	}
	return i
}

// BuildLayout normalizes rows and places them on a grid without rendering.
func BuildLayout(rows [][]any) (*Layout, error) {
	slots := make([][]slot, 0, len(rows))
	for i, r := range rows {
		row, err := normalizeRow(r)
		if err != nil {
			return nil, errorAtRow(i, err)
		}
		slots = append(slots, row)
	}
	return buildLayout(slots), nil
}

func buildLayout(rows [][]slot) *Layout {
	l := &Layout{Height: len(rows)}
	for y, row := range rows {
		w := 0
		for _, s := range row {
			if s.hole {
				w++
				continue
			}
			w += s.spec.colSpan
			l.Height = max(l.Height, y+s.spec.rowSpan)
		}
		l.Width = max(l.Width, w)
	}

	l.index = make([]int, l.Width*l.Height)
	for i := range l.index {
		l.index[i] = -1
	}

	for y, row := range rows {
		x := 0
		for _, s := range row {
			if s.hole {
				x++
				continue
			}
			owner := len(l.Cells)
			l.Cells = append(l.Cells, LayoutCell{
				X: x, Y: y,
				Width:   s.spec.colSpan,
				Height:  s.spec.rowSpan,
				Content: s.spec.content,
				Parent:  -1,
				spec:    s.spec,
			})
			l.claim(x, y, owner)
			for dy := range s.spec.rowSpan {
				for dx := range s.spec.colSpan {
					if dx == 0 && dy == 0 {
						continue
					}
					l.Cells = append(l.Cells, LayoutCell{
						X: x + dx, Y: y + dy,
						Width: 1, Height: 1,
						Parent: owner,
					})
					l.claim(x+dx, y+dy, len(l.Cells)-1)
				}
			}
			x += s.spec.colSpan
		}
	}

	for y := range l.Height {
		for x := range l.Width {
			if l.index[y*l.Width+x] >= 0 {
				continue
			}
			l.Cells = append(l.Cells, LayoutCell{
				X: x, Y: y, Width: 1, Height: 1, Parent: -1,
				spec: cellSpec{colSpan: 1, rowSpan: 1},
			})
			l.index[y*l.Width+x] = len(l.Cells) - 1
		}
	}
	return l
}

// claim points the coordinate at cell i. Overlapping spans are not resolved:
// the later cell wins the coordinate.
func (l *Layout) claim(x, y, i int) {
	k := y*l.Width + x
	if prev := l.index[k]; prev >= 0 {
		log.Debug("table: cell at (%d,%d) overlaps an earlier span", x, y)
	}
	l.index[k] = i
}
