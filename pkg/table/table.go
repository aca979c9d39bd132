// ABOUTME: Table facade: accumulates header and body rows and caches the rendered string
// ABOUTME: Any mutation marks the table dirty; Render recomputes only when dirty

package table

import (
	"fmt"

	"github.com/mauromedda/gridtable/pkg/width"
)

// Table is a grid of cells rendered as text. A Table is not safe for
// concurrent use.
type Table struct {
	opts    Options
	measure *width.Measurer

	headers []slot
	rows    [][]slot

	dirty    bool
	rendered string
	layout   *Layout
	widths   []int
}

// New creates an empty table. Options are applied in order over the
// defaults; the first failing option aborts construction.
func New(opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &Table{
		opts:    o,
		measure: width.NewMeasurer(o.CacheSize),
		dirty:   true,
	}, nil
}

// MustNew is like New but panics on an invalid option.
func MustNew(opts ...Option) *Table {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Options returns a copy of the table's settings.
func (t *Table) Options() Options {
	return t.opts
}

// SetHeaders replaces the header row.
func (t *Table) SetHeaders(cells ...any) error {
	row, err := normalizeRow(cells)
	if err != nil {
		return fmt.Errorf("headers: %w", err)
	}
	t.headers = row
	t.dirty = true
	return nil
}

// AddRow appends one body row. A row with an invalid cell is not appended.
func (t *Table) AddRow(cells ...any) error {
	row, err := normalizeRow(cells)
	if err != nil {
		return errorAtRow(len(t.rows), err)
	}
	t.rows = append(t.rows, row)
	t.dirty = true
	return nil
}

// AddRows appends several body rows. Either all rows are appended or, on the
// first invalid cell, none are.
func (t *Table) AddRows(rows ...[]any) error {
	batch := make([][]slot, 0, len(rows))
	for i, cells := range rows {
		row, err := normalizeRow(cells)
		if err != nil {
			return errorAtRow(len(t.rows)+i, err)
		}
		batch = append(batch, row)
	}
	if len(batch) == 0 {
		return nil
	}
	t.rows = append(t.rows, batch...)
	t.dirty = true
	return nil
}

// Len returns the number of body rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the table as text without a trailing newline. The result is
// cached until the next mutation.
func (t *Table) Render() string {
	if !t.dirty {
		return t.rendered
	}

	grid := make([][]slot, 0, len(t.rows)+1)
	headerRows := 0
	if t.opts.ShowHeader && len(t.headers) > 0 {
		grid = append(grid, t.headers)
		headerRows = 1
	}
	grid = append(grid, t.rows...)

	l := buildLayout(grid)
	r := newRenderer(t.opts, t.measure, l, headerRows)

	t.rendered = r.render()
	t.layout = l
	t.widths = r.widths
	t.dirty = false
	return t.rendered
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Layout returns the grid and column widths of the current contents,
// rendering first if needed.
func (t *Table) Layout() (*Layout, []int) {
	t.Render()
	return t.layout, append([]int(nil), t.widths...)
}

func errorAtRow(i int, err error) error {
	return fmt.Errorf("row %d: %w", i, err)
}
