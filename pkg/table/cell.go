// ABOUTME: Cell input types and the normalizer that turns any cell value into a cellSpec
// ABOUTME: nil marks a slot covered by an earlier row span; objects are rejected

package table

import (
	"fmt"
	"strconv"

	"github.com/mauromedda/gridtable/pkg/width"
)

// HAlign is the horizontal alignment of text inside a cell.
type HAlign string

// Horizontal alignments. The zero value inherits the column default.
const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"
)

// VAlign is the vertical alignment of a cell shorter than its row.
type VAlign string

// Vertical alignments. The zero value inherits the table default.
const (
	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// Cell is a structured cell. Rows may mix Cell values with plain strings and
// numbers; a nil slot means the position is covered by a row span from an
// earlier row.
type Cell struct {
	// Content is a string, any integer or float, bool, fmt.Stringer, or nil.
	Content any
	// ColSpan and RowSpan default to 1 when zero.
	ColSpan int
	RowSpan int
	HAlign  HAlign
	VAlign  VAlign
	// MaxWidth truncates the content to this many columns. Zero inherits
	// the table default.
	MaxWidth int
	// WordWrap overrides the table's word wrap setting when non-nil.
	WordWrap *bool
	// Truncate overrides the table's truncation options when non-nil.
	Truncate *width.TruncateOptions
	// Href turns the content into an OSC 8 hyperlink. Empty content shows
	// the URL itself.
	Href string
}

// Empty is an explicit empty cell. Unlike nil it occupies its slot.
var Empty = Cell{}

// cellSpec is the canonical form of a cell after normalization.
type cellSpec struct {
	content  string
	colSpan  int
	rowSpan  int
	hAlign   HAlign
	vAlign   VAlign
	maxWidth int
	wordWrap *bool
	truncate *width.TruncateOptions
}

// slot is one entry of an input row: either a hole or a cell.
type slot struct {
	hole bool
	spec cellSpec
}

func normalize(raw any) (slot, error) {
	switch v := raw.(type) {
	case nil:
		return slot{hole: true}, nil
	case Cell:
		return normalizeCell(v)
	case *Cell:
		if v == nil {
			return slot{hole: true}, nil
		}
		return normalizeCell(*v)
	}
	s, ok := scalarString(raw)
	if !ok {
		return slot{}, fmt.Errorf("%w: %T", ErrInvalidContentType, raw)
	}
	return slot{spec: cellSpec{content: s, colSpan: 1, rowSpan: 1}}, nil
}

func normalizeCell(c Cell) (slot, error) {
	content, ok := scalarString(c.Content)
	if !ok {
		return slot{}, fmt.Errorf("%w: content of type %T", ErrInvalidContentType, c.Content)
	}
	if c.ColSpan < 0 || c.RowSpan < 0 {
		return slot{}, fmt.Errorf("%w: span %dx%d", ErrInvalidConfiguration, c.ColSpan, c.RowSpan)
	}
	if c.MaxWidth < 0 {
		return slot{}, fmt.Errorf("%w: cell max width %d", ErrInvalidConfiguration, c.MaxWidth)
	}
	if err := validateAlign(c.HAlign, c.VAlign); err != nil {
		return slot{}, err
	}
	if c.Truncate != nil {
		if err := validatePosition(c.Truncate.Position); err != nil {
			return slot{}, err
		}
	}
	if c.Href != "" {
		label := content
		if label == "" {
			label = c.Href
		}
		content = width.Hyperlink(c.Href, label)
	}
	return slot{spec: cellSpec{
		content:  content,
		colSpan:  max(c.ColSpan, 1),
		rowSpan:  max(c.RowSpan, 1),
		hAlign:   c.HAlign,
		vAlign:   c.VAlign,
		maxWidth: c.MaxWidth,
		wordWrap: c.WordWrap,
		truncate: c.Truncate,
	}}, nil
}

// scalarString formats the content kinds a cell accepts.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func normalizeRow(cells []any) ([]slot, error) {
	row := make([]slot, len(cells))
	for i, c := range cells {
		s, err := normalize(c)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		row[i] = s
	}
	return row, nil
}

func validateAlign(h HAlign, v VAlign) error {
	switch h {
	case "", AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("%w: horizontal alignment %q", ErrInvalidConfiguration, h)
	}
	switch v {
	case "", AlignTop, AlignMiddle, AlignBottom:
	default:
		return fmt.Errorf("%w: vertical alignment %q", ErrInvalidConfiguration, v)
	}
	return nil
}

func validatePosition(p width.Position) error {
	switch p {
	case "", width.PositionEnd, width.PositionStart, width.PositionMiddle:
		return nil
	}
	return fmt.Errorf("%w: truncation position %q", ErrInvalidConfiguration, p)
}
