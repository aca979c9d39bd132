// ABOUTME: Table configuration: defaults, functional options, and validation
// ABOUTME: Invalid values surface as ErrInvalidConfiguration from New

package table

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/gridtable/pkg/width"
)

// Options holds the table-wide settings. Cells may override the alignment,
// wrapping, width, and truncation defaults individually.
type Options struct {
	ShowHeader   bool
	Border       Border
	PaddingLeft  int
	PaddingRight int
	// WordWrap wraps cells to their column width instead of widening the
	// column to fit the longest line.
	WordWrap bool
	// WrapOnWordBoundary selects word wrapping; false breaks between
	// graphemes anywhere.
	WrapOnWordBoundary bool
	// MaxWidth truncates every cell's content to this many columns; zero
	// means unlimited.
	MaxWidth int
	Truncate width.TruncateOptions
	// Compact drops the separator lines between body rows.
	Compact bool
	// ColWidths fixes the width of a column when its entry is positive.
	ColWidths []int
	// ColAligns is the default horizontal alignment per column.
	ColAligns []HAlign
	VAlign    VAlign
	// HeadStyle and BorderStyle colorize header text and border glyphs.
	HeadStyle   *lipgloss.Style
	BorderStyle *lipgloss.Style
	// CacheSize bounds the table's width cache.
	CacheSize int
}

// Option configures a Table.
type Option func(*Options) error

func defaultOptions() Options {
	return Options{
		ShowHeader:         true,
		Border:             BorderDefault,
		PaddingLeft:        1,
		PaddingRight:       0,
		WrapOnWordBoundary: true,
		VAlign:             AlignTop,
		CacheSize:          width.DefaultCacheSize,
	}
}

// WithShowHeader controls whether the header row is rendered.
func WithShowHeader(show bool) Option {
	return func(o *Options) error {
		o.ShowHeader = show
		return nil
	}
}

// WithBorder selects the border glyph set.
func WithBorder(b Border) Option {
	return func(o *Options) error {
		o.Border = b
		return nil
	}
}

// WithPadding sets the spaces between a cell's border and its content.
func WithPadding(left, right int) Option {
	return func(o *Options) error {
		if left < 0 || right < 0 {
			return fmt.Errorf("%w: padding %d/%d", ErrInvalidConfiguration, left, right)
		}
		o.PaddingLeft, o.PaddingRight = left, right
		return nil
	}
}

// WithWordWrap sets the default word wrap mode for cells.
func WithWordWrap(wrap bool) Option {
	return func(o *Options) error {
		o.WordWrap = wrap
		return nil
	}
}

// WithWrapOnWordBoundary chooses between word wrapping (true) and breaking
// lines at any grapheme (false).
func WithWrapOnWordBoundary(b bool) Option {
	return func(o *Options) error {
		o.WrapOnWordBoundary = b
		return nil
	}
}

// WithMaxWidth sets the default content width limit. n must be positive.
func WithMaxWidth(n int) Option {
	return func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("%w: max width %d", ErrInvalidConfiguration, n)
		}
		o.MaxWidth = n
		return nil
	}
}

// WithTruncate sets the default truncation options.
func WithTruncate(t width.TruncateOptions) Option {
	return func(o *Options) error {
		if err := validatePosition(t.Position); err != nil {
			return err
		}
		o.Truncate = t
		return nil
	}
}

// WithCompact drops separator lines between body rows.
func WithCompact(compact bool) Option {
	return func(o *Options) error {
		o.Compact = compact
		return nil
	}
}

// WithColWidths fixes column widths; zero entries stay automatic.
func WithColWidths(widths ...int) Option {
	return func(o *Options) error {
		for i, w := range widths {
			if w < 0 {
				return fmt.Errorf("%w: column %d width %d", ErrInvalidConfiguration, i, w)
			}
		}
		o.ColWidths = append([]int(nil), widths...)
		return nil
	}
}

// WithColAligns sets per-column default horizontal alignment.
func WithColAligns(aligns ...HAlign) Option {
	return func(o *Options) error {
		for _, a := range aligns {
			if err := validateAlign(a, ""); err != nil {
				return err
			}
		}
		o.ColAligns = append([]HAlign(nil), aligns...)
		return nil
	}
}

// WithVAlign sets the default vertical alignment.
func WithVAlign(v VAlign) Option {
	return func(o *Options) error {
		if err := validateAlign("", v); err != nil {
			return err
		}
		if v == "" {
			v = AlignTop
		}
		o.VAlign = v
		return nil
	}
}

// WithHeadStyle colorizes header cell text.
func WithHeadStyle(s lipgloss.Style) Option {
	return func(o *Options) error {
		o.HeadStyle = &s
		return nil
	}
}

// WithBorderStyle colorizes border glyphs.
func WithBorderStyle(s lipgloss.Style) Option {
	return func(o *Options) error {
		o.BorderStyle = &s
		return nil
	}
}

// WithCacheSize bounds the number of strings the table's width cache keeps.
func WithCacheSize(n int) Option {
	return func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("%w: cache size %d", ErrInvalidConfiguration, n)
		}
		o.CacheSize = n
		return nil
	}
}
