// ABOUTME: Converts a merged Style into table options
// ABOUTME: Colors go through lipgloss; unknown border names get a fuzzy suggestion

package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/gridtable/pkg/table"
	"github.com/mauromedda/gridtable/pkg/width"
)

// Options returns the table options described by s. Unset fields leave the
// table defaults alone. Value validation is left to table.New.
func (s *Style) Options() ([]table.Option, error) {
	var opts []table.Option

	if s.Border != "" {
		b, err := LookupBorder(s.Border)
		if err != nil {
			return nil, err
		}
		opts = append(opts, table.WithBorder(b))
	}
	if s.ShowHeader != nil {
		opts = append(opts, table.WithShowHeader(*s.ShowHeader))
	}
	if s.PaddingLeft != nil || s.PaddingRight != nil {
		left, right := 1, 0
		if s.PaddingLeft != nil {
			left = *s.PaddingLeft
		}
		if s.PaddingRight != nil {
			right = *s.PaddingRight
		}
		opts = append(opts, table.WithPadding(left, right))
	}
	if s.WordWrap != nil {
		opts = append(opts, table.WithWordWrap(*s.WordWrap))
	}
	if s.WrapOnWordBoundary != nil {
		opts = append(opts, table.WithWrapOnWordBoundary(*s.WrapOnWordBoundary))
	}
	if s.MaxWidth != 0 {
		opts = append(opts, table.WithMaxWidth(s.MaxWidth))
	}
	if s.Compact != nil {
		opts = append(opts, table.WithCompact(*s.Compact))
	}
	if len(s.ColWidths) > 0 {
		opts = append(opts, table.WithColWidths(s.ColWidths...))
	}
	if len(s.ColAligns) > 0 {
		aligns := make([]table.HAlign, len(s.ColAligns))
		for i, a := range s.ColAligns {
			aligns[i] = table.HAlign(a)
		}
		opts = append(opts, table.WithColAligns(aligns...))
	}
	if s.VAlign != "" {
		opts = append(opts, table.WithVAlign(table.VAlign(s.VAlign)))
	}
	if t := s.Truncate; t != (TruncateStyle{}) {
		opts = append(opts, table.WithTruncate(width.TruncateOptions{
			Position:    width.Position(t.Position),
			Character:   t.Character,
			PreferSpace: t.PreferSpace != nil && *t.PreferSpace,
			Space:       t.Space != nil && *t.Space,
		}))
	}

	if s.HeadColor != "" || (s.HeadBold != nil && *s.HeadBold) {
		head := lipgloss.NewStyle()
		if s.HeadColor != "" {
			head = head.Foreground(lipgloss.Color(s.HeadColor))
		}
		if s.HeadBold != nil {
			head = head.Bold(*s.HeadBold)
		}
		opts = append(opts, table.WithHeadStyle(head))
	}
	if s.BorderColor != "" {
		opts = append(opts, table.WithBorderStyle(
			lipgloss.NewStyle().Foreground(lipgloss.Color(s.BorderColor)),
		))
	}

	return opts, nil
}
