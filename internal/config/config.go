// ABOUTME: Style loading with global + project + explicit file merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; converts to table options

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style holds the merged rendering configuration. Pointer fields
// distinguish "unset" from an explicit zero or false.
type Style struct {
	Border             string        `yaml:"border,omitempty"`
	ShowHeader         *bool         `yaml:"show_header,omitempty"`
	PaddingLeft        *int          `yaml:"padding_left,omitempty"`
	PaddingRight       *int          `yaml:"padding_right,omitempty"`
	WordWrap           *bool         `yaml:"word_wrap,omitempty"`
	WrapOnWordBoundary *bool         `yaml:"wrap_on_word_boundary,omitempty"`
	MaxWidth           int           `yaml:"max_width,omitempty"`
	Compact            *bool         `yaml:"compact,omitempty"`
	ColWidths          []int         `yaml:"col_widths,omitempty"`
	ColAligns          []string      `yaml:"col_aligns,omitempty"`
	VAlign             string        `yaml:"valign,omitempty"`
	Truncate           TruncateStyle `yaml:"truncate,omitempty"`
	HeadColor          string        `yaml:"head_color,omitempty"`
	HeadBold           *bool         `yaml:"head_bold,omitempty"`
	BorderColor        string        `yaml:"border_color,omitempty"`
}

// TruncateStyle mirrors width.TruncateOptions in YAML.
type TruncateStyle struct {
	Position    string `yaml:"position,omitempty"`
	Character   string `yaml:"character,omitempty"`
	PreferSpace *bool  `yaml:"prefer_space,omitempty"`
	Space       *bool  `yaml:"space,omitempty"`
}

// Load reads and merges the global style, the project style under
// projectRoot, and explicit (when non-empty). Later files override earlier
// ones. Missing global or project files are skipped; a missing explicit
// file is an error.
func Load(projectRoot, explicit string) (*Style, error) {
	global, err := loadFile(GlobalStyleFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global style: %w", err)
	}

	project, err := loadFile(ProjectStyleFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project style: %w", err)
	}

	merged := merge(global, project)
	if explicit != "" {
		s, err := loadFile(explicit)
		if err != nil {
			return nil, fmt.Errorf("loading style: %w", err)
		}
		merged = merge(merged, s)
	}

	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads a Style from a YAML file. Returns a zero Style if the file
// does not exist.
func loadFile(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Style{}, err
	}
	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays top onto base. Set values in top win.
func merge(base, top *Style) *Style {
	if base == nil {
		base = &Style{}
	}
	if top == nil {
		return base
	}

	result := *base

	if top.Border != "" {
		result.Border = top.Border
	}
	if top.ShowHeader != nil {
		result.ShowHeader = top.ShowHeader
	}
	if top.PaddingLeft != nil {
		result.PaddingLeft = top.PaddingLeft
	}
	if top.PaddingRight != nil {
		result.PaddingRight = top.PaddingRight
	}
	if top.WordWrap != nil {
		result.WordWrap = top.WordWrap
	}
	if top.WrapOnWordBoundary != nil {
		result.WrapOnWordBoundary = top.WrapOnWordBoundary
	}
	if top.MaxWidth != 0 {
		result.MaxWidth = top.MaxWidth
	}
	if top.Compact != nil {
		result.Compact = top.Compact
	}
	if len(top.ColWidths) > 0 {
		result.ColWidths = top.ColWidths
	}
	if len(top.ColAligns) > 0 {
		result.ColAligns = top.ColAligns
	}
	if top.VAlign != "" {
		result.VAlign = top.VAlign
	}
	if top.HeadColor != "" {
		result.HeadColor = top.HeadColor
	}
	if top.HeadBold != nil {
		result.HeadBold = top.HeadBold
	}
	if top.BorderColor != "" {
		result.BorderColor = top.BorderColor
	}

	// Truncate merges field by field
	if top.Truncate.Position != "" {
		result.Truncate.Position = top.Truncate.Position
	}
	if top.Truncate.Character != "" {
		result.Truncate.Character = top.Truncate.Character
	}
	if top.Truncate.PreferSpace != nil {
		result.Truncate.PreferSpace = top.Truncate.PreferSpace
	}
	if top.Truncate.Space != nil {
		result.Truncate.Space = top.Truncate.Space
	}

	return &result
}
