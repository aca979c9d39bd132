// ABOUTME: Border preset lookup by name with a fuzzy "did you mean" hint
// ABOUTME: Ranks preset names with sahilm/fuzzy when the exact name is unknown

package config

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/gridtable/pkg/table"
)

// ErrUnknownBorder reports a border name that matches no preset.
var ErrUnknownBorder = errors.New("unknown border")

// LookupBorder resolves a preset name. On a miss the error names the
// closest preset when one matches.
func LookupBorder(name string) (table.Border, error) {
	if b, ok := table.BorderByName(name); ok {
		return b, nil
	}
	if hint := SuggestBorder(name); hint != "" {
		return table.Border{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownBorder, name, hint)
	}
	return table.Border{}, fmt.Errorf("%w %q", ErrUnknownBorder, name)
}

// SuggestBorder returns the best fuzzy match for name among the preset
// names, or "" when nothing matches.
func SuggestBorder(name string) string {
	if name == "" {
		return ""
	}
	matches := fuzzy.Find(name, table.BorderNames())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
