// ABOUTME: Tests for environment variable expansion in style files
// ABOUTME: Validates ${VAR} replacement for set, unset, and mixed patterns

package config

import (
	"testing"
)

func TestExpandEnv_Set(t *testing.T) {
	t.Setenv("TEST_BORDER", "rounded")
	result := expandEnv("${TEST_BORDER}")
	if result != "rounded" {
		t.Errorf("expandEnv = %q; want %q", result, "rounded")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	result := expandEnv("${DEFINITELY_NOT_SET_12345}")
	if result != "" {
		t.Errorf("expandEnv = %q; want empty for unset var", result)
	}
}

func TestExpandEnv_Mixed(t *testing.T) {
	t.Setenv("MY_COLOR", "99")
	result := expandEnv("#${MY_COLOR}00ff")
	if result != "#9900ff" {
		t.Errorf("expandEnv = %q; want %q", result, "#9900ff")
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	result := expandEnv("plain string")
	if result != "plain string" {
		t.Errorf("expandEnv = %q; want %q", result, "plain string")
	}
}

func TestResolveEnvVars_StyleFields(t *testing.T) {
	t.Setenv("TEST_BORDER", "double")
	t.Setenv("TEST_ALIGN", "center")
	t.Setenv("TEST_ELLIPSIS", "~")

	s := &Style{
		Border:      "${TEST_BORDER}",
		ColAligns:   []string{"left", "${TEST_ALIGN}"},
		BorderColor: "${UNSET_GRIDTABLE_VAR}",
		Truncate:    TruncateStyle{Character: "${TEST_ELLIPSIS}"},
	}

	ResolveEnvVars(s)

	if s.Border != "double" {
		t.Errorf("Border = %q; want double", s.Border)
	}
	if s.ColAligns[1] != "center" {
		t.Errorf("ColAligns[1] = %q; want center", s.ColAligns[1])
	}
	if s.BorderColor != "" {
		t.Errorf("BorderColor = %q; want empty", s.BorderColor)
	}
	if s.Truncate.Character != "~" {
		t.Errorf("Truncate.Character = %q; want ~", s.Truncate.Character)
	}
}
