// ABOUTME: Tests for level gating and output redirection
// ABOUTME: Not parallel: level and output are process-global

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	prevLevel := GetLevel()
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(prevLevel)
	})

	SetLevel(LevelInfo)
	Debug("hidden %d", 1)
	Info("shown %d", 2)
	Warn("warned")
	Error("failed")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug message emitted at info level: %q", got)
	}
	for _, want := range []string{"[INFO] shown 2\n", "[WARN] warned\n", "[ERROR] failed\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("visible")
	if got := buf.String(); got != "[DEBUG] visible\n" {
		t.Errorf("debug output = %q", got)
	}

	buf.Reset()
	SetLevel(LevelError)
	Warn("quiet")
	Error("loud")
	if got := buf.String(); got != "[ERROR] loud\n" {
		t.Errorf("error-level output = %q", got)
	}
}

func TestEnabled(t *testing.T) {
	prevLevel := GetLevel()
	t.Cleanup(func() { SetLevel(prevLevel) })

	SetLevel(LevelWarn)
	if Enabled(LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !Enabled(LevelError) {
		t.Error("error should be enabled at warn level")
	}
}
