// ABOUTME: Tests for color profile selection, using a pseudo-terminal for the TTY case
// ABOUTME: Skips the TTY case where the platform cannot allocate a pty

package main

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/creack/pty"
	"github.com/muesli/termenv"
)

func TestColorProfile_NonTerminal(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		mode string
		want termenv.Profile
	}{
		{"never", termenv.Ascii},
		{"auto", termenv.Ascii},
		{"", termenv.Ascii},
		{"always", termenv.ANSI256},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			t.Setenv("COLORTERM", "")
			t.Setenv("CLICOLOR_FORCE", "")
			got, err := colorProfile(tt.mode, &buf)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("colorProfile(%q) = %v; want %v", tt.mode, got, tt.want)
			}
		})
	}

	if _, err := colorProfile("rainbow", &buf); err == nil {
		t.Error("colorProfile(rainbow) should fail")
	}
	if isTerminal(&buf) {
		t.Error("isTerminal(buffer) = true")
	}
}

func TestColorProfile_Terminal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no pty on windows")
	}
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	t.Setenv("TERM", "xterm-256color")
	t.Setenv("COLORTERM", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")

	if !isTerminal(tty) {
		t.Fatal("isTerminal(pty) = false")
	}
	got, err := colorProfile("auto", tty)
	if err != nil {
		t.Fatal(err)
	}
	if got == termenv.Ascii {
		t.Error("colorProfile(auto) on a terminal = Ascii; want color")
	}
	if got, _ := colorProfile("never", tty); got != termenv.Ascii {
		t.Errorf("colorProfile(never) = %v; want Ascii", got)
	}
}
