// ABOUTME: Tests for ANSI-aware word wrapping, hard wrapping, and line splitting
// ABOUTME: Covers greedy packing, unbreakable words, hard breaks, and style carry-over

package width

import (
	"reflect"
	"testing"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{name: "empty", input: "", width: 10, want: []string{""}},
		{name: "fits", input: "hello", width: 10, want: []string{"hello"}},
		{name: "greedy", input: "a very long sentence", width: 10, want: []string{"a very", "long", "sentence"}},
		{name: "word wider than width", input: "a very long sentence", width: 5, want: []string{"a", "very", "long", "sentence"}},
		{name: "hard breaks", input: "ab\n\ncd", width: 10, want: []string{"ab", "", "cd"}},
		{name: "whitespace line verbatim", input: "ab\n   \ncd", width: 10, want: []string{"ab", "   ", "cd"}},
		{name: "whitespace runs collapse", input: "  a   b  ", width: 10, want: []string{"a b"}},
		{name: "exact fit", input: "ab cd", width: 5, want: []string{"ab cd"}},
		{name: "zero width", input: "a b", width: 0, want: []string{"a", "b"}},
		{name: "wide", input: "你好 世界", width: 4, want: []string{"你好", "世界"}},
		{
			name:  "style carried",
			input: "\x1b[31mred green blue\x1b[0m",
			width: 9,
			want:  []string{"\x1b[31mred green\x1b[0m", "\x1b[31mblue\x1b[0m"},
		},
		{
			name:  "style carried over hard break",
			input: "\x1b[1mone\ntwo\x1b[0m",
			width: 10,
			want:  []string{"\x1b[1mone\x1b[0m", "\x1b[1mtwo\x1b[0m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Wrap(tt.input, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_WidthBound(t *testing.T) {
	t.Parallel()

	m := NewMeasurer(0)
	text := "The quick \x1b[32mbrown fox\x1b[0m jumps over the extraordinarily lazy dog\nand then sleeps"
	for w := 1; w <= 30; w++ {
		for _, line := range m.Wrap(text, w) {
			lw := m.Width(line)
			if lw <= w {
				continue
			}
			if words := splitWords(line); len(words) != 1 {
				t.Errorf("Wrap(_, %d) line %q width %d exceeds width with %d words", w, line, lw, len(words))
			}
		}
	}
}

func TestLongestWord(t *testing.T) {
	t.Parallel()

	m := NewMeasurer(0)
	tests := []struct {
		input string
		want  int
	}{
		{input: "a very long sentence", want: 8},
		{input: "", want: 0},
		{input: "short\n\x1b[31mlongest\x1b[0m", want: 7},
		{input: "你好世界 ab", want: 8},
	}
	for _, tt := range tests {
		if got := m.LongestWord(tt.input); got != tt.want {
			t.Errorf("LongestWord(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestWrapHard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     []string
	}{
		{name: "empty", input: "", maxWidth: 10, want: []string{""}},
		{name: "fits", input: "hello", maxWidth: 10, want: []string{"hello"}},
		{name: "exact fit", input: "hello", maxWidth: 5, want: []string{"hello"}},
		{name: "break needed", input: "abcdef", maxWidth: 3, want: []string{"abc", "def"}},
		{name: "newlines", input: "ab\ncd", maxWidth: 10, want: []string{"ab", "cd"}},
		{name: "zero width", input: "x", maxWidth: 0, want: nil},
		{name: "styled", input: "\x1b[1mabcd\x1b[0m", maxWidth: 2, want: []string{"\x1b[1mab\x1b[0m", "\x1b[1mcd\x1b[0m"}},
	}

	m := NewMeasurer(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := m.WrapHard(tt.input, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapHard(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain", input: "a\nb", want: []string{"a", "b"}},
		{name: "single", input: "abc", want: []string{"abc"}},
		{name: "style across lines", input: "\x1b[31mred\nblue\x1b[0m", want: []string{"\x1b[31mred\x1b[0m", "\x1b[31mblue\x1b[0m"}},
		{name: "closed on its line", input: "\x1b[31mred\x1b[0m\nblue", want: []string{"\x1b[31mred\x1b[0m", "blue"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	t.Parallel()

	got := splitWords("  red\x1b[0m  \tblue ")
	want := []string{"red\x1b[0m", "blue"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitWords = %q, want %q", got, want)
	}
}
