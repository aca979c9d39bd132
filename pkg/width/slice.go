// ABOUTME: Column-based string slicing with ANSI-awareness
// ABOUTME: SliceByColumn extracts a visual range and re-opens/closes active styles

package width

import (
	"github.com/mauromedda/gridtable/internal/ansitrack"
	"github.com/mauromedda/gridtable/internal/pool"
	"github.com/rivo/uniseg"
)

// segment represents either a visible grapheme cluster or an ANSI sequence.
type segment struct {
	text  string
	col   int
	width int
	isSeq bool
}

// extractSegments breaks a string into segments of visible text and ANSI sequences.
func extractSegments(s string) []segment {
	var segs []segment
	col := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end, _ := scanEscape(s, i)
			segs = append(segs, segment{text: s[i:end], col: col, isSeq: true})
			i = end
			continue
		}
		// Read one grapheme cluster
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		segs = append(segs, segment{text: cluster, col: col, width: w})
		col += w
		i += len(s[i:]) - len(rest)
	}
	return segs
}

// SliceByColumn extracts the graphemes lying entirely inside columns
// [start, end). Columns are zero-indexed visual positions. A wide grapheme
// straddling either edge is dropped, never split.
//
// Styles and hyperlinks opened before start are re-emitted ahead of the kept
// text; anything still open after it is closed, so the slice never leaks
// styling into whatever follows it.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}
	return sliceSegments(extractSegments(s), start, end)
}

func sliceSegments(segs []segment, start, end int) string {
	var tr ansitrack.Tracker
	b := pool.Builder()
	defer pool.Release(b)

	started := false
	for _, seg := range segs {
		if seg.isSeq {
			tr.Process(seg.text)
			if started {
				b.WriteString(seg.text)
			}
			continue
		}
		inside := seg.col >= start && seg.col+seg.width <= end
		if seg.width == 0 {
			inside = seg.col >= start && seg.col < end
		}
		if !inside {
			if started {
				break
			}
			continue
		}
		if !started {
			b.WriteString(tr.Restore())
			started = true
		}
		b.WriteString(seg.text)
	}
	if !started {
		return ""
	}
	b.WriteString(tr.Close())
	return b.String()
}

// spaceColumns returns the columns holding a literal space.
func spaceColumns(segs []segment) map[int]bool {
	cols := make(map[int]bool)
	for _, seg := range segs {
		if !seg.isSeq && seg.text == " " {
			cols[seg.col] = true
		}
	}
	return cols
}

// processAll feeds every escape sequence of s to tr.
func processAll(tr *ansitrack.Tracker, s string) {
	for _, seq := range ExtractANSI(s) {
		tr.Process(seq)
	}
}
