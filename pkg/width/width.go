// ABOUTME: Measurer computes display width of terminal text by grapheme cluster
// ABOUTME: Escape sequences count as zero; printable ASCII skips segmentation and the cache

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultCacheSize is the number of distinct non-ASCII strings a Measurer
// remembers before evicting the least recently used one.
const DefaultCacheSize = 512

// Measurer measures, truncates, and wraps terminal text. It memoizes widths
// by exact string value. A Measurer is safe for concurrent use.
type Measurer struct {
	cache *cache
}

// NewMeasurer returns a Measurer whose cache holds up to size entries.
// A non-positive size selects DefaultCacheSize.
func NewMeasurer(size int) *Measurer {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Measurer{cache: newCache(size)}
}

// defaultMeasurer backs the package-level helpers. It lives for the whole
// process; tables own their own Measurer instead of sharing this one.
var defaultMeasurer = NewMeasurer(DefaultCacheSize)

// VisibleWidth returns the display width of s using the process-wide
// measurer. See Measurer.Width.
func VisibleWidth(s string) int {
	return defaultMeasurer.Width(s)
}

// Width returns the number of terminal columns s occupies. Escape sequences
// are zero wide; each grapheme cluster is as wide as its first rune, so East
// Asian wide characters and emoji take two columns and combining marks none.
func (m *Measurer) Width(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := m.cache.get(s); ok {
		return w
	}
	w := computeWidth(s)
	m.cache.put(s, w)
	return w
}

// isPlainASCII reports whether every byte of s is printable ASCII.
func isPlainASCII(s string) bool {
	for i := range len(s) {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// computeWidth sums cluster widths of the text runs between escape
// sequences.
func computeWidth(s string) int {
	w := 0
	for len(s) > 0 {
		esc := indexESC(s)
		if esc < 0 {
			return w + textWidth(s)
		}
		w += textWidth(s[:esc])
		end, _ := scanEscape(s, esc)
		s = s[end:]
	}
	return w
}

func textWidth(s string) int {
	w := 0
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// graphemeWidth returns the width of one grapheme cluster.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
