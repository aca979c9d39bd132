// ABOUTME: Escape sequence scanning, stripping, and extraction for terminal text
// ABOUTME: Recognizes CSI, OSC (OSC 8 links included), string controls, and short ESC forms

package width

import "strings"

// seqKind classifies an escape sequence.
type seqKind uint8

const (
	seqShort   seqKind = iota // ESC followed by one byte
	seqCSI                    // ESC [ params final
	seqOSC                    // ESC ] ... BEL or ST
	seqString                 // DCS, SOS, PM, APC: ESC P|X|^|_ ... ST
	seqCharset                // ESC ( ) * + followed by a designator byte
)

// indexESC returns the index of the first ESC byte in s, or -1.
func indexESC(s string) int {
	return strings.IndexByte(s, '\x1b')
}

func containsESC(s string) bool {
	return indexESC(s) >= 0
}

// scanEscape returns the index just past the escape sequence starting at
// s[i] and its kind. Unterminated sequences run to the end of s.
func scanEscape(s string, i int) (int, seqKind) {
	if i+1 >= len(s) {
		return len(s), seqShort
	}
	switch s[i+1] {
	case '[':
		for j := i + 2; j < len(s); j++ {
			if s[j] >= 0x40 && s[j] <= 0x7E {
				return j + 1, seqCSI
			}
		}
		return len(s), seqCSI
	case ']':
		for j := i + 2; j < len(s); j++ {
			if s[j] == '\x07' {
				return j + 1, seqOSC
			}
			if s[j] == '\x1b' && j+1 < len(s) && s[j+1] == '\\' {
				return j + 2, seqOSC
			}
		}
		return len(s), seqOSC
	case 'P', 'X', '^', '_':
		if st := strings.Index(s[i+2:], "\x1b\\"); st >= 0 {
			return i + 2 + st + 2, seqString
		}
		return len(s), seqString
	case '(', ')', '*', '+':
		return min(i+3, len(s)), seqCharset
	}
	return i + 2, seqShort
}

// StripANSI removes every escape sequence from s.
func StripANSI(s string) string {
	esc := indexESC(s)
	if esc < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for esc >= 0 {
		b.WriteString(s[:esc])
		end, _ := scanEscape(s, esc)
		s = s[end:]
		esc = indexESC(s)
	}
	b.WriteString(s)
	return b.String()
}

// ExtractANSI returns the escape sequences of s in order.
func ExtractANSI(s string) []string {
	var seqs []string
	for esc := indexESC(s); esc >= 0; esc = indexESC(s) {
		end, _ := scanEscape(s, esc)
		seqs = append(seqs, s[esc:end])
		s = s[end:]
	}
	return seqs
}

// Hyperlink wraps text in an OSC 8 hyperlink pointing at url.
func Hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x07" + text + "\x1b]8;;\x07"
}
