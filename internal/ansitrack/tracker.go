// ABOUTME: SGR and OSC 8 state machine that tracks active text styling
// ABOUTME: Emits minimal restore sequences and the matching close sequences

package ansitrack

import (
	"strconv"
	"strings"
)

const (
	// SGRReset clears every graphic rendition attribute.
	SGRReset = "\x1b[0m"
	// LinkClose terminates an OSC 8 hyperlink.
	LinkClose = "\x1b]8;;\x07"
)

// attr is a set of boolean SGR attributes.
type attr uint16

// attrCodes lists the SGR code that sets each attribute bit, in emit order.
var attrCodes = [...]string{"1", "2", "3", "4", "5", "7", "8", "9"}

const (
	attrBold attr = 1 << iota
	attrDim
	attrItalic
	attrUnderline
	attrBlink
	attrReverse
	attrHidden
	attrStrike
)

// setters maps SGR codes to the attribute they turn on; clearers maps codes
// to the attributes they turn off.
var (
	setters = map[int]attr{
		1: attrBold, 2: attrDim, 3: attrItalic, 4: attrUnderline,
		5: attrBlink, 7: attrReverse, 8: attrHidden, 9: attrStrike,
	}
	clearers = map[int]attr{
		22: attrBold | attrDim, 23: attrItalic, 24: attrUnderline,
		25: attrBlink, 27: attrReverse, 28: attrHidden, 29: attrStrike,
	}
)

// Tracker holds the graphic rendition in effect at some point of a string and
// the OSC 8 hyperlink open there, if any. The zero value is unstyled.
type Tracker struct {
	attrs attr
	fg    string // color parameters, e.g. "31" or "38;5;196"
	bg    string
	link  string // OSC 8 open sequence, BEL terminated
}

// Reset clears all state, including an open hyperlink.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Process folds one escape sequence into the state. SGR sequences and OSC 8
// hyperlinks are understood; anything else is ignored. SGR 0 leaves an open
// hyperlink in place.
func (t *Tracker) Process(seq string) {
	switch {
	case strings.HasPrefix(seq, "\x1b]8;"):
		t.processLink(seq)
	case strings.HasPrefix(seq, "\x1b[") && strings.HasSuffix(seq, "m"):
		t.processSGR(seq[2 : len(seq)-1])
	}
}

func (t *Tracker) processSGR(params string) {
	if params == "" {
		t.clearSGR()
		return
	}
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		if a, ok := setters[code]; ok {
			t.attrs |= a
			continue
		}
		if a, ok := clearers[code]; ok {
			t.attrs &^= a
			continue
		}
		switch {
		case code == 0:
			t.clearSGR()
		case code == 38, code == 48:
			n := extendedLen(parts[i:])
			color := strings.Join(parts[i:i+n], ";")
			if code == 38 {
				t.fg = color
			} else {
				t.bg = color
			}
			i += n - 1
		case code == 39:
			t.fg = ""
		case code == 49:
			t.bg = ""
		case code >= 30 && code <= 37, code >= 90 && code <= 97:
			t.fg = parts[i]
		case code >= 40 && code <= 47, code >= 100 && code <= 107:
			t.bg = parts[i]
		}
	}
}

func (t *Tracker) clearSGR() {
	t.attrs, t.fg, t.bg = 0, "", ""
}

// extendedLen returns how many parameters an extended color (38/48) consumes:
// 38;5;N is three, 38;2;R;G;B is five. Truncated forms consume what is left.
func extendedLen(parts []string) int {
	want := len(parts)
	if len(parts) >= 2 {
		switch parts[1] {
		case "5":
			want = 3
		case "2":
			want = 5
		}
	}
	return min(want, len(parts))
}

// processLink handles "ESC ] 8 ; params ; uri ST". An empty uri closes the link.
func (t *Tracker) processLink(seq string) {
	body := strings.TrimPrefix(seq, "\x1b]8;")
	body = strings.TrimSuffix(body, "\x07")
	body = strings.TrimSuffix(body, "\x1b\\")
	if _, uri, ok := strings.Cut(body, ";"); ok && uri != "" {
		t.link = "\x1b]8;" + body + "\x07"
		return
	}
	t.link = ""
}

// Restore returns the shortest sequence that re-establishes the state on a
// fresh line: the open link, then one combined SGR. Empty when unstyled.
func (t *Tracker) Restore() string {
	if !t.styled() {
		return t.link
	}
	var b strings.Builder
	b.WriteString(t.link)
	b.WriteString("\x1b[")
	sep := ""
	for bit, code := range attrCodes {
		if t.attrs&(1<<bit) != 0 {
			b.WriteString(sep + code)
			sep = ";"
		}
	}
	for _, color := range []string{t.fg, t.bg} {
		if color != "" {
			b.WriteString(sep + color)
			sep = ";"
		}
	}
	b.WriteByte('m')
	return b.String()
}

// Close returns the sequence that terminates everything currently active:
// an SGR reset when styled, then an OSC 8 close when a link is open.
func (t *Tracker) Close() string {
	var s string
	if t.styled() {
		s = SGRReset
	}
	if t.link != "" {
		s += LinkClose
	}
	return s
}

// IsActive reports whether any styling is set or a hyperlink is open.
func (t *Tracker) IsActive() bool {
	return t.styled() || t.link != ""
}

// InLink reports whether an OSC 8 hyperlink is open.
func (t *Tracker) InLink() bool {
	return t.link != ""
}

func (t *Tracker) styled() bool {
	return t.attrs != 0 || t.fg != "" || t.bg != ""
}
