package render

import (
	"fmt"
	"strings"
)

// Reset clears all SGR attributes
const Reset = "\x1b[0m"

// SGR returns the true-color escape selecting style
func SGR(s Style) string {
	fr, fg, fb := s.Fg.RGB()
	br, bg, bb := s.Bg.RGB()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm", fr, fg, fb, br, bg, bb)
}

// EncodeANSI serializes one line of spans, switching colors only where the
// style changes and resetting once at the end
func EncodeANSI(spans []Span) string {
	var b strings.Builder
	var current Style
	for i, sp := range spans {
		if i == 0 || sp.Style != current {
			b.WriteString(SGR(sp.Style))
			current = sp.Style
		}
		b.WriteString(sp.Text)
	}
	b.WriteString(Reset)
	return b.String()
}
