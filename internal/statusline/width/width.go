// Package width measures and fits text by terminal display columns.
package width

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// cond measures every string the same way whatever the locale: ambiguous
// characters (arrows, private-use glyphs) are one column wide.
var cond = newCondition()

func newCondition() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}

// Measure returns the display width of a string
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return cond.StringWidth(s)
}

// PadRight adds padding to the right of a string
func PadRight(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// Trim returns the longest prefix of s whose display width does not exceed
// max. It walks grapheme clusters, so a wide character, or a character and the
// combining marks attached to it, is kept or dropped as a whole.
func Trim(s string, max int) string {
	if max <= 0 {
		return ""
	}

	used := 0
	end := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if used+w > max {
			break
		}
		used += w
		end = iter.End()
	}
	return s[:end]
}

// Fit returns s truncated or right-padded with spaces so that its display
// width is exactly width. A non-positive width yields the empty string.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return PadRight(Trim(s, width), width)
}
