// Package render turns composed layout lines into styled output
// Render Layer: cells -> spans -> ANSI text or structured spans
package render

import "fmt"

// Color is one of the fixed palette entries
type Color int

const (
	Sakura Color = iota
	SakuraInk
	Green
	GreenInk
	RowBG
	RowFG
	MidBG
	MidFG
	PlusFG
	MinusFG
)

var palette = [...]struct {
	name    string
	r, g, b uint8
}{
	Sakura:    {"sakura", 241, 157, 181},
	SakuraInk: {"sakura-ink", 35, 30, 30},
	Green:     {"green", 154, 199, 122},
	GreenInk:  {"green-ink", 30, 45, 28},
	RowBG:     {"row-bg", 40, 40, 40},
	RowFG:     {"row-fg", 220, 220, 220},
	MidBG:     {"mid-bg", 55, 55, 55},
	MidFG:     {"mid-fg", 220, 220, 220},
	PlusFG:    {"plus-fg", 98, 201, 98},
	MinusFG:   {"minus-fg", 235, 110, 110},
}

// RGB returns the color's components
func (c Color) RGB() (r, g, b uint8) {
	p := palette[c]
	return p.r, p.g, p.b
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(palette) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return palette[c].name
}

// Style is a foreground/background pair
type Style struct {
	Fg Color
	Bg Color
}

var (
	// RowStyle is the base style of a line, used by the gutter
	RowStyle = Style{Fg: RowFG, Bg: RowBG}
	// MidStyle is used by the block columns
	MidStyle = Style{Fg: MidFG, Bg: MidBG}
)

// Span is a run of text drawn in one style
type Span struct {
	Text  string
	Style Style
}
