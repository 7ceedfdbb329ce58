package render

import (
	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
	"github.com/young1lin/cc-sakura-line/internal/statusline/width"
)

// Rounded border glyphs (Nerd Font powerline extras)
const (
	RoundLeft  = "\ue0b6"
	RoundRight = "\ue0b4"
)

// CellSpans styles one composed cell according to its column role
func CellSpans(c layout.Cell) []Span {
	switch c.Column {
	case layout.ColPrimary:
		return PillSpans(c.Text, c.Width, Sakura, SakuraInk)
	case layout.ColSecondary:
		return PillSpans(c.Text, c.Width, Green, GreenInk)
	case layout.ColDiff:
		return DiffSpans(c.Text, c.Width, MidStyle)
	default:
		return BlockSpans(c.Text, c.Width, MidStyle)
	}
}

// BlockSpans renders " value " fitted to w in a single style
func BlockSpans(value string, w int, style Style) []Span {
	if w <= 0 {
		return nil
	}
	return []Span{{Text: width.Fit(layout.CellText(value), w), Style: style}}
}

// PillSpans renders a rounded badge. Narrower than the two border glyphs, it
// degrades to a block of the same width.
func PillSpans(value string, w int, badge, ink Color) []Span {
	inner := Style{Fg: ink, Bg: badge}
	if w < layout.PillBorder {
		return BlockSpans(value, w, inner)
	}

	border := Style{Fg: badge, Bg: RowBG}
	spans := []Span{{Text: RoundLeft, Style: border}}
	if w > layout.PillBorder {
		spans = append(spans, Span{Text: width.Fit(layout.CellText(value), w-layout.PillBorder), Style: inner})
	}
	return append(spans, Span{Text: RoundRight, Style: border})
}

// DiffSpans renders a block whose +N/-N tokens are recolored
func DiffSpans(value string, w int, base Style) []Span {
	if w <= 0 {
		return nil
	}
	return HighlightDiff(width.Fit(layout.CellText(value), w), base)
}
