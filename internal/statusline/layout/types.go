// Package layout resolves the fixed 3x4 statusline grid into sized cells
// Layout Layer: snapshot -> rows -> column widths -> composed lines
package layout

const (
	// NumRows is the number of lines every snapshot renders to
	NumRows = 3
	// NumColumns is the number of cells per row
	NumColumns = 4
	// Gutter is the constant left margin before the first cell of a line
	Gutter = 1
	// PillBorder is the column budget reserved for the two rounded glyphs
	PillBorder = 2
)

// Column identifies a column index and with it the styling role of a cell
type Column int

const (
	ColPrimary   Column = iota // pill badge, e.g. model name
	ColLabel                   // plain block
	ColDiff                    // block with +N/-N tokens recolored
	ColSecondary               // pill badge, e.g. clock
)

// Bordered reports whether cells in this column are drawn as pills
func (c Column) Bordered() bool {
	return c == ColPrimary || c == ColSecondary
}

// Entry is one (column, text) pair of a row
type Entry struct {
	Column Column
	Text   string
}

// Row is an ordered sequence of exactly four entries
type Row [NumColumns]Entry

// Widths is a column width table in display columns
type Widths [NumColumns]int

// Sum returns the total width of all columns
func (w Widths) Sum() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// Cell is a resolved cell ready to be styled: its role, its exact width, and
// the raw value (not yet fitted)
type Cell struct {
	Column Column
	Width  int
	Text   string
}

// Line is one composed row. The gutter is implied and not part of Cells.
type Line struct {
	Cells []Cell
}

// Width returns the display width of the line including the gutter
func (l Line) Width() int {
	total := Gutter
	for _, c := range l.Cells {
		total += c.Width
	}
	return total
}

// Options are the render parameters handed in by the configuration layer
type Options struct {
	Width    int  // total available width, meaningful only when HasWidth
	HasWidth bool // false means natural sizing
	Fill     bool // proportional columns spanning the full width
}

// WithWidth returns a copy of o with a fixed total width
func (o Options) WithWidth(width int) Options {
	if width < 0 {
		width = 0
	}
	o.Width = width
	o.HasWidth = true
	return o
}
