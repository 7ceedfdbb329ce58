package layout

import "github.com/young1lin/cc-sakura-line/internal/statusline/width"

// columnPercents is the proportional split, summing to 100
var columnPercents = Widths{25, 25, 25, 25}

// Proportional splits usable columns by the fixed percentages. Each column gets
// the floor of its share and the rounding loss goes to the last column, so the
// result always sums to usable.
func Proportional(usable int) Widths {
	var widths Widths
	if usable <= 0 {
		return widths
	}
	used := 0
	for i, pct := range columnPercents {
		widths[i] = usable * pct / 100
		used += widths[i]
	}
	widths[ColSecondary] += usable - used
	return widths
}

// CellText is the value as drawn inside a cell: one space on each side
func CellText(value string) string {
	return " " + value + " "
}

// NaturalWidth returns the width a value needs to render untruncated in col
func NaturalWidth(value string, col Column) int {
	w := width.Measure(CellText(value))
	if col.Bordered() {
		w += PillBorder
	}
	return w
}

// SharedWidths returns, per column, the max natural width across all rows
func SharedWidths(rows []Row) Widths {
	var widths Widths
	for _, row := range rows {
		for _, e := range row {
			if w := NaturalWidth(e.Text, e.Column); w > widths[e.Column] {
				widths[e.Column] = w
			}
		}
	}
	return widths
}

// Budget returns the columns available to cells once the gutter is taken.
// ok is false in natural sizing, where no budget is enforced.
func (o Options) Budget() (budget int, ok bool) {
	if !o.HasWidth {
		return 0, false
	}
	if o.Width <= Gutter {
		return 0, true
	}
	return o.Width - Gutter, true
}

// ResolveWidths picks the column table for a grid:
//
//	fill, width      -> proportional split of the budget
//	fill, no width   -> proportional split of 0 (all columns empty)
//	no fill          -> shared natural widths (clipped later by Compose)
func ResolveWidths(shared Widths, opts Options) Widths {
	if opts.Fill {
		budget, _ := opts.Budget()
		return Proportional(budget)
	}
	return shared
}
