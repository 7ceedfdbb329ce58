package layout

// Renderer composes a grid into sized lines. Both output adapters read the
// same lines, so they agree on gutter, widths and truncation points.
type Renderer struct {
	grid *Grid
	opts Options
}

// NewRenderer creates a new grid renderer
func NewRenderer(grid *Grid, opts Options) *Renderer {
	return &Renderer{grid: grid, opts: opts}
}

// Render returns one composed line per grid row
func (r *Renderer) Render() []Line {
	widths := ResolveWidths(r.grid.ColWidths, r.opts)
	lines := make([]Line, 0, len(r.grid.Rows))
	for _, row := range r.grid.Rows {
		lines = append(lines, composeRow(row, widths, r.opts))
	}
	return lines
}

// Compose lays out a snapshot in one call
func Compose(s Snapshot, opts Options) []Line {
	return NewRenderer(NewGrid(s), opts).Render()
}

// composeRow walks the row left to right, clipping each column to what is
// left of the budget. A column that ends up zero wide ends the row.
func composeRow(row Row, widths Widths, opts Options) Line {
	budget, enforced := opts.Budget()
	remaining := budget

	line := Line{Cells: make([]Cell, 0, NumColumns)}
	for _, e := range row {
		w := widths[e.Column]
		if enforced && w > remaining {
			w = remaining
		}
		if w <= 0 {
			break
		}
		line.Cells = append(line.Cells, Cell{Column: e.Column, Width: w, Text: e.Text})

		if enforced {
			remaining -= w
			if remaining == 0 {
				break
			}
		}
	}
	return line
}
