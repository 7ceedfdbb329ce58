package render

import (
	"strings"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
)

// TableRenderer renders a layout grid as styled lines
type TableRenderer struct {
	grid *layout.Grid
	opts layout.Options
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(grid *layout.Grid, opts layout.Options) *TableRenderer {
	return &TableRenderer{grid: grid, opts: opts}
}

// Lines returns the structured form: one span list per row, gutter first
func (t *TableRenderer) Lines() [][]Span {
	composed := layout.NewRenderer(t.grid, t.opts).Render()
	lines := make([][]Span, 0, len(composed))
	for _, line := range composed {
		spans := []Span{{Text: strings.Repeat(" ", layout.Gutter), Style: RowStyle}}
		for _, cell := range line.Cells {
			spans = append(spans, CellSpans(cell)...)
		}
		lines = append(lines, spans)
	}
	return lines
}

// Render returns the ANSI form: rows joined by newlines, with a trailing one
func (t *TableRenderer) Render() string {
	var b strings.Builder
	for i, spans := range t.Lines() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(EncodeANSI(spans))
	}
	b.WriteByte('\n')
	return b.String()
}

// RenderSnapshot renders a snapshot to ANSI text in one call
func RenderSnapshot(s layout.Snapshot, opts layout.Options) string {
	return NewTableRenderer(layout.NewGrid(s), opts).Render()
}
