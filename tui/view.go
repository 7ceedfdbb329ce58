package tui

import (
	"strings"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
	"github.com/young1lin/cc-sakura-line/internal/statusline/render"
)

// View renders the panel. The grid starts one column in from the left edge.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return " " + m.styles.Muted.Render("Loading...")
	}

	spans := render.NewTableRenderer(layout.NewGrid(m.snapshot), m.viewOptions()).Lines()

	lines := make([]string, 0, len(spans)+1)
	for _, line := range spans {
		var b strings.Builder
		b.WriteString(" ")
		for _, span := range line {
			b.WriteString(m.styles.Span(span.Style).Render(span.Text))
		}
		lines = append(lines, b.String())
	}

	if m.err != nil {
		lines = append(lines, " "+m.styles.Error.Render("Error: "+m.err.Error()))
	}

	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

// viewOptions sizes the grid to the panel unless a width was configured
func (m Model) viewOptions() layout.Options {
	if m.opts.HasWidth || m.width <= 0 {
		return m.opts
	}
	return m.opts.WithWidth(m.width - 1)
}
