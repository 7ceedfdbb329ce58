package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.refresh(tickCmd())

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		m.ready = true
		m.refreshing = false
		return m, nil

	case ConfigReloadedMsg:
		m.opts = msg.Options
		m.err = nil
		return m.refresh(nil)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// refresh starts a collection unless one is still running
func (m Model) refresh(next tea.Cmd) (tea.Model, tea.Cmd) {
	if m.refreshing || m.collect == nil {
		return m, next
	}
	m.refreshing = true
	return m, tea.Batch(refreshCmd(m.collect), next)
}

// forceRefresh starts a collection that first clears the collector caches
func (m Model) forceRefresh() (tea.Model, tea.Cmd) {
	if m.refreshing || m.collect == nil {
		return m, nil
	}
	collect, clear := m.collect, m.clearCache
	if clear != nil {
		collect = func(ctx context.Context) layout.Snapshot {
			clear()
			return m.collect(ctx)
		}
	}
	m.refreshing = true
	return m, refreshCmd(collect)
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		return m.forceRefresh()
	}

	return m, nil
}
