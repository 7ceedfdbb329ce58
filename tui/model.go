package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
	"github.com/young1lin/cc-sakura-line/internal/statusline/render"
)

// refreshTimeout bounds one collection cycle
const refreshTimeout = 10 * time.Second

// CollectFunc gathers a snapshot for the panel
type CollectFunc func(ctx context.Context) layout.Snapshot

// Model represents the panel state
type Model struct {
	snapshot layout.Snapshot
	opts     layout.Options
	collect  CollectFunc
	// clearCache drops collector caches before a refresh the user asked for
	clearCache func()

	// Terminal size from the latest tea.WindowSizeMsg
	width  int
	height int

	// State
	ready      bool
	quitting   bool
	refreshing bool

	// Error state
	err error

	// Styles
	styles Styles
}

// Styles contains the Lipgloss styles for the panel
type Styles struct {
	Error   lipgloss.Style
	Muted   lipgloss.Style
	palette map[render.Style]lipgloss.Style
}

// DefaultStyles returns the default panel styles
func DefaultStyles() Styles {
	styles := Styles{
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.MinusFG.Hex())).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		palette: make(map[render.Style]lipgloss.Style),
	}

	for _, s := range []render.Style{
		render.RowStyle,
		render.MidStyle,
		{Fg: render.Sakura, Bg: render.RowBG},
		{Fg: render.SakuraInk, Bg: render.Sakura},
		{Fg: render.Green, Bg: render.RowBG},
		{Fg: render.GreenInk, Bg: render.Green},
		{Fg: render.PlusFG, Bg: render.MidBG},
		{Fg: render.MinusFG, Bg: render.MidBG},
	} {
		styles.palette[s] = newSpanStyle(s)
	}
	return styles
}

func newSpanStyle(s render.Style) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Fg.Hex())).
		Background(lipgloss.Color(s.Bg.Hex()))
}

// Span returns the lipgloss style for a span style
func (s Styles) Span(style render.Style) lipgloss.Style {
	if ls, ok := s.palette[style]; ok {
		return ls
	}
	return newSpanStyle(style)
}

// NewModel creates a panel that renders with opts and refreshes through collect
func NewModel(opts layout.Options, collect CollectFunc) Model {
	return Model{
		opts:    opts,
		collect: collect,
		styles:  DefaultStyles(),
	}
}

// WithClearCache returns the model with a cache reset run by the refresh key
func (m Model) WithClearCache(clear func()) Model {
	m.clearCache = clear
	return m
}

// Init schedules the first refresh and starts the ticker
func (m Model) Init() tea.Cmd {
	return tea.Batch(refreshCmd(m.collect), tickCmd())
}

// refreshCmd collects a snapshot off the UI goroutine
func refreshCmd(collect CollectFunc) tea.Cmd {
	if collect == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		return SnapshotMsg{Snapshot: collect(ctx)}
	}
}

// tickCmd returns a command that sends TickMsg messages
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
