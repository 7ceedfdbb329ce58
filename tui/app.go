package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/cc-sakura-line/internal/monitor"
	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// Dependencies contains everything the panel needs
type Dependencies struct {
	Options layout.Options
	Collect CollectFunc
	// Watcher reports config changes; nil disables hot reload
	Watcher monitor.WatcherInterface
	// Reload re-reads the configuration after a change
	Reload func() (layout.Options, error)
	// ClearCache drops collector caches when the user forces a refresh
	ClearCache    func()
	ProgramRunner func(*tea.Program) error
	Logger        *slog.Logger
}

// Run starts the panel on the alternate screen and blocks until it quits
func Run(deps Dependencies) error {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := tea.NewProgram(NewModel(deps.Options, deps.Collect).WithClearCache(deps.ClearCache), tea.WithAltScreen())

	if deps.Watcher != nil && deps.Reload != nil {
		defer deps.Watcher.Close()
		go runWatchLoop(p, deps.Watcher, deps.Reload, logger)
	}

	runner := deps.ProgramRunner
	if runner == nil {
		runner = func(p *tea.Program) error {
			_, err := p.Run()
			return err
		}
	}
	return runner(p)
}

// runWatchLoop forwards config changes to the program until the watcher closes
func runWatchLoop(sender ProgramSender, watcher monitor.WatcherInterface, reload func() (layout.Options, error), logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for {
		select {
		case _, ok := <-watcher.Reloads():
			if !ok {
				return
			}
			opts, err := reload()
			if err != nil {
				logger.Warn("config reload failed", "error", err)
				sender.Send(ErrorMsg{Err: err})
				continue
			}
			logger.Debug("config reloaded", "width", opts.Width, "fill", opts.Fill)
			sender.Send(ConfigReloadedMsg{Options: opts})

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}
