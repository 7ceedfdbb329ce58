package content

import (
	"log/slog"
	"os"

	"github.com/young1lin/cc-sakura-line/internal/statusline/config"
	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
	"github.com/young1lin/cc-sakura-line/internal/statusline/render"
)

// Options configures the default collector set
type Options struct {
	Config *config.Config
	Runner Runner
	// Cache stores contribution counts; nil disables it
	Cache  CounterCache
	Getenv func(string) string
	Logger *slog.Logger
}

// NewDefaultManager creates a manager with every field collector registered
// and the configured fields hidden
func NewDefaultManager(opts Options) *Manager {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	formatter := render.NewFormatter(cfg.GetTimeFormat())
	probe := NewGitProbe(runner)

	m := NewManager(opts.Logger)
	m.RegisterAll(
		NewModelCollector(getenv),
		NewVersionCollector(runner, getenv),
		NewContributionsCollector(runner, opts.Cache, cfg.Contributions.User, cfg.GetCacheTTL(), getenv, opts.Logger),
		NewSessionClockCollector(formatter),
		NewRepositoryCollector(probe),
		NewBranchCollector(probe),
		NewGitChangesCollector(probe),
		NewAheadBehindCollector(probe),
		NewContextCollector(formatter, getenv),
		NewContextRemainingCollector(getenv),
		NewNowClockCollector(formatter),
	)
	for _, name := range layout.FieldNames {
		if !cfg.ShouldShow(name) {
			m.Hide(name)
		}
	}
	return m
}
