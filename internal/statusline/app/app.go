// Package app wires configuration, collectors and renderers for the
// statusline and the live panel
package app

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	appconfig "github.com/young1lin/cc-sakura-line/internal/config"
	"github.com/young1lin/cc-sakura-line/internal/monitor"
	"github.com/young1lin/cc-sakura-line/internal/statusline/config"
	"github.com/young1lin/cc-sakura-line/internal/statusline/content"
	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
	"github.com/young1lin/cc-sakura-line/internal/statusline/render"
	"github.com/young1lin/cc-sakura-line/internal/store"
	"github.com/young1lin/cc-sakura-line/internal/termsize"
	"github.com/young1lin/cc-sakura-line/tui"
)

// App holds what a command resolved from its flags and environment
type App struct {
	Overrides config.Overrides
	// ConfigPath replaces the project and global lookup when set
	ConfigPath string

	Getenv func(string) string
	Probe  func() (int, bool)
	Runner content.Runner
	// OpenCache opens the contribution cache; nil disables it
	OpenCache func() (*store.DB, error)
	Logger    *slog.Logger
}

// New returns an App using the process environment, the real terminal and
// the on-disk cache
func New(overrides config.Overrides, configPath string, logger *slog.Logger) *App {
	return &App{
		Overrides:  overrides,
		ConfigPath: configPath,
		Getenv:     os.Getenv,
		Probe:      termsize.Width,
		Runner:     content.ExecRunner{},
		OpenCache:  openCache,
		Logger:     logger,
	}
}

func openCache() (*store.DB, error) {
	path, err := appconfig.CacheDBPath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *App) getenv(key string) string {
	if a.Getenv == nil {
		return os.Getenv(key)
	}
	return a.Getenv(key)
}

// ConfigPaths returns the files that configure a session in projectDir
func (a *App) ConfigPaths(projectDir string) []string {
	if a.ConfigPath != "" {
		return []string{a.ConfigPath}
	}
	return config.Paths(projectDir)
}

// LoadConfig reads the configuration, falling back to defaults with a
// warning when the file is broken
func (a *App) LoadConfig(projectDir string) *config.Config {
	cfg, err := a.loadConfig(projectDir)
	if err != nil {
		a.logger().Warn("using default config", "error", err)
		return config.DefaultConfig()
	}
	return cfg
}

func (a *App) loadConfig(projectDir string) (*config.Config, error) {
	if a.ConfigPath != "" {
		return config.LoadFile(a.ConfigPath)
	}
	return config.Load(projectDir)
}

// cache opens the contribution cache. The returned closer is never nil.
func (a *App) cache() (content.CounterCache, func()) {
	if a.OpenCache == nil {
		return nil, func() {}
	}
	db, err := a.OpenCache()
	if err != nil {
		a.logger().Warn("contribution cache disabled", "error", err)
		return nil, func() {}
	}
	return db, func() { db.Close() }
}

func (a *App) manager(cfg *config.Config, cache content.CounterCache) *content.Manager {
	return content.NewDefaultManager(content.Options{
		Config: cfg,
		Runner: a.Runner,
		Cache:  cache,
		Getenv: a.Getenv,
		Logger: a.Logger,
	})
}

// Render collects every field once and returns the three ANSI lines
func (a *App) Render(ctx context.Context, in *content.Input) string {
	cfg := a.LoadConfig(in.Dir())

	cache, closeCache := a.cache()
	defer closeCache()

	snapshot := a.manager(cfg, cache).Snapshot(ctx, in)

	resolver := config.Resolver{Getenv: a.getenv, Probe: a.Probe}
	if resolver.Probe == nil {
		resolver.Probe = func() (int, bool) { return 0, false }
	}
	opts := resolver.Resolve(cfg, a.Overrides)
	a.logger().Debug("rendering", "width", opts.Width, "hasWidth", opts.HasWidth, "fill", opts.Fill)

	return render.RenderSnapshot(snapshot, opts)
}

// panelState is the configuration the panel currently renders with
type panelState struct {
	mu      sync.Mutex
	manager *content.Manager
}

// Panel builds the live panel dependencies for in. The returned closer
// releases the cache and must be called after the panel exits.
func (a *App) Panel(in *content.Input) (tui.Dependencies, func()) {
	if in.StartedAt.IsZero() {
		in.StartedAt = time.Now()
	}
	projectDir := in.Dir()

	cache, closeCache := a.cache()
	resolver := config.Resolver{Getenv: a.getenv}

	cfg := a.LoadConfig(projectDir)
	state := &panelState{manager: a.manager(cfg, cache)}

	deps := tui.Dependencies{
		Options: resolver.Resolve(cfg, a.Overrides),
		Collect: func(ctx context.Context) layout.Snapshot {
			state.mu.Lock()
			m := state.manager
			state.mu.Unlock()
			return m.Snapshot(ctx, in)
		},
		Reload: func() (layout.Options, error) {
			cfg, err := a.loadConfig(projectDir)
			if err != nil {
				return layout.Options{}, err
			}
			m := a.manager(cfg, cache)
			state.mu.Lock()
			state.manager = m
			state.mu.Unlock()
			return resolver.Resolve(cfg, a.Overrides), nil
		},
		ClearCache: func() {
			state.mu.Lock()
			m := state.manager
			state.mu.Unlock()
			m.ClearCache()
		},
		Logger: a.Logger,
	}

	watcher, err := monitor.NewWatcher(a.ConfigPaths(projectDir))
	if err != nil {
		a.logger().Warn("config hot reload disabled", "error", err)
	} else {
		deps.Watcher = watcher
	}

	return deps, closeCache
}

// RunPanel runs the live panel until the user quits
func (a *App) RunPanel(in *content.Input) error {
	deps, closeFn := a.Panel(in)
	defer closeFn()
	return tui.Run(deps)
}
