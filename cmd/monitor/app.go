package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/young1lin/cc-sakura-line/internal/statusline/app"
	"github.com/young1lin/cc-sakura-line/internal/statusline/config"
	"github.com/young1lin/cc-sakura-line/internal/statusline/content"
)

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	Flags     *app.Flags
	Overrides config.Overrides
	// Dir is the project directory; empty means the working directory
	Dir string

	Getwd       func() (string, error)
	Getenv      func(string) string
	Stat        func(string) (fs.FileInfo, error)
	Now         func() time.Time
	NewApp      func(config.Overrides, string, *slog.Logger) *app.App
	PanelRunner func(*app.App, *content.Input) error
	Stderr      io.Writer
}

func run(deps *AppDependencies) error {
	flags := deps.Flags
	if flags == nil {
		flags = &app.Flags{}
	}
	statFn := deps.Stat
	if statFn == nil {
		statFn = os.Stat
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	getenv := deps.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	stderr := deps.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	dir, err := projectDir(deps.Dir, deps.Getwd)
	if err != nil {
		return err
	}
	if info, err := statFn(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("project directory not found: %s", dir)
	}

	logger, closeLog := flags.PanelLogger(getenv, stderr)
	defer closeLog()

	in := content.ParseInput(nil)
	in.DefaultDir = dir
	in.StartedAt = now()
	logger.Info("starting panel", "dir", dir)

	newApp := deps.NewApp
	if newApp == nil {
		newApp = app.New
	}
	runner := deps.PanelRunner
	if runner == nil {
		runner = func(a *app.App, in *content.Input) error { return a.RunPanel(in) }
	}
	return runner(newApp(deps.Overrides, flags.ConfigPath, logger), in)
}

func projectDir(dir string, getwd func() (string, error)) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}
	if getwd == nil {
		getwd = os.Getwd
	}
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return wd, nil
}
