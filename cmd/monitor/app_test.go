package main

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/cc-sakura-line/internal/logging"
	"github.com/young1lin/cc-sakura-line/internal/statusline/app"
	"github.com/young1lin/cc-sakura-line/internal/statusline/config"
	"github.com/young1lin/cc-sakura-line/internal/statusline/content"
	"github.com/young1lin/cc-sakura-line/internal/update"
)

type panelCall struct {
	app   *app.App
	input *content.Input
}

func testDeps(t *testing.T, calls *[]panelCall) *AppDependencies {
	t.Helper()
	return &AppDependencies{
		Getwd:  func() (string, error) { return t.TempDir(), nil },
		Getenv: func(string) string { return "" },
		Now:    func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) },
		PanelRunner: func(a *app.App, in *content.Input) error {
			*calls = append(*calls, panelCall{a, in})
			return nil
		},
		Stderr: &bytes.Buffer{},
	}
}

func TestRunStartsPanel(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	deps.Flags = &app.Flags{ConfigPath: "/etc/sakura.yaml"}

	require.NoError(t, run(deps))
	require.Len(t, calls, 1)

	in := calls[0].input
	assert.False(t, in.Valid(), "the panel has no session JSON")
	assert.NotEmpty(t, in.Dir())
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), in.StartedAt)
	assert.Equal(t, "/etc/sakura.yaml", calls[0].app.ConfigPath)
}

func TestRunProjectDirArgument(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	deps.Dir = t.TempDir()

	require.NoError(t, run(deps))
	require.Len(t, calls, 1)
	assert.Equal(t, deps.Dir, calls[0].input.Dir())
}

func TestRunMissingDirectory(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	deps.Dir = filepath.Join(t.TempDir(), "gone")

	err := run(deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project directory not found")
	assert.Empty(t, calls)
}

func TestRunFileIsNotADirectory(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	deps.Dir = filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(deps.Dir, nil, 0644))

	assert.Error(t, run(deps))
}

func TestRunGetwdError(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	deps.Getwd = func() (string, error) { return "", errors.New("deleted") }

	err := run(deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "working directory")
}

func TestRunStatError(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	deps.Stat = func(string) (fs.FileInfo, error) { return nil, fs.ErrPermission }

	assert.Error(t, run(deps))
	assert.Empty(t, calls)
}

func TestRunPanelError(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	deps.PanelRunner = func(*app.App, *content.Input) error { return errors.New("no tty") }

	assert.EqualError(t, run(deps), "no tty")
}

func TestRunLogsToFile(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	logPath := filepath.Join(t.TempDir(), "panel.log")
	deps.Getenv = func(k string) string {
		if k == logging.LogFileEnv {
			return logPath
		}
		return ""
	}
	deps.Flags = &app.Flags{Verbose: true}
	deps.NewApp = func(o config.Overrides, path string, logger *slog.Logger) *app.App {
		return &app.App{Overrides: o, ConfigPath: path, Logger: logger}
	}

	require.NoError(t, run(deps))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting panel")
}

func TestRootCommand(t *testing.T) {
	var calls []panelCall
	deps := testDeps(t, &calls)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(deps, &stdout, &stderr)
	cmd.SetArgs([]string{"--width=90", "--fill", dir})
	require.NoError(t, cmd.Execute())

	require.Len(t, calls, 1)
	o := calls[0].app.Overrides
	require.NotNil(t, o.Width)
	assert.Equal(t, 90, *o.Width)
	require.NotNil(t, o.Fill)
	assert.True(t, *o.Fill)
	assert.Equal(t, dir, calls[0].input.Dir())
}

func TestRootCommandArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		stdout  string
	}{
		{name: "version", args: []string{"--version"}, stdout: update.Version},
		{name: "too many directories", args: []string{"a", "b"}, wantErr: true},
		{name: "fill conflict", args: []string{"--fill", "--no-fill"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []panelCall
			var stdout, stderr bytes.Buffer
			cmd := newRootCmd(testDeps(t, &calls), &stdout, &stderr)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, calls)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout.String(), tt.stdout)
			assert.Empty(t, calls)
		})
	}
}
