package content

//go:generate mockgen -destination=mock_runner_test.go -package=content . Runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Command timeouts
const (
	gitTimeout    = 2 * time.Second
	claudeTimeout = 2 * time.Second
	ghTimeout     = 5 * time.Second
)

// Runner runs an external command and returns its standard output
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Run executes name with args in dir. A non-zero exit is an error carrying
// the command line and its stderr.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		line := strings.Join(append([]string{name}, args...), " ")
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", line, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", line, err)
	}
	return out, nil
}

// runWithTimeout runs a command bounded by timeout
func runWithTimeout(ctx context.Context, r Runner, timeout time.Duration, dir, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return r.Run(ctx, dir, name, args...)
}
