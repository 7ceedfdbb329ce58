// Command statusline prints the three-line session status for Claude Code.
// With --preview it runs the same table as a live terminal panel.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/young1lin/cc-sakura-line/internal/logging"
	"github.com/young1lin/cc-sakura-line/internal/statusline/app"
	"github.com/young1lin/cc-sakura-line/internal/statusline/config"
	"github.com/young1lin/cc-sakura-line/internal/statusline/content"
	"github.com/young1lin/cc-sakura-line/internal/update"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

// newApp and runPanel are replaced in tests
var (
	newApp   = app.New
	runPanel = func(a *app.App, in *content.Input) error { return a.RunPanel(in) }
)

func main() {
	initConsole()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		exitFunc(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		flags       app.Flags
		preview     bool
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:          "statusline",
		Short:        "Render the Claude Code status line from the session JSON on stdin",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(stdout, update.String(cmd.Name()))
				return nil
			}

			overrides := flags.Overrides(cmd.Flags())
			if preview {
				return runPreview(&flags, overrides, stdin, stderr)
			}
			return runOnce(cmd, &flags, overrides, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags.Register(cmd)
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "run the live panel instead of printing once")
	cmd.Flags().BoolVar(&showVersion, "version", false, "print version information")

	return cmd
}

// runOnce reads the session JSON, renders it and prints the lines. Bad input
// still prints a table of sentinels.
func runOnce(cmd *cobra.Command, flags *app.Flags, overrides config.Overrides, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := logging.New(stderr, flags.Verbose)

	in := readInput(stdin, logger)
	a := newApp(overrides, flags.ConfigPath, logger)

	fmt.Fprint(stdout, a.Render(cmd.Context(), in))
	return nil
}

func runPreview(flags *app.Flags, overrides config.Overrides, stdin io.Reader, stderr io.Writer) error {
	logger, closeLog := flags.PanelLogger(os.Getenv, stderr)
	defer closeLog()

	var in *content.Input
	if isTerminal(stdin) {
		in = content.ParseInput(nil)
	} else {
		in = readInput(stdin, logger)
	}
	if in.DefaultDir == "" {
		in.DefaultDir, _ = os.Getwd()
	}

	return runPanel(newApp(overrides, flags.ConfigPath, logger), in)
}

func readInput(stdin io.Reader, logger *slog.Logger) *content.Input {
	data, err := io.ReadAll(stdin)
	if err != nil {
		logger.Warn("failed to read stdin", "error", err)
	}
	in := content.ParseInput(data)
	if !in.Valid() && len(data) > 0 {
		logger.Debug("stdin is not a JSON object", "bytes", len(data))
	}
	in.DefaultDir, _ = os.Getwd()
	return in
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
