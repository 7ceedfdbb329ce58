// Command monitor shows the session status table as a live terminal panel
// that refreshes every second and reloads its configuration on change.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/young1lin/cc-sakura-line/internal/statusline/app"
	"github.com/young1lin/cc-sakura-line/internal/update"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	if err := newRootCmd(&AppDependencies{}, os.Stdout, os.Stderr).Execute(); err != nil {
		exitFunc(1)
	}
}

// newRootCmd builds the command. deps supplies everything but the flags.
func newRootCmd(deps *AppDependencies, stdout, stderr io.Writer) *cobra.Command {
	var (
		flags       app.Flags
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:          "monitor [project-dir]",
		Short:        "Live status panel for a Claude Code project",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(stdout, update.String(cmd.Name()))
				return nil
			}

			deps.Flags = &flags
			deps.Overrides = flags.Overrides(cmd.Flags())
			if deps.Stderr == nil {
				deps.Stderr = stderr
			}
			if len(args) == 1 {
				deps.Dir = args[0]
			}
			return run(deps)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags.Register(cmd)
	cmd.Flags().BoolVar(&showVersion, "version", false, "print version information")

	return cmd
}
