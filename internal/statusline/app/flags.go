package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/young1lin/cc-sakura-line/internal/logging"
	"github.com/young1lin/cc-sakura-line/internal/statusline/config"
)

// Flags are the command line options shared by both binaries
type Flags struct {
	Width      int
	Reserved   int
	Fill       bool
	NoFill     bool
	ConfigPath string
	Verbose    bool
	LogFile    string
}

// Register adds the flags to cmd
func (f *Flags) Register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.Width, "width", 0, "total width in columns, overriding detection")
	fs.IntVar(&f.Reserved, "reserved", 0, "columns subtracted from the width")
	fs.BoolVar(&f.Fill, "fill", false, "stretch the table to the full width")
	fs.BoolVar(&f.NoFill, "no-fill", false, "size columns to their content")
	fs.StringVar(&f.ConfigPath, "config", "", "config file (default .claude/"+config.FileName+")")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "panel log file (default $"+logging.LogFileEnv+")")
	cmd.MarkFlagsMutuallyExclusive("fill", "no-fill")
}

// Overrides returns the values given explicitly on the command line
func (f *Flags) Overrides(fs *pflag.FlagSet) config.Overrides {
	var o config.Overrides
	if fs.Changed("width") {
		w := f.Width
		o.Width = &w
	}
	if fs.Changed("reserved") {
		r := f.Reserved
		o.Reserved = &r
	}
	switch {
	case fs.Changed("fill"):
		v := f.Fill
		o.Fill = &v
	case fs.Changed("no-fill"):
		v := !f.NoFill
		o.Fill = &v
	}
	return o
}

// PanelLogger returns the logger of the live panel. Without a log file it
// discards, since the panel owns the terminal.
func (f *Flags) PanelLogger(getenv func(string) string, stderr io.Writer) (*slog.Logger, func()) {
	path := f.LogFile
	if path == "" && getenv != nil {
		path = getenv(logging.LogFileEnv)
	}
	if path == "" {
		return logging.Discard(), func() {}
	}
	logger, closeFn, err := logging.Open(path, f.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "log file disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, closeFn
}
