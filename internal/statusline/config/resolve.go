package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
)

// Environment variables read by Resolve
const (
	EnvWidth    = "CC_STATUSLINE_WIDTH"
	EnvReserved = "CC_STATUSLINE_RESERVED"
	EnvFill     = "CC_STATUSLINE_FILL"
	EnvColumns  = "COLUMNS"
)

// Overrides carries command line values. Nil means "not given".
type Overrides struct {
	Width    *int
	Reserved *int
	Fill     *bool
}

// Resolver turns configuration, environment and flags into render options
type Resolver struct {
	Getenv func(string) string
	// Probe reports the terminal width. A nil Probe also skips COLUMNS, for
	// hosts such as the live panel that know their own size.
	Probe func() (int, bool)
}

// Resolve applies the precedence flags > environment > config file > detection.
// Reserved columns are subtracted from whichever width wins, saturating at 0.
func (r Resolver) Resolve(cfg *Config, o Overrides) layout.Options {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	opts := layout.Options{Fill: cfg.Display.Fill}
	if v := getenv(EnvFill); v != "" {
		opts.Fill = ParseBool(v)
	}
	if o.Fill != nil {
		opts.Fill = *o.Fill
	}

	width, ok := r.width(cfg, o, getenv)
	if !ok {
		return opts
	}

	reserved := cfg.Display.Reserved
	if v, ok := parseColumns(getenv(EnvReserved)); ok {
		reserved = v
	}
	if o.Reserved != nil && *o.Reserved >= 0 {
		reserved = *o.Reserved
	}

	width -= reserved
	return opts.WithWidth(width)
}

func (r Resolver) width(cfg *Config, o Overrides, getenv func(string) string) (int, bool) {
	if o.Width != nil && *o.Width >= 0 {
		return *o.Width, true
	}
	if v, ok := parseColumns(getenv(EnvWidth)); ok {
		return v, true
	}
	if cfg.Display.Width > 0 {
		return cfg.Display.Width, true
	}
	if r.Probe == nil {
		return 0, false
	}
	if v, ok := parseColumns(getenv(EnvColumns)); ok {
		return v, true
	}
	return r.Probe()
}

// ParseBool accepts 1, true, yes and on (case-insensitive) as true
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func parseColumns(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
