package content

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	appconfig "github.com/young1lin/cc-sakura-line/internal/config"
	"github.com/young1lin/cc-sakura-line/internal/statusline/render"
)

// usagePaths are summed into the used token count
var usagePaths = [][]interface{}{
	{"context_window", "current_usage", "input_tokens"},
	{"context_window", "current_usage", "output_tokens"},
	{"context_window", "current_usage", "cache_creation_input_tokens"},
	{"context_window", "current_usage", "cache_read_input_tokens"},
}

// contextUsage holds the used and total token counts. A zero pointer means
// the value is unknown.
type contextUsage struct {
	used  *uint64
	total *uint64
}

// readContextUsage takes both values from CC_CONTEXT_USED and
// CC_CONTEXT_TOTAL when either is set, otherwise from the input
func readContextUsage(env envLookup, in *Input) contextUsage {
	usedEnv, totalEnv := env.get("CC_CONTEXT_USED"), env.get("CC_CONTEXT_TOTAL")
	if usedEnv != "" || totalEnv != "" {
		return contextUsage{used: parseEnvUint(usedEnv), total: parseEnvUint(totalEnv)}
	}

	var u contextUsage
	for _, path := range usagePaths {
		if n, ok := in.Uint(path...); ok {
			sum := n
			if u.used != nil {
				sum += *u.used
			}
			u.used = &sum
		}
	}

	if n, ok := in.Uint("context_window", "context_window_size"); ok {
		u.total = &n
	} else if n := appconfig.GetContextWindow(in.String("model", "id")); n > 0 {
		u.total = &n
	}
	return u
}

func parseEnvUint(s string) *uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// label formats "used/total", or "used" when the total is unknown
func (u contextUsage) label(f *render.Formatter) string {
	switch {
	case u.used != nil && u.total != nil && *u.total > 0:
		return f.FormatCount(*u.used) + "/" + f.FormatCount(*u.total)
	case u.used != nil && u.total == nil:
		return f.FormatCount(*u.used)
	}
	return ""
}

// remaining formats the share of the window still free, rounded and
// clamped at zero
func (u contextUsage) remaining() string {
	if u.used == nil || u.total == nil || *u.total == 0 {
		return ""
	}
	pct := math.Max(math.Round(100-float64(*u.used)/float64(*u.total)*100), 0)
	return fmt.Sprintf("%d%% left", int(pct))
}

// ContextCollector collects the context window usage
type ContextCollector struct {
	*BaseCollector
	env       envLookup
	formatter *render.Formatter
}

// NewContextCollector creates a new context collector
func NewContextCollector(formatter *render.Formatter, getenv func(string) string) *ContextCollector {
	return &ContextCollector{
		BaseCollector: NewBaseCollector(ContentContext, 0),
		env:           getenv,
		formatter:     formatter,
	}
}

// Collect returns CC_CONTEXT_LABEL or the formatted usage
func (c *ContextCollector) Collect(ctx context.Context, in *Input) (string, error) {
	if v := c.env.get("CC_CONTEXT_LABEL"); v != "" {
		return v, nil
	}
	return readContextUsage(c.env, in).label(c.formatter), nil
}

// ContextRemainingCollector collects the free share of the context window
type ContextRemainingCollector struct {
	*BaseCollector
	env envLookup
}

// NewContextRemainingCollector creates a new remaining context collector
func NewContextRemainingCollector(getenv func(string) string) *ContextRemainingCollector {
	return &ContextRemainingCollector{
		BaseCollector: NewBaseCollector(ContentContextRemaining, 0),
		env:           getenv,
	}
}

// Collect returns CC_CONTEXT_REMAINING or "N% left"
func (c *ContextRemainingCollector) Collect(ctx context.Context, in *Input) (string, error) {
	if v := c.env.get("CC_CONTEXT_REMAINING"); v != "" {
		return v, nil
	}
	return readContextUsage(c.env, in).remaining(), nil
}
