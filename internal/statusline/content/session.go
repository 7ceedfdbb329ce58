package content

import (
	"context"
	"time"

	"github.com/young1lin/cc-sakura-line/internal/statusline/render"
)

// durationPaths are the JSON paths holding the session length in
// milliseconds, first hit wins
var durationPaths = [][]interface{}{
	{"cost", "total_duration_ms"},
	{"session", "total_duration_ms"},
	{"session", "duration_ms"},
	{"total_duration_ms"},
	{"elapsed_ms"},
}

// SessionClockCollector collects how long the session has been running
type SessionClockCollector struct {
	*BaseCollector
	formatter *render.Formatter
	now       func() time.Time
}

// NewSessionClockCollector creates a new session clock collector
func NewSessionClockCollector(formatter *render.Formatter) *SessionClockCollector {
	return &SessionClockCollector{
		BaseCollector: NewBaseCollector(ContentSessionClock, 0),
		formatter:     formatter,
		now:           time.Now,
	}
}

// Collect returns the session length from the JSON, or the time since
// Input.StartedAt
func (c *SessionClockCollector) Collect(ctx context.Context, in *Input) (string, error) {
	for _, path := range durationPaths {
		if ms, ok := in.Uint(path...); ok {
			return c.formatter.FormatDuration(time.Duration(ms/1000) * time.Second), nil
		}
	}
	if in != nil && !in.StartedAt.IsZero() {
		return c.formatter.FormatDuration(c.now().Sub(in.StartedAt)), nil
	}
	return "", nil
}
