package content

import (
	"context"
	"time"

	"github.com/young1lin/cc-sakura-line/internal/statusline/render"
)

// NowClockCollector collects the wall clock
type NowClockCollector struct {
	*BaseCollector
	formatter *render.Formatter
	now       func() time.Time
}

// NewNowClockCollector creates a new clock collector
func NewNowClockCollector(formatter *render.Formatter) *NowClockCollector {
	return &NowClockCollector{
		BaseCollector: NewBaseCollector(ContentNowClock, 0),
		formatter:     formatter,
		now:           time.Now,
	}
}

// Collect returns the current time
func (c *NowClockCollector) Collect(ctx context.Context, in *Input) (string, error) {
	return c.formatter.FormatClock(c.now()), nil
}
