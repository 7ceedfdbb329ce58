// Package content provides content collection for the statusline
// Content Layer: Data collection and type definitions
package content

import (
	"context"
	"time"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
)

// ContentType defines the type of content. Values match the layout field names.
type ContentType string

const (
	ContentModel            ContentType = layout.FieldModel
	ContentVersion          ContentType = layout.FieldVersion
	ContentContributions    ContentType = layout.FieldContributions
	ContentSessionClock     ContentType = layout.FieldSessionClock
	ContentRepository       ContentType = layout.FieldRepository
	ContentBranch           ContentType = layout.FieldBranch
	ContentGitChanges       ContentType = layout.FieldGitChanges
	ContentAheadBehind      ContentType = layout.FieldAheadBehind
	ContentContext          ContentType = layout.FieldContext
	ContentContextRemaining ContentType = layout.FieldContextRemaining
	ContentNowClock         ContentType = layout.FieldNowClock
)

// Sentinel is shown for values that could not be collected
const Sentinel = "-"

// Collector is the interface for content collectors
type Collector interface {
	Type() ContentType
	Collect(ctx context.Context, in *Input) (string, error)
	CacheTTL() time.Duration
}

// cachedContent holds cached content with expiration
type cachedContent struct {
	value     string
	expiresAt time.Time
}

// isExpired checks if cached content has expired
func (c *cachedContent) isExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}
