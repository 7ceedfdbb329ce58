package content

import (
	"time"
)

// BaseCollector provides common functionality for collectors
type BaseCollector struct {
	contentType ContentType
	cacheTTL    time.Duration
}

// Type returns the content type
func (b *BaseCollector) Type() ContentType {
	return b.contentType
}

// CacheTTL returns the cache TTL. Zero disables caching in the manager.
func (b *BaseCollector) CacheTTL() time.Duration {
	return b.cacheTTL
}

// NewBaseCollector creates a new base collector
func NewBaseCollector(contentType ContentType, cacheTTL time.Duration) *BaseCollector {
	return &BaseCollector{
		contentType: contentType,
		cacheTTL:    cacheTTL,
	}
}

// envLookup is the environment accessor collectors read overrides through
type envLookup func(string) string

func (e envLookup) get(key string) string {
	if e == nil {
		return ""
	}
	return e(key)
}
