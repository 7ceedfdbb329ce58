package content

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
)

// Manager manages content collectors and caching
type Manager struct {
	collectors map[ContentType]Collector
	hidden     map[ContentType]bool
	cache      map[ContentType]*cachedContent
	cacheMu    sync.RWMutex
	logger     *slog.Logger
	now        func() time.Time
}

// NewManager creates a new content manager
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		collectors: make(map[ContentType]Collector),
		hidden:     make(map[ContentType]bool),
		cache:      make(map[ContentType]*cachedContent),
		logger:     logger,
		now:        time.Now,
	}
}

// Register registers a content collector
func (m *Manager) Register(collector Collector) {
	m.collectors[collector.Type()] = collector
}

// RegisterAll registers multiple collectors at once
func (m *Manager) RegisterAll(collectors ...Collector) {
	for _, c := range collectors {
		m.Register(c)
	}
}

// Hide marks fields that are rendered blank and never collected
func (m *Manager) Hide(names ...string) {
	for _, name := range names {
		m.hidden[ContentType(name)] = true
	}
}

// Get retrieves a single content item with caching
func (m *Manager) Get(ctx context.Context, contentType ContentType, in *Input) (string, error) {
	collector, ok := m.collectors[contentType]
	if !ok {
		return "", fmt.Errorf("no collector registered for type: %s", contentType)
	}

	now := m.now()

	// Check cache
	m.cacheMu.RLock()
	cached, exists := m.cache[contentType]
	m.cacheMu.RUnlock()

	if exists && !cached.isExpired(now) {
		return cached.value, nil
	}

	// Collect fresh data
	value, err := collector.Collect(ctx, in)
	if err != nil {
		return "", err
	}

	if ttl := collector.CacheTTL(); ttl > 0 {
		m.cacheMu.Lock()
		m.cache[contentType] = &cachedContent{
			value:     value,
			expiresAt: now.Add(ttl),
		}
		m.cacheMu.Unlock()
	}

	return value, nil
}

// GetAll runs every visible collector concurrently. Failed collectors are
// logged and left out of the result.
func (m *Manager) GetAll(ctx context.Context, in *Input) map[ContentType]string {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = make(map[ContentType]string, len(m.collectors))
	)

	for contentType := range m.collectors {
		if m.hidden[contentType] {
			continue
		}
		wg.Add(1)
		go func(ct ContentType) {
			defer wg.Done()
			value, err := m.Get(ctx, ct, in)
			if err != nil {
				m.logger.Debug("collector failed", "field", string(ct), "error", err)
				return
			}
			mu.Lock()
			result[ct] = value
			mu.Unlock()
		}(contentType)
	}

	wg.Wait()
	return result
}

// Snapshot collects every field into a render snapshot. Missing, empty or
// failed values become the sentinel; hidden fields are blank.
func (m *Manager) Snapshot(ctx context.Context, in *Input) layout.Snapshot {
	values := m.GetAll(ctx, in)

	var s layout.Snapshot
	for _, name := range layout.FieldNames {
		value := values[ContentType(name)]
		if value == "" {
			value = Sentinel
		}
		s.Set(name, value)
	}

	hide := make([]string, 0, len(m.hidden))
	for ct := range m.hidden {
		hide = append(hide, string(ct))
	}
	return layout.FilterSnapshot(s, hide)
}

// cacheClearer is implemented by collectors that keep their own cache
type cacheClearer interface {
	ClearCache()
}

// ClearCache clears all cached content, including caches held by collectors,
// so the next refresh collects every field again
func (m *Manager) ClearCache() {
	m.cacheMu.Lock()
	m.cache = make(map[ContentType]*cachedContent)
	m.cacheMu.Unlock()

	for _, c := range m.collectors {
		if cc, ok := c.(cacheClearer); ok {
			cc.ClearCache()
		}
	}
}
