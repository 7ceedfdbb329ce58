package content

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
)

// claudeVersionTTL bounds how often "claude --version" is run
const claudeVersionTTL = 5 * time.Minute

// VersionCollector collects the host version
type VersionCollector struct {
	*BaseCollector
	env    envLookup
	runner Runner
	now    func() time.Time

	mu        sync.Mutex
	cached    string
	fetchedAt time.Time
}

// NewVersionCollector creates a new version collector
func NewVersionCollector(runner Runner, getenv func(string) string) *VersionCollector {
	return &VersionCollector{
		BaseCollector: NewBaseCollector(ContentVersion, 0),
		env:           getenv,
		runner:        runner,
		now:           time.Now,
	}
}

// Collect returns CC_VERSION, the JSON version, or the output of
// "claude --version"
func (c *VersionCollector) Collect(ctx context.Context, in *Input) (string, error) {
	if v := c.env.get("CC_VERSION"); v != "" {
		return NormalizeVersion(v), nil
	}
	if v := in.String("version"); v != "" {
		return NormalizeVersion(v), nil
	}
	return c.claudeVersion(ctx)
}

// claudeVersion returns the cached "claude --version" result
func (c *VersionCollector) claudeVersion(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.cached != "" && now.Sub(c.fetchedAt) < claudeVersionTTL {
		return c.cached, nil
	}
	if c.runner == nil {
		return "", nil
	}

	out, err := runWithTimeout(ctx, c.runner, claudeTimeout, "", "claude", "--version")
	if err != nil {
		return "", err
	}

	c.cached = NormalizeVersion(string(out))
	c.fetchedAt = now
	return c.cached, nil
}

// NormalizeVersion keeps the first word of a version string and strips a
// leading v. Valid semantic versions are printed canonically; anything else
// is returned as is.
func NormalizeVersion(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	v := strings.TrimPrefix(strings.TrimPrefix(fields[0], "v"), "V")

	sv, err := semver.StrictNewVersion(v)
	if err != nil {
		return v
	}
	return sv.String()
}
