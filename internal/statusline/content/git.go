package content

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// gitCacheTTL bounds how often one directory is probed
const gitCacheTTL = 5 * time.Second

// gitErrorTTL keeps a failed probe, such as a directory outside any work
// tree, so the other repository fields of the same refresh reuse it
const gitErrorTTL = 2 * time.Second

// GitInfo holds the repository values shown on the second row
type GitInfo struct {
	Repository  string
	Branch      string
	Changes     string
	AheadBehind string
}

type gitCacheEntry struct {
	info      GitInfo
	err       error
	fetchedAt time.Time
}

func (e gitCacheEntry) fresh(now time.Time) bool {
	ttl := gitCacheTTL
	if e.err != nil {
		ttl = gitErrorTTL
	}
	return now.Sub(e.fetchedAt) < ttl
}

// GitProbe runs the git commands for a directory and caches the combined
// result, so the four repository fields cost one probe per refresh
type GitProbe struct {
	runner Runner
	now    func() time.Time

	mu    sync.Mutex
	cache map[string]gitCacheEntry
}

// NewGitProbe creates a probe that runs git through runner
func NewGitProbe(runner Runner) *GitProbe {
	return &GitProbe{
		runner: runner,
		now:    time.Now,
		cache:  make(map[string]gitCacheEntry),
	}
}

// Info returns the repository values for dir. It fails when dir is not
// inside a work tree.
func (p *GitProbe) Info(ctx context.Context, dir string) (GitInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if e, ok := p.cache[dir]; ok && e.fresh(now) {
		return e.info, e.err
	}

	info, err := p.fetch(ctx, dir)
	p.cache[dir] = gitCacheEntry{info: info, err: err, fetchedAt: now}
	return info, err
}

// Clear drops every cached probe
func (p *GitProbe) Clear() {
	p.mu.Lock()
	p.cache = make(map[string]gitCacheEntry)
	p.mu.Unlock()
}

// fetch runs all git commands in parallel and waits for every one
func (p *GitProbe) fetch(ctx context.Context, dir string) (GitInfo, error) {
	var (
		wg                       sync.WaitGroup
		status, unstaged, staged []byte
		remote, toplevel         []byte
		statusErr                error
	)

	run := func(out *[]byte, errp *error, args ...string) {
		defer wg.Done()
		b, err := runWithTimeout(ctx, p.runner, gitTimeout, dir, "git", args...)
		*out = b
		if errp != nil {
			*errp = err
		}
	}

	wg.Add(5)
	go run(&status, &statusErr, "status", "--porcelain=v1", "-b")
	go run(&unstaged, nil, "diff", "--numstat")
	go run(&staged, nil, "diff", "--numstat", "--cached")
	go run(&remote, nil, "remote", "get-url", "origin")
	go run(&toplevel, nil, "rev-parse", "--show-toplevel")
	wg.Wait()

	if statusErr != nil {
		return GitInfo{}, fmt.Errorf("failed to read git status: %w", statusErr)
	}

	header := firstLine(string(status))
	added, deleted := sumNumstat(string(unstaged))
	a, d := sumNumstat(string(staged))
	added += a
	deleted += d

	repo := parseRemoteSlug(strings.TrimSpace(string(remote)))
	if repo == "" {
		if top := strings.TrimSpace(string(toplevel)); top != "" {
			repo = filepath.Base(top)
		}
	}

	return GitInfo{
		Repository:  repo,
		Branch:      parseBranch(header),
		Changes:     fmt.Sprintf("+%d -%d", added, deleted),
		AheadBehind: parseAheadBehind(header),
	}, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "\r")
}

// parseBranch reads the branch name from a porcelain v1 "## " header
func parseBranch(header string) string {
	rest, ok := strings.CutPrefix(header, "## ")
	if !ok {
		return ""
	}
	for _, prefix := range []string{"No commits yet on ", "Initial commit on "} {
		if name, ok := strings.CutPrefix(rest, prefix); ok {
			return name
		}
	}
	if strings.HasPrefix(rest, "HEAD") || strings.HasPrefix(rest, "(no branch)") {
		return "detached"
	}
	if i := strings.Index(rest, "..."); i >= 0 {
		return rest[:i]
	}
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		return rest[:i]
	}
	return rest
}

// parseAheadBehind formats the upstream counts of a porcelain v1 header as
// "↑N ↓M". Without an upstream it returns "".
func parseAheadBehind(header string) string {
	rest, ok := strings.CutPrefix(header, "## ")
	if !ok || !strings.Contains(rest, "...") {
		return ""
	}

	var ahead, behind int
	if open := strings.IndexByte(rest, '['); open >= 0 {
		if end := strings.IndexByte(rest[open:], ']'); end > 0 {
			for _, part := range strings.Split(rest[open+1:open+end], ",") {
				fields := strings.Fields(part)
				if len(fields) != 2 {
					continue
				}
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					continue
				}
				switch fields[0] {
				case "ahead":
					ahead = n
				case "behind":
					behind = n
				}
			}
		}
	}
	return fmt.Sprintf("↑%d ↓%d", ahead, behind)
}

// sumNumstat adds the added and deleted columns of git diff --numstat output.
// Binary files report "-" and are skipped.
func sumNumstat(out string) (added, deleted int) {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if n, err := strconv.Atoi(fields[0]); err == nil {
			added += n
		}
		if n, err := strconv.Atoi(fields[1]); err == nil {
			deleted += n
		}
	}
	return added, deleted
}

// parseRemoteSlug extracts "owner/repo" from an ssh, scp-style or URL remote
func parseRemoteSlug(remote string) string {
	if remote == "" {
		return ""
	}

	var path string
	if strings.Contains(remote, "://") {
		u, err := url.Parse(remote)
		if err != nil {
			return ""
		}
		path = u.Path
	} else if i := strings.IndexByte(remote, ':'); i >= 0 {
		// git@github.com:owner/repo.git
		path = remote[i+1:]
	} else {
		path = remote
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

// gitCollector serves one repository field from a shared probe
type gitCollector struct {
	*BaseCollector
	probe *GitProbe
	pick  func(GitInfo) string
}

// Collect returns the selected value for the session directory
func (c *gitCollector) Collect(ctx context.Context, in *Input) (string, error) {
	dir := in.Dir()
	if dir == "" {
		return "", fmt.Errorf("no working directory")
	}
	info, err := c.probe.Info(ctx, dir)
	if err != nil {
		return "", err
	}
	return c.pick(info), nil
}

// ClearCache drops the probe results shared by the repository fields
func (c *gitCollector) ClearCache() {
	c.probe.Clear()
}

// NewRepositoryCollector creates the repository collector
func NewRepositoryCollector(probe *GitProbe) Collector {
	return &gitCollector{
		BaseCollector: NewBaseCollector(ContentRepository, 0),
		probe:         probe,
		pick:          func(i GitInfo) string { return i.Repository },
	}
}

// NewBranchCollector creates the branch collector
func NewBranchCollector(probe *GitProbe) Collector {
	return &gitCollector{
		BaseCollector: NewBaseCollector(ContentBranch, 0),
		probe:         probe,
		pick:          func(i GitInfo) string { return i.Branch },
	}
}

// NewGitChangesCollector creates the diff summary collector
func NewGitChangesCollector(probe *GitProbe) Collector {
	return &gitCollector{
		BaseCollector: NewBaseCollector(ContentGitChanges, 0),
		probe:         probe,
		pick:          func(i GitInfo) string { return i.Changes },
	}
}

// NewAheadBehindCollector creates the upstream divergence collector
func NewAheadBehindCollector(probe *GitProbe) Collector {
	return &gitCollector{
		BaseCollector: NewBaseCollector(ContentAheadBehind, 0),
		probe:         probe,
		pick:          func(i GitInfo) string { return i.AheadBehind },
	}
}
