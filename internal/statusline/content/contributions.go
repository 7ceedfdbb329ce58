package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/young1lin/cc-sakura-line/internal/store"
)

const contributionsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}`

// contributionsKeyPrefix is prefixed to the date to form the cache key
const contributionsKeyPrefix = "github-contributions:"

// CounterCache persists fetched counters between runs
type CounterCache interface {
	GetCounter(key string) (*store.Counter, error)
	PutCounter(key string, value int64, at time.Time) error
	DeleteCounter(key string) error
}

func contributionsKey(day time.Time) string {
	return contributionsKeyPrefix + day.Format("2006-01-02")
}

// ContributionsCollector collects today's GitHub contribution count
type ContributionsCollector struct {
	*BaseCollector
	env    envLookup
	runner Runner
	cache  CounterCache
	user   string
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewContributionsCollector creates a new contributions collector. cache may
// be nil, in which case every refresh asks GitHub.
func NewContributionsCollector(runner Runner, cache CounterCache, user string, ttl time.Duration, getenv func(string) string, logger *slog.Logger) *ContributionsCollector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContributionsCollector{
		BaseCollector: NewBaseCollector(ContentContributions, 30*time.Second),
		env:           getenv,
		runner:        runner,
		cache:         cache,
		user:          user,
		ttl:           ttl,
		now:           time.Now,
		logger:        logger,
	}
}

// Collect returns "🌲 N", with thousands separators
func (c *ContributionsCollector) Collect(ctx context.Context, in *Input) (string, error) {
	if v := c.env.get("CC_CONTRIBUTIONS"); v != "" {
		return "🌲 " + v, nil
	}

	n, err := c.count(ctx)
	if err != nil {
		return "", err
	}
	return "🌲 " + humanize.Comma(n), nil
}

// count returns today's count from the cache when fresh, otherwise from
// GitHub. A stale cached value is used when GitHub cannot be reached.
func (c *ContributionsCollector) count(ctx context.Context) (int64, error) {
	now := c.now()
	key := contributionsKey(now)

	var cached *store.Counter
	if c.cache != nil {
		var err error
		cached, err = c.cache.GetCounter(key)
		if err != nil {
			c.logger.Debug("contribution cache read failed", "error", err)
		}
		if cached != nil && now.Sub(cached.UpdatedAt) < c.ttl {
			return cached.Value, nil
		}
	}

	n, err := c.fetch(ctx, now)
	if err != nil {
		if cached != nil {
			c.logger.Debug("using stale contribution count",
				"fetched", humanize.Time(cached.UpdatedAt), "error", err)
			return cached.Value, nil
		}
		return 0, err
	}

	if c.cache != nil {
		if err := c.cache.PutCounter(key, n, now); err != nil {
			c.logger.Debug("contribution cache write failed", "error", err)
		}
		// yesterday's count is never read again
		if err := c.cache.DeleteCounter(contributionsKey(now.AddDate(0, 0, -1))); err != nil {
			c.logger.Debug("contribution cache prune failed", "error", err)
		}
	}
	return n, nil
}

// fetch asks the GitHub GraphQL API through the gh CLI
func (c *ContributionsCollector) fetch(ctx context.Context, now time.Time) (int64, error) {
	user, err := c.login(ctx)
	if err != nil {
		return 0, err
	}

	out, err := runWithTimeout(ctx, c.runner, ghTimeout, "", "gh", "api", "graphql",
		"-f", "query="+contributionsQuery, "-f", "login="+user)
	if err != nil {
		return 0, err
	}
	return parseContributions(out, now.Format("2006-01-02"))
}

// login returns CC_GITHUB_USER, the configured user, or the gh login
func (c *ContributionsCollector) login(ctx context.Context) (string, error) {
	if v := c.env.get("CC_GITHUB_USER"); v != "" {
		return v, nil
	}
	if c.user != "" {
		return c.user, nil
	}

	out, err := runWithTimeout(ctx, c.runner, ghTimeout, "", "gh", "api", "user", "--jq", ".login")
	if err != nil {
		return "", fmt.Errorf("failed to resolve GitHub user: %w", err)
	}
	user := strings.TrimSpace(string(out))
	if user == "" {
		return "", fmt.Errorf("failed to resolve GitHub user: empty login")
	}
	return user, nil
}

type contributionDay struct {
	ContributionCount int64  `json:"contributionCount"`
	Date              string `json:"date"`
}

type contributionsResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []contributionDay `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
}

// parseContributions finds the count for date in a contribution calendar.
// A calendar without that date counts as zero.
func parseContributions(data []byte, date string) (int64, error) {
	var resp contributionsResponse
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &resp); err != nil {
		return 0, fmt.Errorf("failed to parse contributions: %w", err)
	}
	if resp.Data.User == nil {
		return 0, fmt.Errorf("failed to parse contributions: no user in response")
	}

	weeks := resp.Data.User.ContributionsCollection.ContributionCalendar.Weeks
	for i := len(weeks) - 1; i >= 0; i-- {
		days := weeks[i].ContributionDays
		for j := len(days) - 1; j >= 0; j-- {
			if days[j].Date == date {
				return days[j].ContributionCount, nil
			}
		}
	}
	return 0, nil
}
