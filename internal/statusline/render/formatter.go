package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formatter formats the values shown in cells
type Formatter struct {
	timeFormat string // "12h" or "24h"
}

// NewFormatter creates a new formatter for "12h" or "24h" clocks. Anything
// else means 24h.
func NewFormatter(timeFormat string) *Formatter {
	tfmt := timeFormat
	if tfmt != "12h" {
		tfmt = "24h"
	}
	return &Formatter{timeFormat: tfmt}
}

// FormatClock formats a wall clock time based on the configured format
func (f *Formatter) FormatClock(t time.Time) string {
	if f.timeFormat == "12h" {
		return t.Format("3:04:05 PM")
	}
	return t.Format("15:04:05")
}

// FormatDuration formats an elapsed time as <1m, 32m, 5h or 5h32m
func (f *Formatter) FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "<1m"
	}

	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
}

// FormatCount formats a token count compactly: 950, 12.5K, 1M
func (f *Formatter) FormatCount(n uint64) string {
	switch {
	case n < 1000:
		return strconv.FormatUint(n, 10)
	case n < 999_950: // rounds below 1000.0K
		return compact(float64(n)/1000) + "K"
	default:
		return compact(float64(n)/1000000) + "M"
	}
}

func compact(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
