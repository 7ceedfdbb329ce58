package tui

import (
	"time"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
)

// TickMsg is sent once per second to refresh the panel
type TickMsg struct {
	Time time.Time
}

// SnapshotMsg carries freshly collected values
type SnapshotMsg struct {
	Snapshot layout.Snapshot
}

// ConfigReloadedMsg is sent after the configuration file changed
type ConfigReloadedMsg struct {
	Options layout.Options
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}
