package layout

// Field names, used by configuration to hide individual values
const (
	FieldModel            = "model"
	FieldVersion          = "version"
	FieldContributions    = "contributions"
	FieldSessionClock     = "session-clock"
	FieldRepository       = "repository"
	FieldBranch           = "branch"
	FieldGitChanges       = "git-changes"
	FieldAheadBehind      = "ahead-behind"
	FieldContext          = "context"
	FieldContextRemaining = "context-remaining"
	FieldNowClock         = "now-clock"
)

// FieldNames lists every field in grid order
var FieldNames = []string{
	FieldModel, FieldVersion, FieldContributions, FieldSessionClock,
	FieldRepository, FieldBranch, FieldGitChanges, FieldAheadBehind,
	FieldContext, FieldContextRemaining, FieldNowClock,
}

// Snapshot is the set of values rendered in one cycle. Any field may hold the
// sentinel "-"; it is ordinary text here.
type Snapshot struct {
	// Row 1: assistant
	Model         string
	Version       string
	Contributions string
	SessionClock  string
	// Row 2: repository
	Repository  string
	Branch      string
	GitChanges  string
	AheadBehind string
	// Row 3: context
	Context          string
	ContextRemaining string
	NowClock         string
}

// Rows returns the snapshot as three rows of four entries.
// Grid structure:
//
//	Row 0: Model      | Version           | Contributions | SessionClock
//	Row 1: Repository | Branch            | GitChanges    | AheadBehind
//	Row 2: Context    | ContextRemaining  | (empty)       | NowClock
func (s Snapshot) Rows() [NumRows]Row {
	return [NumRows]Row{
		newRow(s.Model, s.Version, s.Contributions, s.SessionClock),
		newRow(s.Repository, s.Branch, s.GitChanges, s.AheadBehind),
		newRow(s.Context, s.ContextRemaining, "", s.NowClock),
	}
}

// Field returns the value stored under a field name
func (s Snapshot) Field(name string) (string, bool) {
	if p := s.field(name); p != nil {
		return *p, true
	}
	return "", false
}

// Set stores value under a field name. It reports false for unknown names.
func (s *Snapshot) Set(name, value string) bool {
	p := s.field(name)
	if p == nil {
		return false
	}
	*p = value
	return true
}

func (s *Snapshot) field(name string) *string {
	switch name {
	case FieldModel:
		return &s.Model
	case FieldVersion:
		return &s.Version
	case FieldContributions:
		return &s.Contributions
	case FieldSessionClock:
		return &s.SessionClock
	case FieldRepository:
		return &s.Repository
	case FieldBranch:
		return &s.Branch
	case FieldGitChanges:
		return &s.GitChanges
	case FieldAheadBehind:
		return &s.AheadBehind
	case FieldContext:
		return &s.Context
	case FieldContextRemaining:
		return &s.ContextRemaining
	case FieldNowClock:
		return &s.NowClock
	}
	return nil
}

func newRow(values ...string) Row {
	var row Row
	for i, v := range values {
		row[i] = Entry{Column: Column(i), Text: v}
	}
	return row
}

// Grid is a snapshot laid out as rows together with its shared natural widths
type Grid struct {
	Rows      [NumRows]Row
	ColWidths Widths
}

// NewGrid creates a grid for the given snapshot
func NewGrid(s Snapshot) *Grid {
	grid := &Grid{Rows: s.Rows()}
	grid.ColWidths = SharedWidths(grid.Rows[:])
	return grid
}
