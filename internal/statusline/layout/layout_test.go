package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/cc-sakura-line/internal/statusline/width"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Model:            "model",
		Version:          "0.1.0",
		Contributions:    "🌲 9",
		SessionClock:     "5h32m",
		Repository:       "owner/repo",
		Branch:           "main",
		GitChanges:       "+3 -1",
		AheadBehind:      "↑1 ↓0",
		Context:          "10K/100K",
		ContextRemaining: "90% left",
		NowClock:         "12:34:56",
	}
}

func TestProportional(t *testing.T) {
	tests := []struct {
		usable int
		want   Widths
	}{
		{41, Widths{10, 10, 10, 11}},
		{40, Widths{10, 10, 10, 10}},
		{3, Widths{0, 0, 0, 3}},
		{0, Widths{}},
		{-5, Widths{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Proportional(tt.usable), "usable=%d", tt.usable)
	}
}

func TestProportionalSumsToUsable(t *testing.T) {
	for usable := 0; usable <= 300; usable++ {
		w := Proportional(usable)
		assert.Equal(t, usable, w.Sum(), "usable=%d", usable)
		assert.LessOrEqual(t, w[ColSecondary]-w[ColPrimary], 3)
	}
}

func TestNaturalWidth(t *testing.T) {
	assert.Equal(t, 6, NaturalWidth("main", ColLabel))
	assert.Equal(t, 9, NaturalWidth("model", ColPrimary))
	assert.Equal(t, 2, NaturalWidth("", ColDiff))
	assert.Equal(t, 4, NaturalWidth("", ColSecondary))
	assert.Equal(t, 8, NaturalWidth("中文", ColLabel))
}

func TestSnapshotRows(t *testing.T) {
	rows := sampleSnapshot().Rows()
	assert.Equal(t, "model", rows[0][0].Text)
	assert.Equal(t, "5h32m", rows[0][3].Text)
	assert.Equal(t, "owner/repo", rows[1][0].Text)
	assert.Equal(t, "", rows[2][2].Text)
	assert.Equal(t, "12:34:56", rows[2][3].Text)
	for _, row := range rows {
		for i, e := range row {
			assert.Equal(t, Column(i), e.Column)
		}
	}
}

func TestSharedWidths(t *testing.T) {
	grid := NewGrid(sampleSnapshot())
	// max over rows: " owner/repo "+2, " 90% left ", " +3 -1 ", " 12:34:56 "+2
	assert.Equal(t, Widths{14, 10, 7, 12}, grid.ColWidths)
}

func TestSharedWidthsNeverTruncate(t *testing.T) {
	s := sampleSnapshot()
	s.Branch = "feature/中文"
	grid := NewGrid(s)
	for _, row := range grid.Rows {
		for _, e := range row {
			w := grid.ColWidths[e.Column]
			if e.Column.Bordered() {
				w -= PillBorder
			}
			fitted := width.Fit(CellText(e.Text), w)
			assert.Equal(t, width.PadRight(CellText(e.Text), w), fitted)
		}
	}
}

func TestResolveWidths(t *testing.T) {
	shared := Widths{9, 8, 7, 6}
	tests := []struct {
		name string
		opts Options
		want Widths
	}{
		{"natural", Options{}, shared},
		{"fixed width uses shared", Options{Width: 20, HasWidth: true}, shared},
		{"fill with width", Options{Width: 42, HasWidth: true, Fill: true}, Widths{10, 10, 10, 11}},
		{"fill without width", Options{Fill: true}, Widths{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWidths(shared, tt.opts))
		})
	}
}

func TestComposeNatural(t *testing.T) {
	lines := Compose(sampleSnapshot(), Options{})
	require.Len(t, lines, NumRows)
	shared := NewGrid(sampleSnapshot()).ColWidths
	for _, line := range lines {
		require.Len(t, line.Cells, NumColumns)
		for _, c := range line.Cells {
			assert.Equal(t, shared[c.Column], c.Width)
		}
		assert.Equal(t, Gutter+shared.Sum(), line.Width())
	}
}

func TestComposeBoundedWidth(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for _, fill := range []bool{false, true} {
			opts := Options{Width: total, HasWidth: true, Fill: fill}
			for _, line := range Compose(sampleSnapshot(), opts) {
				if total == 0 {
					assert.Empty(t, line.Cells)
					continue
				}
				assert.LessOrEqual(t, line.Width(), total, "width=%d fill=%v", total, fill)
			}
		}
	}
}

func TestComposeWidth20(t *testing.T) {
	lines := Compose(sampleSnapshot(), Options{Width: 20, HasWidth: true})
	require.Len(t, lines, NumRows)
	// budget 19: model pill (14) then 5 columns of the label
	first := lines[0]
	require.Len(t, first.Cells, 2)
	assert.Equal(t, Cell{Column: ColPrimary, Width: 14, Text: "model"}, first.Cells[0])
	assert.Equal(t, Cell{Column: ColLabel, Width: 5, Text: "0.1.0"}, first.Cells[1])
	assert.Equal(t, 20, first.Width())
}

func TestComposeZeroColumnStopsRow(t *testing.T) {
	// budget 3 splits as [0,0,0,3]; the empty first column ends the row
	lines := Compose(sampleSnapshot(), Options{Width: 4, HasWidth: true, Fill: true})
	for _, line := range lines {
		assert.Empty(t, line.Cells)
	}
}

func TestComposeFillWithoutWidth(t *testing.T) {
	lines := Compose(sampleSnapshot(), Options{Fill: true})
	require.Len(t, lines, NumRows)
	for _, line := range lines {
		assert.Empty(t, line.Cells)
		assert.Equal(t, Gutter, line.Width())
	}
}

func TestComposeFillSpansWidth(t *testing.T) {
	lines := Compose(sampleSnapshot(), Options{Width: 81, HasWidth: true, Fill: true})
	for _, line := range lines {
		require.Len(t, line.Cells, NumColumns)
		assert.Equal(t, 81, line.Width())
	}
}

func TestOptionsBudget(t *testing.T) {
	b, ok := Options{}.Budget()
	assert.False(t, ok)
	assert.Equal(t, 0, b)

	b, ok = Options{Width: 1, HasWidth: true}.Budget()
	assert.True(t, ok)
	assert.Equal(t, 0, b)

	b, ok = Options{}.WithWidth(30).Budget()
	assert.True(t, ok)
	assert.Equal(t, 29, b)

	assert.Equal(t, 0, Options{}.WithWidth(-4).Width)
}

func TestFilterSnapshot(t *testing.T) {
	s := FilterSnapshot(sampleSnapshot(), []string{FieldBranch, FieldNowClock, "bogus"})
	assert.Equal(t, "", s.Branch)
	assert.Equal(t, "", s.NowClock)
	assert.Equal(t, "model", s.Model)

	orig := sampleSnapshot()
	assert.Equal(t, orig, FilterSnapshot(orig, nil))
	assert.Equal(t, "main", orig.Branch)
}

func TestSnapshotField(t *testing.T) {
	s := sampleSnapshot()
	for _, name := range FieldNames {
		assert.True(t, IsField(name), name)
		_, ok := s.Field(name)
		assert.True(t, ok, name)
	}
	v, ok := s.Field(FieldRepository)
	assert.True(t, ok)
	assert.Equal(t, "owner/repo", v)
	_, ok = s.Field("nope")
	assert.False(t, ok)
	assert.False(t, IsField("nope"))
}

func TestSnapshotSet(t *testing.T) {
	var s Snapshot
	for _, name := range FieldNames {
		require.True(t, s.Set(name, name), name)
		v, _ := s.Field(name)
		assert.Equal(t, name, v)
	}
	assert.False(t, s.Set("nope", "x"))
	assert.Equal(t, "", s.Rows()[2][2].Text)
}
