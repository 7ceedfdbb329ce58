package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/cc-sakura-line/internal/statusline/render"
)

func TestContextCollectors(t *testing.T) {
	formatter := render.NewFormatter("")

	tests := []struct {
		name          string
		env           map[string]string
		input         string
		wantLabel     string
		wantRemaining string
	}{
		{
			name:          "usage from input",
			input:         sampleInput,
			wantLabel:     "20K/200K",
			wantRemaining: "90% left",
		},
		{
			name:          "total from model registry",
			input:         `{"model":{"id":"claude-opus-4-5-20251101"},"context_window":{"current_usage":{"input_tokens":50000}}}`,
			wantLabel:     "50K/200K",
			wantRemaining: "75% left",
		},
		{
			name:          "used only",
			input:         `{"context_window":{"current_usage":{"input_tokens":950}}}`,
			wantLabel:     "950",
			wantRemaining: "",
		},
		{
			name:          "total only",
			input:         `{"context_window":{"context_window_size":200000}}`,
			wantLabel:     "",
			wantRemaining: "",
		},
		{
			name:          "environment pair replaces input",
			env:           map[string]string{"CC_CONTEXT_USED": "120", "CC_CONTEXT_TOTAL": "200"},
			input:         sampleInput,
			wantLabel:     "120/200",
			wantRemaining: "40% left",
		},
		{
			name:          "environment used without total",
			env:           map[string]string{"CC_CONTEXT_USED": "1500"},
			input:         sampleInput,
			wantLabel:     "1.5K",
			wantRemaining: "",
		},
		{
			name:          "over budget clamps at zero",
			env:           map[string]string{"CC_CONTEXT_USED": "300", "CC_CONTEXT_TOTAL": "200"},
			wantLabel:     "300/200",
			wantRemaining: "0% left",
		},
		{
			name:          "zero total",
			env:           map[string]string{"CC_CONTEXT_USED": "5", "CC_CONTEXT_TOTAL": "0"},
			wantLabel:     "",
			wantRemaining: "",
		},
		{
			name:          "label overrides",
			env:           map[string]string{"CC_CONTEXT_LABEL": "custom", "CC_CONTEXT_REMAINING": "lots"},
			input:         sampleInput,
			wantLabel:     "custom",
			wantRemaining: "lots",
		},
		{
			name: "no input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ParseInput([]byte(tt.input))
			ctx := context.Background()

			label, err := NewContextCollector(formatter, envMap(tt.env)).Collect(ctx, in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, label)

			remaining, err := NewContextRemainingCollector(envMap(tt.env)).Collect(ctx, in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestModelCollector(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		input string
		want  string
	}{
		{"environment", map[string]string{"CC_MODEL": "Custom"}, sampleInput, "Custom"},
		{"display name", nil, sampleInput, "Sonnet 4.5"},
		{"registry name", nil, `{"model":{"id":"claude-haiku-4-5-20251001"}}`, "Haiku 4.5"},
		{"raw id", nil, `{"model":{"id":"some-new-model"}}`, "some-new-model"},
		{"nothing", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewModelCollector(envMap(tt.env)).Collect(context.Background(), ParseInput([]byte(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionClockCollector(t *testing.T) {
	formatter := render.NewFormatter("")
	c := NewSessionClockCollector(formatter)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"cost duration", sampleInput, "5h32m"},
		{"session duration", `{"session":{"duration_ms":1932000}}`, "32m"},
		{"numeric string", `{"elapsed_ms":"3600000"}`, "1h"},
		{"under a minute", `{"total_duration_ms":59999}`, "<1m"},
		{"first path wins", `{"cost":{"total_duration_ms":60000},"elapsed_ms":7200000}`, "1m"},
		{"nothing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Collect(ctx, ParseInput([]byte(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	in := ParseInput(nil)
	in.StartedAt = now.Add(-90 * time.Minute)
	got, err := c.Collect(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "1h30m", got)
}

func TestNowClockCollector(t *testing.T) {
	at := time.Date(2025, 1, 1, 15, 4, 5, 0, time.UTC)

	c := NewNowClockCollector(render.NewFormatter("24h"))
	c.now = func() time.Time { return at }
	got, err := c.Collect(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "15:04:05", got)

	c = NewNowClockCollector(render.NewFormatter("12h"))
	c.now = func() time.Time { return at }
	got, err = c.Collect(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "3:04:05 PM", got)
}
