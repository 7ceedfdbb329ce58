package config

import (
	"testing"

	"github.com/young1lin/cc-sakura-line/internal/statusline/layout"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestResolve(t *testing.T) {
	probe80 := func() (int, bool) { return 80, true }
	noTTY := func() (int, bool) { return 0, false }

	tests := []struct {
		name  string
		env   map[string]string
		cfg   *Config
		over  Overrides
		probe func() (int, bool)
		want  layout.Options
	}{
		{
			name:  "probe only",
			probe: probe80,
			want:  layout.Options{Width: 80, HasWidth: true},
		},
		{
			name:  "no width anywhere",
			probe: noTTY,
			want:  layout.Options{},
		},
		{
			name:  "columns beats probe",
			env:   map[string]string{EnvColumns: "100"},
			probe: probe80,
			want:  layout.Options{Width: 100, HasWidth: true},
		},
		{
			name:  "config beats columns",
			env:   map[string]string{EnvColumns: "100"},
			cfg:   &Config{Display: DisplayConfig{Width: 90}},
			probe: probe80,
			want:  layout.Options{Width: 90, HasWidth: true},
		},
		{
			name:  "env beats config",
			env:   map[string]string{EnvWidth: "70"},
			cfg:   &Config{Display: DisplayConfig{Width: 90}},
			probe: probe80,
			want:  layout.Options{Width: 70, HasWidth: true},
		},
		{
			name:  "flag beats env",
			env:   map[string]string{EnvWidth: "70"},
			over:  Overrides{Width: intPtr(60)},
			probe: probe80,
			want:  layout.Options{Width: 60, HasWidth: true},
		},
		{
			name:  "invalid env width falls through",
			env:   map[string]string{EnvWidth: "wide"},
			probe: probe80,
			want:  layout.Options{Width: 80, HasWidth: true},
		},
		{
			name:  "reserved from env",
			env:   map[string]string{EnvReserved: "10"},
			probe: probe80,
			want:  layout.Options{Width: 70, HasWidth: true},
		},
		{
			name:  "reserved flag beats config",
			cfg:   &Config{Display: DisplayConfig{Reserved: 5}},
			over:  Overrides{Reserved: intPtr(20)},
			probe: probe80,
			want:  layout.Options{Width: 60, HasWidth: true},
		},
		{
			name:  "reserved saturates",
			over:  Overrides{Width: intPtr(10), Reserved: intPtr(30)},
			probe: probe80,
			want:  layout.Options{Width: 0, HasWidth: true},
		},
		{
			name:  "fill from env",
			env:   map[string]string{EnvFill: "yes"},
			probe: noTTY,
			want:  layout.Options{Fill: true},
		},
		{
			name:  "env fill off overrides config",
			env:   map[string]string{EnvFill: "0"},
			cfg:   &Config{Display: DisplayConfig{Fill: true}},
			probe: noTTY,
			want:  layout.Options{},
		},
		{
			name:  "no-fill flag beats env",
			env:   map[string]string{EnvFill: "on"},
			over:  Overrides{Fill: boolPtr(false)},
			probe: probe80,
			want:  layout.Options{Width: 80, HasWidth: true},
		},
		{
			name: "nil probe skips columns",
			env:  map[string]string{EnvColumns: "100"},
			want: layout.Options{},
		},
		{
			name: "nil probe still honors explicit width",
			env:  map[string]string{EnvWidth: "50", EnvFill: "true"},
			want: layout.Options{Width: 50, HasWidth: true, Fill: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{Getenv: envMap(tt.env), Probe: tt.probe}
			got := r.Resolve(tt.cfg, tt.over)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "on", " on "} {
		if !ParseBool(v) {
			t.Errorf("ParseBool(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"", "0", "false", "no", "off", "maybe"} {
		if ParseBool(v) {
			t.Errorf("ParseBool(%q) = true, want false", v)
		}
	}
}
