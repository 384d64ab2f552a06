package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  map[string]string
	}{
		{
			name:  "no lines",
			lines: nil,
			want:  map[string]string{},
		},
		{
			name:  "one pair",
			lines: []string{"theme=vivid-dark"},
			want:  map[string]string{"theme": "vivid-dark"},
		},
		{
			name:  "blank and whitespace-only lines skipped",
			lines: []string{"theme=mono-light", "", "   ", "history_limit=50"},
			want:  map[string]string{"theme": "mono-light", "history_limit": "50"},
		},
		{
			name:  "comments skipped even when indented",
			lines: []string{"# cmdtree configuration", "enable_log=false", "   # color overrides", "color_muted=245"},
			want:  map[string]string{"enable_log": "false", "color_muted": "245"},
		},
		{
			name:  "whitespace trimmed around key and value",
			lines: []string{"  theme =  vivid-light ", "log_level= debug"},
			want:  map[string]string{"theme": "vivid-light", "log_level": "debug"},
		},
		{
			name:  "value may contain equals signs",
			lines: []string{"color_prompt=38;5;51", "note=a=b=c"},
			want:  map[string]string{"color_prompt": "38;5;51", "note": "a=b=c"},
		},
		{
			name:  "empty value allowed",
			lines: []string{"color_header="},
			want:  map[string]string{"color_header": ""},
		},
		{
			name:  "leading BOM ignored",
			lines: []string{"\uFEFFtheme=default", "log_level=info"},
			want:  map[string]string{"theme": "default", "log_level": "info"},
		},
		{
			name:  "last duplicate wins",
			lines: []string{"history_limit=100", "history_limit=200"},
			want:  map[string]string{"history_limit": "200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParse_BadLines(t *testing.T) {
	t.Run("missing equals", func(t *testing.T) {
		_, err := Parse([]string{"theme=default", "history_limit"})
		require.Error(t, err)
		require.ErrorContains(t, err, "line 2")
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := Parse([]string{"=vivid-dark"})
		require.Error(t, err)
		require.ErrorContains(t, err, "line 1")
	})
}
