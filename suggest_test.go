package cmdtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "identical",
			a:    "print",
			b:    "print",
			want: 0,
		},
		{
			name: "one insertion",
			a:    "print",
			b:    "prints",
			want: 1,
		},
		{
			name: "transposition",
			a:    "print",
			b:    "pritn",
			want: 2,
		},
		{
			name: "substitution",
			a:    "cancel",
			b:    "cansel",
			want: 1,
		},
		{
			name: "completely different",
			a:    "print",
			b:    "xyz",
			want: 5,
		},
		{
			name: "empty a",
			a:    "",
			b:    "exit",
			want: 4,
		},
		{
			name: "empty b",
			a:    "exit",
			b:    "",
			want: 4,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func TestSuggestions_ClosestFirst(t *testing.T) {
	cmd := createTestCommander(t)

	got := cmd.Suggestions("pritn")
	require.NotEmpty(t, got)
	require.Equal(t, "print", got[0])
}

func TestSuggestions_IncludeBuiltins(t *testing.T) {
	cmd := createTestCommander(t)

	got := cmd.Suggestions("hepl")
	require.NotEmpty(t, got)
	require.Equal(t, "help", got[0])
}

func TestSuggestions_CutoffDistance(t *testing.T) {
	cmd := createTestCommander(t)

	require.Empty(t, cmd.Suggestions("zzzzzzzzzz"))
}

func TestSuggestions_CurrentClassOnly(t *testing.T) {
	cmd := createTestCommander(t)

	// "open" lives under net.dial and must not surface from the root.
	require.NotContains(t, cmd.Suggestions("opne"), "open")

	got := cmd.Suggestions("stauts")
	require.Contains(t, got, "status")
}
