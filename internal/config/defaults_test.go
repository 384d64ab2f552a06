package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults_CoverEveryKey(t *testing.T) {
	for _, key := range Keys {
		_, ok := Defaults[key.Name]
		require.True(t, ok, "key %s has no default", key.Name)
	}
}

func TestGet_DefaultWhenFileHasNoOverride(t *testing.T) {
	tempHome(t)

	val, ok := Get("theme")
	require.True(t, ok)
	require.Equal(t, "default", val)

	val, ok = Get("history_limit")
	require.True(t, ok)
	require.Equal(t, "1000", val)
}

func TestGet_FileOverridesDefault(t *testing.T) {
	home := tempHome(t)

	path := filepath.Join(home, ".cmdtreerc")
	err := os.WriteFile(path, []byte("theme=vivid-light\n"), 0600)
	require.NoError(t, err)

	val, ok := Get("theme")
	require.True(t, ok)
	require.Equal(t, "vivid-light", val)
}

func TestGet_UnknownKey(t *testing.T) {
	tempHome(t)

	_, ok := Get("unknown_key")
	require.False(t, ok)
}

func TestGet_EmptyColorDefaults(t *testing.T) {
	tempHome(t)

	for _, key := range []string{"color_success", "color_error", "color_info", "color_muted", "color_header", "color_prompt"} {
		val, ok := Get(key)
		require.True(t, ok, "key %s", key)
		require.Empty(t, val, "key %s", key)
	}
}

func TestGetAll_MergesFileOverDefaults(t *testing.T) {
	home := tempHome(t)

	path := filepath.Join(home, ".cmdtreerc")
	err := os.WriteFile(path, []byte("log_level=debug\ncolor_prompt=51\n"), 0600)
	require.NoError(t, err)

	all, err := GetAll()
	require.NoError(t, err)

	require.Equal(t, "debug", all["log_level"])
	require.Equal(t, "51", all["color_prompt"])
	// Untouched keys keep their defaults.
	require.Equal(t, "default", all["theme"])
	require.Equal(t, "true", all["enable_log"])
}
