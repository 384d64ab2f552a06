package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kurtlawrence/cmdtree/internal/paths"
)

// WriteLines replaces the config file with the given lines. The content
// lands in a temp file in the same directory first and is renamed over
// the real path, so a concurrent reader never sees a half-written file.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(configPath), ".cmdtreerc.tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		// After a successful rename both calls are no-ops.
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if err := tmp.Chmod(0600); err != nil {
		return err
	}

	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), configPath)
}
