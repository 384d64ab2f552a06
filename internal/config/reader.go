package config

import (
	"os"
	"strings"

	"github.com/kurtlawrence/cmdtree/internal/log"
	"github.com/kurtlawrence/cmdtree/internal/paths"
)

// ReadLines loads the config file as raw lines, creating it with default
// content on first use. Windows line endings are normalized away.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return seedDefaultFile()
	}
	if err != nil {
		return nil, err
	}

	// The file can hold color escape values the user typed; keep it
	// private to them.
	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	if len(raw) == 0 {
		return seedDefaultFile()
	}

	return splitLines(string(raw)), nil
}

// seedDefaultFile writes the initial config and returns its lines. A
// failed write is only logged so a read-only HOME still gets defaults.
func seedDefaultFile() ([]string, error) {
	lines := defaultFileContent()
	if err := WriteLines(lines); err != nil {
		log.Warn("config: could not write default config: %v", err)
	}
	return lines, nil
}

// splitLines breaks file content into lines, dropping the final newline
// and any \r endings.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// defaultFileContent renders the initial config file: a short header,
// the visible keys with their defaults, and the color keys as commented
// placeholders.
func defaultFileContent() []string {
	lines := []string{
		"# cmdtree configuration",
		"# Edit values below or use: cmdtree config set <key> <value>",
		"",
	}

	for _, key := range Keys {
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}
		lines = append(lines, key.Name+"="+quoteIfSpaced(Defaults[key.Name]))
	}

	return lines
}

func quoteIfSpaced(value string) string {
	if strings.Contains(value, " ") {
		return `"` + value + `"`
	}
	return value
}
