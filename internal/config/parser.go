package config

import (
	"fmt"
	"strings"
)

// Parse converts config file lines into a key/value map. Blank lines and
// # comments are skipped; every other line must be key=value. Keys and
// values are trimmed, later duplicates win, and a UTF-8 BOM on the first
// line is ignored.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config: line %d: missing '=': %q", i+1, line)
		}

		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key: %q", i+1, line)
		}

		cfg[key] = strings.TrimSpace(parts[1])
	}

	return cfg, nil
}
