package config

import "strings"

// Set rewrites the line holding key, or appends one, and reports whether
// an existing line was updated. Comments and blank lines pass through
// untouched; an inline comment after the value is preserved.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		name, rest, ok := splitPair(line)
		if !ok || name != key {
			continue
		}
		lines[i] = key + "=" + value + inlineComment(rest)
		return lines, true
	}
	return append(lines, key+"="+value), false
}

// Unset drops the line holding key and reports whether one was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false
	for _, line := range lines {
		if name, _, ok := splitPair(line); ok && name == key {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return out, removed
}

// splitPair breaks a raw config line into key and value. ok is false
// for blanks, comments, and lines without '='.
func splitPair(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(key), value, true
}

// inlineComment extracts a trailing "# ..." from a raw value, including
// a separating space, or returns "" when there is none.
func inlineComment(value string) string {
	if idx := strings.Index(value, "#"); idx >= 0 {
		return " " + strings.TrimSpace(value[idx:])
	}
	return ""
}
