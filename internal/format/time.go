package format

import (
	"fmt"
	"time"
)

// DateTime formats a time with both date and time.
// Example output: "Jan 23 15:04"
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// Date formats only the date portion.
// Example output: "Jan 23"
func Date(t time.Time) string {
	return t.Format("Jan 02")
}

// Time formats only the time portion.
// Example output: "15:04"
func Time(t time.Time) string {
	return t.Format("15:04")
}

// Relative renders a timestamp as a distance from now, for history
// listings. Recent entries read as "5m ago"; anything older than a week
// falls back to the absolute date.
func Relative(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return DateTime(t)
	}
}
