// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported outside the
// interactive shell. All styling is semantic (Success, Error, Prompt,
// etc.) rather than visual. When disabled, every helper returns the
// input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type role int

const (
	roleSuccess role = iota
	roleError
	roleInfo
	roleMuted
	roleHeader
	rolePrompt
	roleCount
)

var (
	enabled bool
	colors  ColorConfig
	styles  [roleCount]lipgloss.Style
)

// Init initializes the style package with the given enabled state and
// config. It respects the NO_COLOR and CMDTREE_NO_COLOR environment
// variables; if either is set, styling is disabled regardless of the
// enable parameter. Call once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDTREE_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	colors = LoadColorConfig(cfg)

	// A fixed profile keeps numeric colors stable whether or not
	// lipgloss thinks stdout is a TTY.
	lipgloss.SetColorProfile(termenv.ANSI256)

	for r, value := range map[role]string{
		roleSuccess: colors.Success,
		roleError:   colors.Error,
		roleInfo:    colors.Info,
		roleMuted:   colors.Muted,
		roleHeader:  colors.Header,
		rolePrompt:  colors.Prompt,
	} {
		styles[r] = styleFor(value)
	}
}

// styleFor builds a style from a color value, either "bold" or an ANSI
// color number (0-255).
func styleFor(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(r role, text string) string {
	if !enabled {
		return text
	}
	return styles[r].Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(roleSuccess, text) }

// Error styles text for error messages, including unrecognised input.
func Error(text string) string { return render(roleError, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(roleInfo, text) }

// Muted styles text for secondary information such as suggestions.
func Muted(text string) string { return render(roleMuted, text) }

// Header styles text for section headers.
func Header(text string) string { return render(roleHeader, text) }

// Prompt styles the class-path prompt shown before each input line.
func Prompt(text string) string { return render(rolePrompt, text) }

// Enabled reports whether styling is currently enabled.
func Enabled() bool { return enabled }

// GetColors returns the current color configuration.
func GetColors() ColorConfig { return colors }
