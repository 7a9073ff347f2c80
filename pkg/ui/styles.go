package ui

import (
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/yawik/modsync/pkg/types"
)

// Glyphs are the status markers of report rows
type Glyphs struct {
	Ok      string
	Warning string
	Error   string
}

var (
	unicodeGlyphs = Glyphs{Ok: "✔", Warning: "!", Error: "✘"}
	// Windows consoles often lack the check marks
	asciiGlyphs = Glyphs{Ok: "OK", Warning: "WARNING", Error: "ERROR"}
)

// DefaultGlyphs returns the glyphs for the running platform
func DefaultGlyphs() Glyphs {
	if runtime.GOOS == "windows" {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// For returns the glyph for an outcome
func (g Glyphs) For(outcome types.Outcome) string {
	switch outcome {
	case types.OutcomeOk:
		return g.Ok
	case types.OutcomeWarning:
		return g.Warning
	default:
		return g.Error
	}
}

var (
	successColor = lipgloss.Color("2")
	warningColor = lipgloss.Color("3")
	errorColor   = lipgloss.Color("1")
	mutedColor   = lipgloss.Color("8")

	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

func outcomeStyle(outcome types.Outcome) lipgloss.Style {
	switch outcome {
	case types.OutcomeOk:
		return successStyle
	case types.OutcomeWarning:
		return warningStyle
	default:
		return errorStyle
	}
}
