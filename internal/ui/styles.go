// Package ui provides terminal styling for jiracheck output.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors, adaptive between light and dark terminals.
var (
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
)

// Styles used for stderr notices. The report itself is written unstyled so
// it stays pipeable.
var (
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
)
