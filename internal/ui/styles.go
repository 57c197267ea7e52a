// Package ui renders the health report on the console.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color palette
const (
	ColorHeader  = "252"
	ColorRunning = "82"
	ColorStopped = "245"
	ColorPending = "214"
	ColorAlarm   = "196"
	ColorMuted   = "240"
	ColorHint    = "245"
)

// Shared styles
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	RunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRunning))
	StoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStopped))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPending))
	AlarmStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAlarm))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

// truncate shortens a string to the specified display width using runewidth
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
