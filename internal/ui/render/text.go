// Package render provides text layout helpers for TUI components.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if
// truncated. Uses runewidth for proper handling of wide characters.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(s, maxWidth, "…")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact
// width, so the output is always exactly width cells wide.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row creates a row with left and right aligned content separated by spaces.
// The total width of the output will be exactly width cells.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// EmptyLine creates an empty line (spaces) of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", width)
}
