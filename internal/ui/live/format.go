package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"itsss/internal/scoring"
)

const (
	defaultWidth = 72
	minWidth     = 40
	maxWidth     = 100
)

var (
	accentColor = lipgloss.Color("33")
	mutedColor  = lipgloss.Color("244")
	errorColor  = lipgloss.Color("196")
)

// clampWidth keeps the layout readable on very narrow or wide terminals.
func clampWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	return max(minWidth, min(width-4, maxWidth))
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatQuestionCounter renders "Question i of n".
func formatQuestionCounter(index, total int) string {
	return "Question " + fmtInt(index+1) + " of " + fmtInt(total)
}

// formatOption renders one numbered answer option.
func formatOption(index int, text string, cursor, chosen bool) string {
	marker := "  "
	if cursor {
		marker = "> "
	}
	line := marker + fmtInt(index+1) + ". " + text
	if chosen {
		line += " ✓"
	}
	return line
}

// wrap folds text to width on word boundaries, measuring display cells.
func wrap(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// emphasize renders text bold in the accent color.
func emphasize(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render(text)
}

// categoryColor selects the colour used for a stress band.
func categoryColor(category scoring.Category) lipgloss.Color {
	switch category {
	case scoring.Low:
		return lipgloss.Color("42")
	case scoring.Moderate:
		return lipgloss.Color("220")
	case scoring.High:
		return lipgloss.Color("208")
	case scoring.Severe:
		return lipgloss.Color("196")
	default:
		return mutedColor
	}
}
