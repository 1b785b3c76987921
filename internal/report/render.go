package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders a summary as a markdown document.
func Markdown(summary Summary) string {
	var b strings.Builder
	b.WriteString("# Your Results\n\n")
	fmt.Fprintf(&b, "Score: %d / %d\n\n", summary.Score, summary.MaxScore)
	fmt.Fprintf(&b, "## %s\n\n", summary.Label)
	if summary.Description != "" {
		b.WriteString(summary.Description + "\n\n")
	}
	if len(summary.Recommendations) > 0 {
		b.WriteString("### Recommendations\n\n")
		for _, item := range summary.Recommendations {
			b.WriteString("- " + item + "\n")
		}
	}
	return b.String()
}

// RenderOptions controls terminal rendering.
type RenderOptions struct {
	Width   int
	NoColor bool
}

// Render formats markdown for the terminal.
func Render(markdown string, opts RenderOptions) (string, error) {
	style := "dark"
	if opts.NoColor {
		style = "notty"
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// RenderSummary renders a summary, falling back to raw markdown when the
// renderer fails.
func RenderSummary(summary Summary, opts RenderOptions) string {
	markdown := Markdown(summary)
	out, err := Render(markdown, opts)
	if err != nil {
		return markdown
	}
	return out
}
