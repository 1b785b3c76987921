package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"itsss/internal/flow"
)

const (
	introText = "This assessment will help you understand your current stress levels and provide personalized recommendations."
	howText   = "Answer 14 simple questions about your experiences in the last month. Your responses are completely private and not stored anywhere."
)

// renderTitle renders the application heading.
func renderTitle(noColor bool) string {
	return emphasize("ITSSS Stress Calculator", noColor)
}

// renderBody renders the screen for the current step.
func renderBody(m Model) string {
	var body string
	switch {
	case m.state.Loading:
		body = renderLoading(m)
	case m.state.Step == flow.StepIntro:
		body = renderIntro(m)
	case m.state.Step == flow.StepQuestions:
		body = renderQuestion(m)
	case m.state.Step == flow.StepResults:
		body = renderResultsScreen(m)
	}
	if m.state.Transitioning && !m.noColor {
		body = lipgloss.NewStyle().Faint(true).Render(body)
	}
	return body
}

// renderIntro renders the welcome screen.
func renderIntro(m Model) string {
	lines := []string{
		wrap(introText, m.width),
		"",
		stylize("How it works", m.noColor, accentColor),
		wrap(howText, m.width),
		"",
		"Press enter to begin the assessment.",
	}
	return strings.Join(lines, "\n")
}

// renderQuestion renders the current question and its options.
func renderQuestion(m Model) string {
	q, ok := m.machine.Question(m.state)
	if !ok {
		return ""
	}
	bank := m.machine.Bank()
	recorded, answered := m.state.Answers.Get(m.state.Index)
	lines := []string{
		emphasize(formatQuestionCounter(m.state.Index, bank.Len()), m.noColor),
		stylize(bank.Stem(), m.noColor, mutedColor),
		"",
		wrap(q.Text, m.width),
		"",
	}
	for i, option := range q.Options {
		line := formatOption(i, option, i == m.cursor, answered && recorded == i)
		if i == m.state.Highlight {
			line = emphasize(line, m.noColor)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderLoading renders the scoring spinner.
func renderLoading(m Model) string {
	return m.spinner.View() + " Analyzing your responses..."
}

// renderResultsScreen renders the score, category and recommendations.
func renderResultsScreen(m Model) string {
	header := ""
	if m.state.Category != nil && m.state.Score != nil {
		category := *m.state.Category
		header = stylize(category.Label(), m.noColor, categoryColor(category)) + "\n"
	}
	return header + strings.TrimRight(m.results, "\n") + "\n\nPress r to take the assessment again."
}

// renderNotice renders the current notice as a toast line.
func renderNotice(notice *flow.Notice, noColor bool) string {
	if notice == nil {
		return ""
	}
	text := notice.Title + ": " + notice.Description
	if noColor {
		return "! " + text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(errorColor).Render("! " + text)
}
