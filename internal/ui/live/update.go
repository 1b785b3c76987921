package live

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"itsss/internal/flow"
	"itsss/internal/question"
)

// handleKey maps a key press to a flow action for the current screen.
func handleKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Dismiss) {
		m.state = m.machine.DismissNotice(m.state)
		return m, nil
	}
	switch m.state.Step {
	case flow.StepIntro:
		if key.Matches(msg, m.keys.Start) {
			return m.apply(m.machine.Start(m.state))
		}
	case flow.StepQuestions:
		return handleQuestionKey(m, msg)
	case flow.StepResults:
		if key.Matches(msg, m.keys.Restart) {
			return m.apply(m.machine.Restart(m.state))
		}
	}
	return m, nil
}

// handleQuestionKey handles answering and navigation on a question.
func handleQuestionKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Busy() {
		return m, nil
	}
	if key.Matches(msg, m.keys.Options) {
		if option, ok := optionIndex(msg.String()); ok {
			m.cursor = option
			return m.apply(m.machine.Select(m.state, option))
		}
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < question.OptionCount-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Choose):
		return m.apply(m.machine.Select(m.state, m.cursor))
	case key.Matches(msg, m.keys.Back):
		return m.apply(m.machine.Back(m.state))
	}
	return m, nil
}

// bindings returns the help entries for the current screen.
func (m Model) bindings() []key.Binding {
	var bindings []key.Binding
	switch m.state.Step {
	case flow.StepIntro:
		bindings = append(bindings, m.keys.Start)
	case flow.StepQuestions:
		bindings = append(bindings, m.keys.Options, m.keys.Up, m.keys.Down, m.keys.Choose)
		if m.state.Index > 0 {
			bindings = append(bindings, m.keys.Back)
		}
	case flow.StepResults:
		bindings = append(bindings, m.keys.Restart)
	}
	if m.state.Notice != nil {
		bindings = append(bindings, m.keys.Dismiss)
	}
	return append(bindings, m.keys.Quit)
}
