package live

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"itsss/internal/flow"
	"itsss/internal/report"
)

// Model renders the assessment as a full-screen Bubble Tea program.
type Model struct {
	machine  *flow.Machine
	state    flow.State
	keys     keyMap
	help     help.Model
	progress progress.Model
	spinner  spinner.Model
	cursor   int
	width    int
	noColor  bool
	results  string
	quitting bool
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a model on the intro screen.
func NewModel(machine *flow.Machine, opts Options) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(defaultWidth))
	if opts.NoColor {
		bar = progress.New(progress.WithSolidFill("7"), progress.WithoutPercentage(), progress.WithWidth(defaultWidth))
	}
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !opts.NoColor {
		spin.Style = lipgloss.NewStyle().Foreground(accentColor)
	}
	return Model{
		machine:  machine,
		state:    machine.Initial(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
		spinner:  spin,
		width:    defaultWidth,
		noColor:  opts.NoColor,
	}
}

// State returns the current assessment state.
func (m Model) State() flow.State {
	return m.state
}

// Init waits for input; nothing runs until the user acts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses, window sizes and transition timers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = clampWidth(typed.Width)
		m.progress.Width = m.width
		m.help.Width = m.width
		m.results = m.renderResults()
		return m, nil
	case tea.KeyMsg:
		return handleKey(m, typed)
	case fireMsg:
		return m.apply(m.machine.Fire(m.state, typed.seq))
	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	sections := []string{
		renderTitle(m.noColor),
		m.progress.ViewAs(float64(flow.Progress(m.state)) / 100),
		"",
		renderBody(m),
	}
	if notice := renderNotice(m.state.Notice, m.noColor); notice != "" {
		sections = append(sections, "", notice)
	}
	sections = append(sections, "", m.help.ShortHelpView(m.bindings()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// fireMsg delivers a pending transition after its delay.
type fireMsg struct {
	seq uint64
}

// apply installs the next state and returns the commands it needs: a timer
// for a newly scheduled transition and a spinner tick when loading begins.
func (m Model) apply(next flow.State) (Model, tea.Cmd) {
	prev := m.state
	m.state = next
	if next.Step == flow.StepQuestions && (prev.Step != next.Step || prev.Index != next.Index) {
		m.cursor = 0
		if value, ok := next.Answers.Get(next.Index); ok {
			m.cursor = value
		}
	}
	if next.Step == flow.StepResults && prev.Step != flow.StepResults {
		m.results = m.renderResults()
	}

	var cmds []tea.Cmd
	if next.Pending != nil && (prev.Pending == nil || prev.Pending.Seq != next.Pending.Seq) {
		cmds = append(cmds, fireAfter(*next.Pending))
	}
	if next.Loading && !prev.Loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// renderResults renders the results report for the current width.
func (m Model) renderResults() string {
	summary, ok := report.FromState(m.state)
	if !ok {
		return ""
	}
	return report.RenderSummary(summary, report.RenderOptions{Width: m.width, NoColor: m.noColor})
}

// fireAfter emits a fireMsg once the pending delay has elapsed.
func fireAfter(p flow.Pending) tea.Cmd {
	seq := p.Seq
	if p.Delay <= 0 {
		return func() tea.Msg { return fireMsg{seq: seq} }
	}
	return tea.Tick(p.Delay, func(time.Time) tea.Msg { return fireMsg{seq: seq} })
}
