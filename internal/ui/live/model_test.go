package live

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"itsss/internal/flow"
	"itsss/internal/question"
)

func newTestModel() Model {
	machine := flow.New(question.Default(), flow.Options{Timings: flow.DefaultTimings()})
	return NewModel(machine, Options{NoColor: true})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

// settle delivers the pending transition, if any, as the timer would.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for m.State().Pending != nil {
		m, _ = send(t, m, fireMsg{seq: m.State().Pending.Seq})
	}
	return m
}

// TestIntroView verifies the welcome screen text.
func TestIntroView(t *testing.T) {
	view := newTestModel().View()
	for _, want := range []string{"ITSSS Stress Calculator", "How it works", "Answer 14 simple questions"} {
		if !strings.Contains(view, want) {
			t.Fatalf("intro view missing %q:\n%s", want, view)
		}
	}
}

// TestStartSchedulesTimer verifies enter queues the transition as a command.
func TestStartSchedulesTimer(t *testing.T) {
	m, cmd := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected timer command after start")
	}
	if m.State().Pending == nil || m.State().Pending.Kind != flow.PendingEnterQuestions {
		t.Fatalf("expected pending enter, got %+v", m.State().Pending)
	}
	m = settle(t, m)
	if !strings.Contains(m.View(), "Question 1 of 14") {
		t.Fatalf("expected first question, got:\n%s", m.View())
	}
}

// TestDigitKeysAnswerQuestions verifies answering every question reaches results.
func TestDigitKeysAnswerQuestions(t *testing.T) {
	m, _ := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m)
	for i := 0; i < question.QuestionCount; i++ {
		m, _ = send(t, m, runes("2"))
		if m.State().Highlight != 1 {
			t.Fatalf("question %d: expected highlight 1, got %d", i+1, m.State().Highlight)
		}
		m = settle(t, m)
	}
	state := m.State()
	if state.Step != flow.StepResults {
		t.Fatalf("expected results, got %s", state.Step)
	}
	if state.Score == nil {
		t.Fatalf("expected a score")
	}
	if *state.Score != 14 {
		t.Fatalf("expected score 14, got %d", *state.Score)
	}
	if !strings.Contains(m.View(), "Moderate Stress") {
		t.Fatalf("results view missing category:\n%s", m.View())
	}
}

// TestFirstOptionEverywhereIsLowStress verifies option order carries polarity.
func TestFirstOptionEverywhereIsLowStress(t *testing.T) {
	m, _ := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m)
	for i := 0; i < question.QuestionCount; i++ {
		m, _ = send(t, m, runes("1"))
		m = settle(t, m)
	}
	state := m.State()
	if state.Score == nil {
		t.Fatalf("expected a score")
	}
	if *state.Score != 0 {
		t.Fatalf("expected score 0, got %d", *state.Score)
	}
	if !strings.Contains(m.View(), "Low Stress") {
		t.Fatalf("results view missing category:\n%s", m.View())
	}
}

// TestCursorNavigation verifies arrow keys move the cursor and enter chooses it.
func TestCursorNavigation(t *testing.T) {
	m, _ := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if value, ok := m.State().Answers.Get(0); !ok || value != 1 {
		t.Fatalf("expected answer 1 recorded, got %d (%v)", value, ok)
	}
}

// TestBackRestoresCursor verifies returning to a question shows its answer.
func TestBackRestoresCursor(t *testing.T) {
	m, _ := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m)
	m, _ = send(t, m, runes("4"))
	m = settle(t, m)
	if m.State().Index != 1 || m.cursor != 0 {
		t.Fatalf("expected second question with cursor 0, got index %d cursor %d", m.State().Index, m.cursor)
	}
	m, _ = send(t, m, runes("b"))
	if m.State().Index != 0 {
		t.Fatalf("expected first question, got %d", m.State().Index)
	}
	if m.cursor != 3 {
		t.Fatalf("expected cursor on recorded answer, got %d", m.cursor)
	}
	if !strings.Contains(m.View(), "✓") {
		t.Fatalf("expected recorded answer marker:\n%s", m.View())
	}
}

// TestKeysIgnoredWhileBusy verifies input during a transition is dropped.
func TestKeysIgnoredWhileBusy(t *testing.T) {
	m, _ := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m)
	m, _ = send(t, m, runes("2"))
	seq := m.State().Pending.Seq
	m, cmd := send(t, m, runes("5"))
	if cmd != nil {
		t.Fatalf("expected no command while busy")
	}
	if m.State().Pending.Seq != seq {
		t.Fatalf("expected pending transition unchanged")
	}
	if value, _ := m.State().Answers.Get(0); value != 1 {
		t.Fatalf("expected first answer kept, got %d", value)
	}
}

// TestStaleFireIgnored verifies a timer for a superseded transition is dropped.
func TestStaleFireIgnored(t *testing.T) {
	m, _ := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})
	before := m.State()
	m, _ = send(t, m, fireMsg{seq: before.Pending.Seq + 10})
	if m.State().Step != flow.StepIntro || m.State().Pending == nil {
		t.Fatalf("stale fire should not change state")
	}
}

// TestRestartReturnsToIntro verifies restart resets the session.
func TestRestartReturnsToIntro(t *testing.T) {
	m, _ := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m)
	for i := 0; i < question.QuestionCount; i++ {
		m, _ = send(t, m, runes("3"))
		m = settle(t, m)
	}
	session := m.State().SessionID
	m, _ = send(t, m, runes("r"))
	m = settle(t, m)
	state := m.State()
	if state.Step != flow.StepIntro || state.Answers.Answered() != 0 || state.Score != nil {
		t.Fatalf("expected fresh intro, got %+v", state)
	}
	if state.SessionID == session {
		t.Fatalf("expected new session id")
	}
}

// TestQuitKey verifies q ends the program.
func TestQuitKey(t *testing.T) {
	m, cmd := send(t, newTestModel(), runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

// TestClampWidth verifies width bounds.
func TestClampWidth(t *testing.T) {
	cases := map[int]int{0: defaultWidth, 10: minWidth, 80: 76, 300: maxWidth}
	for input, want := range cases {
		if got := clampWidth(input); got != want {
			t.Fatalf("clampWidth(%d) = %d, want %d", input, got, want)
		}
	}
}
