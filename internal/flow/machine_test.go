package flow

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"itsss/internal/question"
	"itsss/internal/scoring"
)

func newTestMachine(t *testing.T, timings Timings) (*Machine, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	counter := 0
	machine := New(question.Default(), Options{
		Timings: timings,
		Logger:  zap.New(core),
		NewID: func() string {
			counter++
			return fmt.Sprintf("session-%d", counter)
		},
	})
	return machine, logs
}

// answerAll walks from the intro through every question, selecting values[i].
func answerAll(t *testing.T, m *Machine, values []int) State {
	t.Helper()
	state := m.Drain(m.Start(m.Initial()))
	require.Equal(t, StepQuestions, state.Step)
	for i, value := range values {
		require.Equal(t, i, state.Index)
		state = m.Select(state, value)
		require.NotNil(t, state.Pending, "select %d should schedule a transition", i)
		state = m.Drain(state)
	}
	return state
}

func TestInitialState(t *testing.T) {
	m, _ := newTestMachine(t, Timings{})
	state := m.Initial()
	assert.Equal(t, StepIntro, state.Step)
	assert.Equal(t, "session-1", state.SessionID)
	assert.Equal(t, question.QuestionCount, state.Answers.Len())
	assert.Equal(t, 0, state.Answers.Answered())
	assert.Equal(t, -1, state.Highlight)
	assert.Nil(t, state.Score)
	assert.Nil(t, state.Category)
	assert.Empty(t, state.Recommendations)
	assert.Equal(t, 0, Progress(state))
}

func TestStartSchedulesTransition(t *testing.T) {
	m, _ := newTestMachine(t, DefaultTimings())
	state := m.Start(m.Initial())
	require.NotNil(t, state.Pending)
	assert.Equal(t, PendingEnterQuestions, state.Pending.Kind)
	assert.Equal(t, 400*time.Millisecond, state.Pending.Delay)
	assert.True(t, state.Transitioning)
	assert.Equal(t, StepIntro, state.Step)

	again := m.Start(state)
	assert.Equal(t, state.Pending.Seq, again.Pending.Seq, "second start must be ignored while busy")

	state = m.Fire(state, state.Pending.Seq)
	assert.Equal(t, StepQuestions, state.Step)
	assert.Equal(t, 0, state.Index)
	assert.False(t, state.Transitioning)
	assert.Nil(t, state.Pending)
	assert.Equal(t, 7, Progress(state))
}

func TestSelectRecordsAnswerBeforeAdvancing(t *testing.T) {
	m, _ := newTestMachine(t, DefaultTimings())
	state := m.Drain(m.Start(m.Initial()))
	state = m.Select(state, 3)
	value, ok := state.Answers.Get(0)
	require.True(t, ok)
	assert.Equal(t, 3, value)
	assert.Equal(t, 3, state.Highlight)
	assert.Equal(t, 0, state.Index)
	require.NotNil(t, state.Pending)
	assert.Equal(t, PendingAdvance, state.Pending.Kind)
	assert.Equal(t, 300*time.Millisecond, state.Pending.Delay)

	blocked := m.Select(state, 1)
	value, _ = blocked.Answers.Get(0)
	assert.Equal(t, 3, value, "selection during a pending advance must be ignored")

	state = m.Fire(state, state.Pending.Seq)
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, -1, state.Highlight)
}

func TestSelectRejectsInvalidOption(t *testing.T) {
	m, _ := newTestMachine(t, Timings{})
	state := m.Drain(m.Start(m.Initial()))
	next := m.Select(state, scoring.MaxAnswer+1)
	assert.Nil(t, next.Pending)
	assert.Equal(t, 0, next.Answers.Answered())
}

func TestProgressPerQuestion(t *testing.T) {
	m, _ := newTestMachine(t, Timings{})
	state := m.Drain(m.Start(m.Initial()))
	for i := 0; i < question.QuestionCount; i++ {
		require.Equal(t, i, state.Index)
		assert.Equal(t, (i+1)*100/question.QuestionCount, Progress(state), "index %d", i)
		if i < question.QuestionCount-1 {
			state = m.Drain(m.Select(state, 0))
		}
	}
	assert.Equal(t, 100, Progress(state))
}

func TestCompleteAssessmentShowsResults(t *testing.T) {
	m, logs := newTestMachine(t, DefaultTimings())
	values := []int{4, 3, 2, 1, 0, 4, 3, 2, 1, 0, 4, 3, 2, 1}
	state := m.Drain(m.Start(m.Initial()))
	for i, value := range values[:len(values)-1] {
		state = m.Select(state, value)
		state = m.Fire(state, state.Pending.Seq)
		require.Equal(t, i+1, state.Index)
	}

	state = m.Select(state, values[len(values)-1])
	state = m.Fire(state, state.Pending.Seq)
	assert.True(t, state.Loading)
	require.NotNil(t, state.Pending)
	assert.Equal(t, PendingScore, state.Pending.Kind)
	assert.Equal(t, time.Second, state.Pending.Delay)

	state = m.Fire(state, state.Pending.Seq)
	require.NotNil(t, state.Pending)
	assert.Equal(t, PendingShowResults, state.Pending.Kind)
	require.NotNil(t, state.Score)

	state = m.Fire(state, state.Pending.Seq)
	assert.Equal(t, StepResults, state.Step)
	assert.False(t, state.Loading)
	assert.Equal(t, 100, Progress(state))

	want := scoring.Calculate(state.Answers)
	require.True(t, want.OK())
	assert.Equal(t, want.Score, *state.Score)
	assert.Equal(t, 30, *state.Score)
	assert.Equal(t, scoring.High, *state.Category)
	recommendations, err := scoring.Recommendations(scoring.High)
	require.NoError(t, err)
	assert.Equal(t, recommendations, state.Recommendations)
	assert.Equal(t, 1, logs.FilterMessage("assessment scored").Len())
}

func TestEveryFinalOptionReachesResults(t *testing.T) {
	for option := scoring.MinAnswer; option <= scoring.MaxAnswer; option++ {
		m, _ := newTestMachine(t, Timings{})
		values := make([]int, question.QuestionCount)
		values[len(values)-1] = option
		state := answerAll(t, m, values)
		require.Equal(t, StepResults, state.Step, "option %d", option)
		assert.Equal(t, option, *state.Score)
	}
}

func TestBackKeepsRecordedAnswer(t *testing.T) {
	m, _ := newTestMachine(t, Timings{})
	state := m.Drain(m.Start(m.Initial()))
	assert.Equal(t, 0, m.Back(state).Index, "back on the first question is ignored")

	state = m.Drain(m.Select(state, 2))
	state = m.Select(state, 4)
	state = m.Drain(state)
	require.Equal(t, 2, state.Index)

	state = m.Back(state)
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, -1, state.Highlight)
	value, ok := state.Answers.Get(1)
	require.True(t, ok)
	assert.Equal(t, 4, value)

	state = m.Drain(m.Select(state, 1))
	value, _ = state.Answers.Get(1)
	assert.Equal(t, 1, value)
	assert.Equal(t, 2, state.Index)
}

func TestStaleFireIsDropped(t *testing.T) {
	m, logs := newTestMachine(t, DefaultTimings())
	state := m.Start(m.Initial())
	seq := state.Pending.Seq
	state = m.Fire(state, seq)
	again := m.Fire(state, seq)
	assert.Equal(t, state.Step, again.Step)
	assert.Equal(t, state.Index, again.Index)
	assert.Equal(t, 1, logs.FilterMessage("stale transition dropped").Len())
}

func TestRestartResetsSession(t *testing.T) {
	m, _ := newTestMachine(t, Timings{})
	state := answerAll(t, m, make([]int, question.QuestionCount))
	require.Equal(t, StepResults, state.Step)
	previousSeq := state.seq

	state = m.Restart(state)
	require.NotNil(t, state.Pending)
	assert.Equal(t, PendingReset, state.Pending.Kind)
	state = m.Drain(state)

	assert.Equal(t, StepIntro, state.Step)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 0, state.Answers.Answered())
	assert.Nil(t, state.Score)
	assert.Nil(t, state.Category)
	assert.Empty(t, state.Recommendations)
	assert.Equal(t, "session-2", state.SessionID)
	assert.Greater(t, state.seq, previousSeq)
	assert.Equal(t, scoring.StatusIncomplete, scoring.Calculate(state.Answers).Status)
}

func TestRestartOnlyFromResults(t *testing.T) {
	m, _ := newTestMachine(t, Timings{})
	state := m.Initial()
	assert.Nil(t, m.Restart(state).Pending)
}

func TestIncompleteAnswersRaiseNoticeOnce(t *testing.T) {
	m, logs := newTestMachine(t, Timings{})
	state := m.Drain(m.Start(m.Initial()))
	state.Index = question.QuestionCount - 1

	state = m.Drain(m.Select(state, 2))
	assert.Equal(t, StepQuestions, state.Step)
	assert.Equal(t, question.QuestionCount-1, state.Index)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Score)
	require.NotNil(t, state.Notice)
	assert.Equal(t, NoticeIncomplete, state.Notice.Kind)
	assert.Equal(t, "Incomplete Assessment", state.Notice.Title)
	assert.Equal(t, 1, logs.FilterMessage("assessment incomplete").Len())

	state = m.DismissNotice(state)
	assert.Nil(t, state.Notice)
}

func TestCalculationFaultRaisesNotice(t *testing.T) {
	m, logs := newTestMachine(t, Timings{})
	state := m.Drain(m.Start(m.Initial()))
	entries := state.Answers.Entries()
	for i := range entries {
		entries[i].Set = true
	}
	entries[4].Value = 11
	state.Answers = scoring.FromEntries(entries)
	state.Index = question.QuestionCount - 1

	state = m.Drain(m.Select(state, 0))
	require.NotNil(t, state.Notice)
	assert.Equal(t, NoticeCalculationError, state.Notice.Kind)
	assert.Equal(t, "Calculation Error", state.Notice.Title)
	assert.Nil(t, state.Score)
	assert.Equal(t, StepQuestions, state.Step)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestQuestionFollowsIndex(t *testing.T) {
	m, _ := newTestMachine(t, Timings{})
	state := m.Initial()
	_, ok := m.Question(state)
	assert.False(t, ok, "no question on the intro screen")

	state = m.Drain(m.Select(m.Drain(m.Start(state)), 0))
	q, ok := m.Question(state)
	require.True(t, ok)
	assert.Equal(t, 2, q.ID)
}
