package flow

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"itsss/internal/question"
	"itsss/internal/scoring"
)

// Timings holds the cosmetic delays between screens.
type Timings struct {
	Transition time.Duration
	Advance    time.Duration
	Processing time.Duration
}

// DefaultTimings returns the standard animation delays.
func DefaultTimings() Timings {
	return Timings{
		Transition: 400 * time.Millisecond,
		Advance:    300 * time.Millisecond,
		Processing: time.Second,
	}
}

// Options configures a Machine.
type Options struct {
	Timings Timings
	Logger  *zap.Logger
	// NewID generates session ids; defaults to random UUIDs.
	NewID func() string
}

// Machine drives an assessment through intro, questions and results.
type Machine struct {
	bank    question.Bank
	timings Timings
	logger  *zap.Logger
	newID   func() string
}

// New constructs a Machine over a question bank.
func New(bank question.Bank, opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Machine{
		bank:    bank,
		timings: opts.Timings,
		logger:  logger,
		newID:   newID,
	}
}

// Bank returns the question bank the machine walks.
func (m *Machine) Bank() question.Bank {
	return m.bank
}

// Initial returns a fresh session on the intro screen.
func (m *Machine) Initial() State {
	state := State{
		SessionID: m.newID(),
		Step:      StepIntro,
		Answers:   scoring.NewAnswerSet(m.bank.IDs()),
		Highlight: -1,
	}
	m.logger.Debug("session started", zap.String("session", state.SessionID))
	return state
}

// Question returns the question at the current position.
func (m *Machine) Question(s State) (question.Question, bool) {
	if s.Step != StepQuestions {
		return question.Question{}, false
	}
	return m.bank.At(s.Index)
}

// Start leaves the intro screen.
func (m *Machine) Start(s State) State {
	if s.Step != StepIntro || s.Busy() {
		return m.ignored(s, "start")
	}
	s.Transitioning = true
	return m.schedule(s, PendingEnterQuestions, m.timings.Transition)
}

// Select records option for the current question and queues the advance.
func (m *Machine) Select(s State, option int) State {
	if s.Step != StepQuestions || s.Busy() {
		return m.ignored(s, "select")
	}
	if err := s.Answers.Set(s.Index, option); err != nil {
		m.logger.Debug("select rejected", zap.String("session", s.SessionID), zap.Error(err))
		return s
	}
	s.Highlight = option
	s.Notice = nil
	return m.schedule(s, PendingAdvance, m.timings.Advance)
}

// Back returns to the previous question without clearing its answer.
func (m *Machine) Back(s State) State {
	if s.Step != StepQuestions || s.Busy() || s.Index == 0 {
		return m.ignored(s, "back")
	}
	s.Index--
	s.Highlight = -1
	s.Notice = nil
	m.logTransition(s, "back")
	return s
}

// Restart leaves the results screen for a fresh intro.
func (m *Machine) Restart(s State) State {
	if s.Step != StepResults || s.Busy() {
		return m.ignored(s, "restart")
	}
	s.Transitioning = true
	return m.schedule(s, PendingReset, m.timings.Transition)
}

// DismissNotice clears the current notice.
func (m *Machine) DismissNotice(s State) State {
	s.Notice = nil
	return s
}

// Fire applies the pending transition identified by seq. Deliveries for a
// transition that is no longer pending are dropped.
func (m *Machine) Fire(s State, seq uint64) State {
	if s.Pending == nil || s.Pending.Seq != seq {
		m.logger.Debug("stale transition dropped", zap.String("session", s.SessionID), zap.Uint64("seq", seq))
		return s
	}
	kind := s.Pending.Kind
	s.Pending = nil
	switch kind {
	case PendingEnterQuestions:
		s.Step = StepQuestions
		s.Index = 0
		s.Transitioning = false
	case PendingAdvance:
		if s.Index < s.Answers.Len()-1 {
			s.Index++
			s.Highlight = -1
			break
		}
		s.Loading = true
		return m.schedule(s, PendingScore, m.timings.Processing)
	case PendingScore:
		return m.complete(s)
	case PendingShowResults:
		s.Step = StepResults
		s.Loading = false
		s.Transitioning = false
	case PendingReset:
		return m.reset(s)
	}
	m.logTransition(s, kind.String())
	return s
}

// Drain fires pending transitions until none remain, ignoring delays.
func (m *Machine) Drain(s State) State {
	for s.Pending != nil {
		s = m.Fire(s, s.Pending.Seq)
	}
	return s
}

// complete scores the answers and either queues the results screen or
// surfaces a notice and stays on the current question.
func (m *Machine) complete(s State) State {
	result := scoring.Calculate(s.Answers)
	switch result.Status {
	case scoring.StatusIncomplete:
		s.Loading = false
		s.Notice = &Notice{
			Kind:        NoticeIncomplete,
			Title:       "Incomplete Assessment",
			Description: "Please answer all questions to get accurate results.",
		}
		m.logger.Warn("assessment incomplete",
			zap.String("session", s.SessionID),
			zap.Int("question", result.Question),
			zap.Int("answered", s.Answers.Answered()))
		return s
	case scoring.StatusFault:
		s.Loading = false
		s.Notice = calculationErrorNotice()
		m.logger.Error("score calculation failed",
			zap.String("session", s.SessionID),
			zap.Int("question", result.Question))
		return s
	}

	category := scoring.CategoryForScore(result.Score)
	recommendations, err := scoring.Recommendations(category)
	if err != nil {
		s.Loading = false
		s.Notice = calculationErrorNotice()
		m.logger.Error("recommendations unavailable", zap.String("session", s.SessionID), zap.Error(err))
		return s
	}
	score := result.Score
	s.Score = &score
	s.Category = &category
	s.Recommendations = recommendations
	s.Transitioning = true
	m.logger.Info("assessment scored",
		zap.String("session", s.SessionID),
		zap.Stringer("category", category))
	return m.schedule(s, PendingShowResults, m.timings.Transition)
}

// reset discards the session and starts a new one. The sequence counter
// carries over so deliveries for the old session can never match.
func (m *Machine) reset(s State) State {
	state := m.Initial()
	state.seq = s.seq
	m.logTransition(state, "reset")
	return state
}

// schedule attaches a new pending transition to the state.
func (m *Machine) schedule(s State, kind PendingKind, delay time.Duration) State {
	s.seq++
	s.Pending = &Pending{Seq: s.seq, Kind: kind, Delay: delay}
	m.logger.Debug("transition scheduled",
		zap.String("session", s.SessionID),
		zap.Stringer("kind", kind),
		zap.Uint64("seq", s.seq),
		zap.Duration("delay", delay))
	return s
}

func (m *Machine) ignored(s State, action string) State {
	m.logger.Debug("action ignored",
		zap.String("session", s.SessionID),
		zap.String("action", action),
		zap.Stringer("step", s.Step),
		zap.Bool("busy", s.Busy()))
	return s
}

func (m *Machine) logTransition(s State, action string) {
	m.logger.Debug("transition",
		zap.String("session", s.SessionID),
		zap.String("action", action),
		zap.Stringer("step", s.Step),
		zap.Int("index", s.Index))
}

func calculationErrorNotice() *Notice {
	return &Notice{
		Kind:        NoticeCalculationError,
		Title:       "Calculation Error",
		Description: "There was a problem calculating your stress level. Please try again.",
	}
}
