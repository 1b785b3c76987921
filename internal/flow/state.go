package flow

import (
	"time"

	"itsss/internal/scoring"
)

// Step identifies the screen the assessment is on.
type Step int

const (
	// StepIntro is the welcome screen.
	StepIntro Step = iota
	// StepQuestions shows one question at a time.
	StepQuestions
	// StepResults shows the score and recommendations.
	StepResults
)

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepQuestions:
		return "questions"
	case StepResults:
		return "results"
	default:
		return "unknown"
	}
}

// PendingKind identifies a delayed transition.
type PendingKind int

const (
	// PendingEnterQuestions moves from the intro to the first question.
	PendingEnterQuestions PendingKind = iota + 1
	// PendingAdvance moves past the question that was just answered.
	PendingAdvance
	// PendingScore scores the completed answer set.
	PendingScore
	// PendingShowResults reveals the results screen.
	PendingShowResults
	// PendingReset returns to a fresh intro screen.
	PendingReset
)

// String returns the pending kind name.
func (k PendingKind) String() string {
	switch k {
	case PendingEnterQuestions:
		return "enter-questions"
	case PendingAdvance:
		return "advance"
	case PendingScore:
		return "score"
	case PendingShowResults:
		return "show-results"
	case PendingReset:
		return "reset"
	default:
		return "none"
	}
}

// Pending is a transition the host must deliver with Machine.Fire once Delay
// has elapsed. Seq ties the delivery to this exact request.
type Pending struct {
	Seq   uint64
	Kind  PendingKind
	Delay time.Duration
}

// NoticeKind classifies a user-visible notice.
type NoticeKind int

const (
	// NoticeIncomplete reports unanswered questions at scoring time.
	NoticeIncomplete NoticeKind = iota + 1
	// NoticeCalculationError reports an answer set that could not be scored.
	NoticeCalculationError
)

// Notice is a single-shot message for the user.
type Notice struct {
	Kind        NoticeKind
	Title       string
	Description string
}

// State is the transient assessment session. Values are replaced, never
// shared: every Machine method returns a new State.
type State struct {
	SessionID       string
	Step            Step
	Index           int
	Answers         scoring.AnswerSet
	Score           *int
	Category        *scoring.Category
	Recommendations []string
	Loading         bool
	Transitioning   bool
	// Highlight is the option shown as selected, or -1.
	Highlight int
	Notice    *Notice
	Pending   *Pending

	seq uint64
}

// Busy reports whether a delayed transition is outstanding.
func (s State) Busy() bool {
	return s.Pending != nil
}

// Progress returns the completion percentage shown in the progress bar.
func Progress(s State) int {
	switch s.Step {
	case StepIntro:
		return 0
	case StepResults:
		return 100
	}
	total := s.Answers.Len()
	if total == 0 {
		return 0
	}
	return (s.Index + 1) * 100 / total
}
