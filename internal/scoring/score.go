package scoring

import (
	"errors"

	"itsss/internal/question"
)

// MaxScore is the highest possible total: every answer at MaxAnswer.
const MaxScore = 56

var (
	// ErrIncompleteAssessment indicates at least one question is unanswered.
	ErrIncompleteAssessment = errors.New("incomplete assessment")
	// ErrCalculation indicates the answer set could not be scored.
	ErrCalculation = errors.New("calculation error")
)

// Status tags the outcome of a score calculation.
type Status int

const (
	// StatusComplete means Score holds the total.
	StatusComplete Status = iota
	// StatusIncomplete means some answers were unset.
	StatusIncomplete
	// StatusFault means an answer held an impossible value.
	StatusFault
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusIncomplete:
		return "incomplete"
	case StatusFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Result is the tagged output of Calculate. Score is 0 unless Status is
// StatusComplete.
type Result struct {
	Status   Status
	Score    int
	Question int
}

// OK reports whether the result carries a score.
func (r Result) OK() bool {
	return r.Status == StatusComplete
}

// Err returns the sentinel error for a failed calculation, or nil.
func (r Result) Err() error {
	switch r.Status {
	case StatusComplete:
		return nil
	case StatusIncomplete:
		return ErrIncompleteAssessment
	default:
		return ErrCalculation
	}
}

// Category derives the stress category of a complete result.
func (r Result) Category() (Category, bool) {
	if !r.OK() {
		return Category{}, false
	}
	return CategoryForScore(r.Score), true
}

// Calculate sums the answer ordinals. Option order already encodes item
// polarity, so no item is inverted here. Question holds the id of the first
// offending entry when the result is not complete; a set that does not hold
// exactly one entry per question is a fault with Question 0.
func Calculate(set AnswerSet) Result {
	if len(set.entries) != question.QuestionCount {
		return Result{Status: StatusFault}
	}
	for _, entry := range set.entries {
		if !entry.Set {
			return Result{Status: StatusIncomplete, Question: entry.QuestionID}
		}
	}
	total := 0
	for _, entry := range set.entries {
		if entry.Value < MinAnswer || entry.Value > MaxAnswer {
			return Result{Status: StatusFault, Question: entry.QuestionID}
		}
		total += entry.Value
	}
	return Result{Status: StatusComplete, Score: total}
}
