package scoring

import (
	"errors"
	"fmt"
)

const (
	// MinAnswer is the lowest option ordinal.
	MinAnswer = 0
	// MaxAnswer is the highest option ordinal.
	MaxAnswer = 4
)

var (
	// ErrIndexOutOfRange indicates a position outside the answer set.
	ErrIndexOutOfRange = errors.New("answer index out of range")
	// ErrInvalidAnswer indicates an ordinal outside [MinAnswer, MaxAnswer].
	ErrInvalidAnswer = errors.New("answer out of range")
)

// Answer is the response recorded for one question.
type Answer struct {
	QuestionID int
	Value      int
	Set        bool
}

// AnswerSet holds exactly one Answer per question, in question order.
type AnswerSet struct {
	entries []Answer
}

// NewAnswerSet creates an all-unset answer set for the given question ids.
func NewAnswerSet(questionIDs []int) AnswerSet {
	entries := make([]Answer, len(questionIDs))
	for i, id := range questionIDs {
		entries[i] = Answer{QuestionID: id}
	}
	return AnswerSet{entries: entries}
}

// Len returns the number of entries.
func (s AnswerSet) Len() int {
	return len(s.entries)
}

// Set records value for the question at index. The receiver's entries are
// copied first so earlier snapshots of the set are never changed.
func (s *AnswerSet) Set(index, value int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("set answer %d: %w", index, ErrIndexOutOfRange)
	}
	if value < MinAnswer || value > MaxAnswer {
		return fmt.Errorf("set answer %d to %d: %w", index, value, ErrInvalidAnswer)
	}
	entries := append([]Answer(nil), s.entries...)
	entries[index].Value = value
	entries[index].Set = true
	s.entries = entries
	return nil
}

// Get returns the value at index and whether it has been answered.
func (s AnswerSet) Get(index int) (int, bool) {
	if index < 0 || index >= len(s.entries) {
		return 0, false
	}
	entry := s.entries[index]
	return entry.Value, entry.Set
}

// Complete reports whether every question has an answer.
func (s AnswerSet) Complete() bool {
	for _, entry := range s.entries {
		if !entry.Set {
			return false
		}
	}
	return true
}

// Answered returns the number of answered questions.
func (s AnswerSet) Answered() int {
	count := 0
	for _, entry := range s.entries {
		if entry.Set {
			count++
		}
	}
	return count
}

// Entries returns a copy of the entries in question order.
func (s AnswerSet) Entries() []Answer {
	return append([]Answer(nil), s.entries...)
}

// FromEntries builds a set from raw entries without validating values.
// Calculate reports out-of-range values as a fault.
func FromEntries(entries []Answer) AnswerSet {
	return AnswerSet{entries: append([]Answer(nil), entries...)}
}

// Values returns the recorded ordinals in question order, with -1 for
// unanswered questions.
func (s AnswerSet) Values() []int {
	values := make([]int, len(s.entries))
	for i, entry := range s.entries {
		values[i] = -1
		if entry.Set {
			values[i] = entry.Value
		}
	}
	return values
}
