package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeFile trims whitespace and validates a question bank file.
func NormalizeFile(file File) (File, error) {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	file.Stem = normalizeText(file.Stem)
	if file.Stem == "" {
		collector.add("stem", "is required")
	}
	if len(file.Questions) != QuestionCount {
		collector.add("questions", fmt.Sprintf("must include exactly %d entries, got %d", QuestionCount, len(file.Questions)))
	}

	seenIDs := map[int]struct{}{}
	for i, question := range file.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		switch {
		case question.ID < 1 || question.ID > QuestionCount:
			collector.add(prefix+".id", fmt.Sprintf("must be between 1 and %d", QuestionCount))
		default:
			if _, exists := seenIDs[question.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %d", question.ID))
			}
			seenIDs[question.ID] = struct{}{}
		}

		question.Text = normalizeText(question.Text)
		if question.Text == "" {
			collector.add(prefix+".text", "is required")
		}

		question.Options = normalizeStringSlice(question.Options)
		if len(question.Options) != OptionCount {
			collector.add(prefix+".options", fmt.Sprintf("must include exactly %d entries", OptionCount))
		}
		for optionIndex, option := range question.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}
		file.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return File{}, err
	}
	return file, nil
}
