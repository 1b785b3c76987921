package cli

import (
	"strings"

	"itsss/internal/question"
)

// loadBank returns the question bank at path, or the built-in one when path
// is empty. JSON is chosen by a .json extension, YAML otherwise.
func loadBank(path string) (question.Bank, error) {
	if strings.TrimSpace(path) == "" {
		return question.Default(), nil
	}
	return question.LoadFile(path)
}
