package report

import (
	"itsss/internal/flow"
	"itsss/internal/scoring"
)

// Summary is the outcome of a completed assessment.
type Summary struct {
	Score           int              `json:"score"`
	MaxScore        int              `json:"max_score"`
	Category        scoring.Category `json:"category"`
	Label           string           `json:"label"`
	Description     string           `json:"description"`
	Recommendations []string         `json:"recommendations"`
}

// New builds a summary for a score, resolving its category and advice.
func New(score int) (Summary, error) {
	category := scoring.CategoryForScore(score)
	recommendations, err := scoring.Recommendations(category)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Score:           score,
		MaxScore:        scoring.MaxScore,
		Category:        category,
		Label:           category.Label(),
		Description:     category.Summary(),
		Recommendations: recommendations,
	}, nil
}

// FromState extracts the summary of a session that has been scored.
func FromState(state flow.State) (Summary, bool) {
	if state.Score == nil || state.Category == nil {
		return Summary{}, false
	}
	category := *state.Category
	return Summary{
		Score:           *state.Score,
		MaxScore:        scoring.MaxScore,
		Category:        category,
		Label:           category.Label(),
		Description:     category.Summary(),
		Recommendations: append([]string(nil), state.Recommendations...),
	}, true
}
