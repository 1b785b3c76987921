package scoring

import "fmt"

var commonRecommendations = []string{
	"Practice deep breathing for 5 minutes daily to activate your parasympathetic nervous system.",
	"Stay hydrated and maintain a balanced diet rich in fruits, vegetables, and whole grains.",
	"Limit caffeine and alcohol consumption which can exacerbate stress.",
}

var categoryRecommendations = map[Category][]string{
	Low: {
		"Continue your current stress management practices.",
		"Consider starting a gratitude journal to maintain positive outlook.",
		"Schedule regular physical activity to maintain your well-being.",
	},
	Moderate: {
		"Incorporate 15-20 minutes of meditation or mindfulness practice daily.",
		"Establish clear boundaries between work and personal life.",
		"Engage in regular physical activity like walking, yoga, or swimming.",
		"Consider time management techniques to better organize your tasks.",
	},
	High: {
		"Prioritize sleep by establishing a consistent sleep schedule and bedtime routine.",
		"Incorporate stress-reduction techniques like progressive muscle relaxation.",
		"Consider talking to a trusted friend, family member, or counselor about your stress.",
		"Break large tasks into smaller, manageable steps to reduce feeling overwhelmed.",
		"Schedule regular breaks throughout your day to reset and recharge.",
	},
	Severe: {
		"Consider speaking with a healthcare professional or therapist for personalized guidance.",
		"Identify and reduce major stressors in your life where possible.",
		"Practice self-compassion and avoid self-criticism during this challenging time.",
		"Establish a daily routine that includes dedicated relaxation time.",
		"Implement grounding techniques for moments of acute stress or anxiety.",
		"Temporarily reduce commitments to create space for recovery.",
	},
}

// CommonRecommendations returns the items appended to every category.
func CommonRecommendations() []string {
	return append([]string(nil), commonRecommendations...)
}

// Recommendations returns the category-specific advice followed by the
// common items. Each call returns a new slice.
func Recommendations(category Category) ([]string, error) {
	specific, ok := categoryRecommendations[category]
	if !ok {
		return nil, fmt.Errorf("recommendations for %s: %w", category, ErrUnknownCategory)
	}
	out := make([]string, 0, len(specific)+len(commonRecommendations))
	out = append(out, specific...)
	out = append(out, commonRecommendations...)
	return out, nil
}
