package question

const (
	// QuestionCount is the number of questions in a bank.
	QuestionCount = 14
	// OptionCount is the number of answer options per question.
	OptionCount = 5
)

// File defines the question bank schema loaded from YAML or JSON.
type File struct {
	Version   int        `json:"version" yaml:"version"`
	Stem      string     `json:"stem" yaml:"stem"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single prompt with options ordered from lowest to highest
// stress contribution, so an option's index is its score.
type Question struct {
	ID      int      `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
}

// Bank is an immutable, ordered set of questions.
type Bank struct {
	stem      string
	questions []Question
	byID      map[int]int
}

// newBank indexes a normalized file.
func newBank(file File) Bank {
	questions := make([]Question, len(file.Questions))
	byID := make(map[int]int, len(file.Questions))
	for i, q := range file.Questions {
		q.Options = append([]string(nil), q.Options...)
		questions[i] = q
		byID[q.ID] = i
	}
	return Bank{stem: file.Stem, questions: questions, byID: byID}
}

// Stem returns the lead-in shown above every question.
func (b Bank) Stem() string {
	return b.stem
}

// Len returns the number of questions.
func (b Bank) Len() int {
	return len(b.questions)
}

// At returns the question at a 0-based position.
func (b Bank) At(index int) (Question, bool) {
	if index < 0 || index >= len(b.questions) {
		return Question{}, false
	}
	return b.questions[index].clone(), true
}

// ByID returns the question with the given id.
func (b Bank) ByID(id int) (Question, bool) {
	index, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[index].clone(), true
}

// IDs returns the question ids in bank order.
func (b Bank) IDs() []int {
	ids := make([]int, len(b.questions))
	for i, q := range b.questions {
		ids[i] = q.ID
	}
	return ids
}

// Questions returns a copy of every question in bank order.
func (b Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// File returns the bank as a document that Parse accepts.
func (b Bank) File() File {
	return File{Version: 1, Stem: b.stem, Questions: b.Questions()}
}

func (q Question) clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}
