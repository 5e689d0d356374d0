package quiz

// Type distinguishes the two question kinds a quiz can hold.
type Type string

const (
	// TypeMCQ is a four-option multiple-choice question.
	TypeMCQ Type = "MCQ"

	// TypeShortAnswer is a free-text question graded by keyword overlap.
	TypeShortAnswer Type = "Short Answer"
)

// Question is one generated quiz question. Choices and AnswerIndex are
// populated only for TypeMCQ; AnswerText and AnswerKeywords only for
// TypeShortAnswer.
type Question struct {
	// ID is deterministic within a pack, e.g. "mcq-1" or "short-2".
	ID string `json:"id"`

	// Type is the question kind.
	Type Type `json:"type"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"prompt"`

	// Context is the source sentence the question was built from.
	Context string `json:"context"`

	// Choices holds at most 4 options. Exactly one equals the
	// summarized form of Context.
	Choices []string `json:"choices,omitempty"`

	// AnswerIndex is the position of the correct choice after seeded
	// shuffling.
	AnswerIndex int `json:"answerIndex"`

	// AnswerText is the model answer for short-answer questions.
	AnswerText string `json:"answerText,omitempty"`

	// AnswerKeywords are up to 5 content words a good short answer
	// should mention.
	AnswerKeywords []string `json:"answerKeywords,omitempty"`

	// Explanation echoes the source material behind the answer.
	Explanation string `json:"explanation"`
}

// Quiz is an ordered set of generated questions.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// MCQCount returns the number of multiple-choice questions.
func (q Quiz) MCQCount() int {
	n := 0
	for _, question := range q.Questions {
		if question.Type == TypeMCQ {
			n++
		}
	}
	return n
}

// ShortCount returns the number of short-answer questions.
func (q Quiz) ShortCount() int {
	return len(q.Questions) - q.MCQCount()
}
