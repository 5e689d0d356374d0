package quiz

import "strings"

// Response is a learner's answer to a single question. ChoiceIndex is
// used for MCQs (-1 means unanswered); Text is used for short answers.
type Response struct {
	ChoiceIndex int
	Text        string
}

// Result is the outcome of grading a quiz.
type Result struct {
	Correct int
	Total   int

	// ByID records per-question correctness, keyed by question ID.
	ByID map[string]bool
}

// Grade scores responses against the quiz. MCQs are graded by chosen
// index. Short answers pass when the response is non-empty and mentions
// at least one answer keyword. Grading is deterministic for identical
// responses.
func Grade(q Quiz, responses map[string]Response) Result {
	result := Result{
		Total: len(q.Questions),
		ByID:  make(map[string]bool, len(q.Questions)),
	}

	for _, question := range q.Questions {
		resp, answered := responses[question.ID]
		correct := false

		switch question.Type {
		case TypeMCQ:
			correct = answered && resp.ChoiceIndex == question.AnswerIndex
		case TypeShortAnswer:
			if answered {
				text := strings.ToLower(strings.TrimSpace(resp.Text))
				if text != "" {
					for _, keyword := range question.AnswerKeywords {
						if strings.Contains(text, keyword) {
							correct = true
							break
						}
					}
				}
			}
		}

		result.ByID[question.ID] = correct
		if correct {
			result.Correct++
		}
	}

	return result
}
