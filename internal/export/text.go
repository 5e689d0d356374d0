// Package export renders a finished study pack into shareable formats:
// plain-text quiz, flashcard CSV, Markdown summary and plan, and a
// standalone HTML quiz. These are pure formatting functions; none of
// them feed back into generation.
package export

import (
	"fmt"
	"strings"

	"github.com/notetoquiz/notepack/internal/notes"
	"github.com/notetoquiz/notepack/internal/quiz"
	"github.com/notetoquiz/notepack/internal/studypack"
)

// QuizText renders the quiz as plain text: numbered prompts with their
// context, lettered choices, and a trailing answer key.
func QuizText(q quiz.Quiz) string {
	lines := []string{"Practice Quiz", ""}

	for i, question := range q.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, question.Prompt))
		lines = append(lines, fmt.Sprintf("   %s", question.Context))
		for idx, choice := range question.Choices {
			lines = append(lines, fmt.Sprintf("   %c. %s", 'A'+idx, choice))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "Answer Key")
	for i, question := range q.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, answerFor(question)))
	}

	return strings.Join(lines, "\n")
}

// answerFor returns the display answer for a question.
func answerFor(question quiz.Question) string {
	if question.Type == quiz.TypeMCQ {
		return question.Choices[question.AnswerIndex]
	}
	return question.AnswerText
}

// ShareText renders the compact share summary: settings line, readiness
// percentage, and the top three capitalized keywords.
func ShareText(pack *studypack.StudyPack) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s • %s • %d Questions\n", pack.Meta.Subject, pack.Meta.Difficulty, pack.Meta.QuestionCount)
	fmt.Fprintf(&b, "Estimated readiness: %d%%\n", pack.Readiness)

	keywords := pack.Keywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	capitalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		capitalized = append(capitalized, notes.Capitalize(keyword))
	}
	fmt.Fprintf(&b, "Top keywords: %s\n", strings.Join(capitalized, ", "))
	return b.String()
}
