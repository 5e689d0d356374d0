package quiz

import (
	"fmt"
	"math"
	"strings"

	"github.com/notetoquiz/notepack/internal/notes"
	"github.com/notetoquiz/notepack/internal/seedrand"
)

// Minimum question floors. When both floors apply to a small requested
// count, the floors win and the quiz may exceed the request.
const (
	minMCQ   = 3
	minShort = 2
)

// Generate builds a quiz from parsed notes. The split is 60% MCQ
// (rounded) and the remainder short answer, each floored to its minimum.
// All randomness is seeded from packID, so the same notes and settings
// always produce the same quiz.
func Generate(parsed notes.Parsed, questionCount int, packID string) Quiz {
	mcqCount := int(math.Round(float64(questionCount) * 0.6))
	if mcqCount < minMCQ {
		mcqCount = minMCQ
	}
	shortCount := questionCount - mcqCount
	if shortCount < minShort {
		shortCount = minShort
	}

	baseSentences := parsed.Sentences
	if len(baseSentences) == 0 {
		baseSentences = []string{parsed.Normalized}
	}
	keySentences := pickKeySentences(baseSentences, parsed.Keywords, questionCount)
	seed := seedrand.FromString(packID)

	questions := make([]Question, 0, mcqCount+shortCount)

	for i := 0; i < mcqCount; i++ {
		sentence := keySentences[i%len(keySentences)]
		if sentence == "" {
			sentence = baseSentences[i%len(baseSentences)]
		}
		keyword := findKeyword(sentence, parsed.Keywords)
		if keyword == "" && i < len(parsed.Keywords) {
			keyword = parsed.Keywords[i]
		}
		if keyword == "" {
			keyword = "topic"
		}

		correct := notes.Summarize(sentence)
		distractors := buildDistractors(baseSentences, sentence, parsed.Keywords, keyword, seed+i)

		merged := append([]string{correct}, distractors...)
		choices := seedrand.Shuffle(merged, seed+i)
		if len(choices) > 4 {
			choices = choices[:4]
		}
		answerIndex := 0
		for idx, choice := range choices {
			if choice == correct {
				answerIndex = idx
				break
			}
		}

		questions = append(questions, Question{
			ID:          fmt.Sprintf("mcq-%d", i+1),
			Type:        TypeMCQ,
			Prompt:      fmt.Sprintf("Which statement best explains %s?", keyword),
			Context:     sentence,
			Choices:     choices,
			AnswerIndex: answerIndex,
			Explanation: fmt.Sprintf("Based on your notes, %s is tied to: %s", keyword, correct),
		})
	}

	for i := 0; i < shortCount; i++ {
		sentence := keySentences[(i+mcqCount)%len(keySentences)]
		if sentence == "" {
			sentence = baseSentences[i%len(baseSentences)]
		}
		keyword := findKeyword(sentence, parsed.Keywords)
		if keyword == "" && len(parsed.Keywords) > 0 {
			keyword = parsed.Keywords[(i+2)%len(parsed.Keywords)]
		}
		if keyword == "" {
			keyword = "concept"
		}

		questions = append(questions, Question{
			ID:             fmt.Sprintf("short-%d", i+1),
			Type:           TypeShortAnswer,
			Prompt:         fmt.Sprintf("In 2–3 sentences, explain how %s connects to this topic.", keyword),
			Context:        sentence,
			AnswerText:     sentence,
			AnswerKeywords: notes.ContentTokens(sentence, 5),
			Explanation:    fmt.Sprintf("Your notes highlight: %s", notes.Summarize(sentence)),
		})
	}

	return Quiz{Questions: questions}
}

// pickKeySentences walks keywords in rank order and collects, for each,
// the first sentence containing it, until count sentences are gathered.
// If no keyword matches any sentence the full list is used.
func pickKeySentences(sentences, keywords []string, count int) []string {
	var picked []string
	for _, keyword := range keywords {
		if len(picked) >= count {
			break
		}
		for _, sentence := range sentences {
			if strings.Contains(strings.ToLower(sentence), keyword) {
				picked = append(picked, sentence)
				break
			}
		}
	}
	if len(picked) == 0 {
		return sentences
	}
	return picked
}

// findKeyword returns the highest-ranked keyword textually present in
// the sentence, or "" if none match.
func findKeyword(sentence string, keywords []string) string {
	lower := strings.ToLower(sentence)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return keyword
		}
	}
	return ""
}
