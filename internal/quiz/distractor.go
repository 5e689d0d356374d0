package quiz

import (
	"fmt"
	"strings"

	"github.com/notetoquiz/notepack/internal/notes"
	"github.com/notetoquiz/notepack/internal/seedrand"
)

// buildDistractors assembles exactly 3 incorrect options for an MCQ.
// Summarized sentences that do not mention the target keyword come
// first, in sentence order; if fewer than 3 exist, the list is padded
// with options synthesized from seeded random keyword draws. The final
// list is shuffled with the same seed, so the whole construction is a
// pure function of its inputs.
func buildDistractors(sentences []string, correctSentence string, keywords []string, keyword string, seed int) []string {
	src := seedrand.New(seed)

	var candidates []string
	for _, sentence := range sentences {
		if sentence == "" || sentence == correctSentence {
			continue
		}
		if summarized := notes.Summarize(sentence); summarized != "" {
			candidates = append(candidates, summarized)
		}
	}

	var distractors []string
	lowerKeyword := strings.ToLower(keyword)
	for _, candidate := range candidates {
		if len(distractors) >= 3 {
			break
		}
		if !strings.Contains(strings.ToLower(candidate), lowerKeyword) {
			distractors = append(distractors, candidate)
		}
	}

	for len(distractors) < 3 {
		alt := "another concept"
		if len(keywords) > 0 {
			alt = keywords[src.Intn(len(keywords))]
		}
		if alt == keyword {
			// A single-entry keyword list can never draw a different
			// word; fall through to the generic filler so padding
			// always terminates.
			if len(keywords) > 1 {
				continue
			}
			alt = "another concept"
		}
		distractors = append(distractors, keywordOption(alt, sentences))
	}

	shuffled := seedrand.Shuffle(distractors, seed)
	return shuffled[:3]
}

// keywordOption builds a plausible statement about keyword: the
// summarized sentence mentioning it when one exists, otherwise a
// templated fallback.
func keywordOption(keyword string, sentences []string) string {
	for _, sentence := range sentences {
		if strings.Contains(strings.ToLower(sentence), keyword) {
			return notes.Summarize(sentence)
		}
	}

	fallback := ""
	for _, sentence := range sentences {
		if sentence != "" {
			fallback = sentence
			break
		}
	}
	if fallback == "" {
		fallback = fmt.Sprintf("The notes link %s to core outcomes.", keyword)
	}
	return fmt.Sprintf("%s connects to %s", notes.Capitalize(keyword), notes.Summarize(fallback))
}
