// Package flashcard derives a deck of term/definition cards from parsed
// notes.
package flashcard

import (
	"fmt"
	"strings"

	"github.com/notetoquiz/notepack/internal/notes"
)

// Deck size bounds. Keywords cycle when there are fewer than minCards.
const (
	minCards = 6
	maxCards = 10
)

// Card is one flashcard: a capitalized term on the front, its source
// sentence (or a templated fallback) on the back.
type Card struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Build creates the deck. Card count is the keyword count clamped to
// [6, 10]; generation is a pure function of the parsed input.
func Build(parsed notes.Parsed) []Card {
	count := len(parsed.Keywords)
	if count < minCards {
		count = minCards
	}
	if count > maxCards {
		count = maxCards
	}

	cards := make([]Card, 0, count)
	for i := 0; i < count; i++ {
		term := fmt.Sprintf("Term %d", i+1)
		if len(parsed.Keywords) > 0 {
			term = parsed.Keywords[i%len(parsed.Keywords)]
		}

		back := firstMention(parsed.Sentences, term)
		if back == "" && i < len(parsed.Sentences) {
			back = parsed.Sentences[i]
		}
		if back == "" {
			back = fmt.Sprintf("Definition and context for %s.", term)
		}

		cards = append(cards, Card{
			ID:    fmt.Sprintf("card-%d", i+1),
			Front: notes.Capitalize(term),
			Back:  back,
		})
	}
	return cards
}

// firstMention returns the first sentence containing term, or "".
func firstMention(sentences []string, term string) string {
	lowerTerm := strings.ToLower(term)
	for _, sentence := range sentences {
		if strings.Contains(strings.ToLower(sentence), lowerTerm) {
			return sentence
		}
	}
	return ""
}
