// Package summary derives a sectioned bullet summary from parsed notes.
package summary

import (
	"fmt"
	"strings"

	"github.com/notetoquiz/notepack/internal/notes"
)

// Section bounds: ceil(keywords/3) sections, clamped to [2, 4].
const (
	minSections      = 2
	maxSections      = 4
	bulletsPer       = 4
	fallbackStride   = 3
	emptyPlaceholder = "Add more notes to expand this section."
)

// Section is one titled group of bullets. Bullets is never empty.
type Section struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Summary is the full sectioned summary of a pack.
type Summary struct {
	Sections []Section `json:"sections"`
}

// Build creates the summary. Each section is anchored on a ranked
// keyword ("Overview" when keywords run out); bullets are the sentences
// mentioning that keyword, falling back to a positional slice of the
// sentence list, and finally to a placeholder so a section is never
// empty.
func Build(parsed notes.Parsed) Summary {
	count := (len(parsed.Keywords) + fallbackStride - 1) / fallbackStride
	if count < minSections {
		count = minSections
	}
	if count > maxSections {
		count = maxSections
	}

	sections := make([]Section, 0, count)
	for i := 0; i < count; i++ {
		keyword := "Overview"
		if i < len(parsed.Keywords) {
			keyword = parsed.Keywords[i]
		}

		related := relatedSentences(parsed.Sentences, keyword)
		if len(related) == 0 {
			related = positionalSlice(parsed.Sentences, i)
		}

		var bullets []string
		for _, sentence := range related {
			if cleaned := notes.CleanBullet(sentence); cleaned != "" {
				bullets = append(bullets, cleaned)
			}
		}
		if len(bullets) == 0 {
			bullets = []string{emptyPlaceholder}
		}

		sections = append(sections, Section{
			Title:   fmt.Sprintf("%s focus", notes.Capitalize(keyword)),
			Bullets: bullets,
		})
	}

	return Summary{Sections: sections}
}

// relatedSentences returns up to bulletsPer sentences mentioning keyword.
func relatedSentences(sentences []string, keyword string) []string {
	lowerKeyword := strings.ToLower(keyword)
	var related []string
	for _, sentence := range sentences {
		if strings.Contains(strings.ToLower(sentence), lowerKeyword) {
			related = append(related, sentence)
			if len(related) == bulletsPer {
				break
			}
		}
	}
	return related
}

// positionalSlice returns the i-th window of the sentence list.
func positionalSlice(sentences []string, i int) []string {
	start := i * fallbackStride
	if start >= len(sentences) {
		return nil
	}
	end := start + bulletsPer
	if end > len(sentences) {
		end = len(sentences)
	}
	return sentences[start:end]
}
