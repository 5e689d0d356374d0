package studypack

import (
	"fmt"

	"github.com/notetoquiz/notepack/internal/seedrand"
)

// PackID derives the content-addressed pack identifier: a base-36
// rendering of the rolling hash over the normalized text and the three
// generation settings. Identical inputs always produce the identical
// identifier; the generation timestamp never participates.
func PackID(normalized, subject string, difficulty Difficulty, questionCount int) string {
	base := fmt.Sprintf("%s-%s-%s-%d", normalized, subject, difficulty, questionCount)
	return seedrand.HashBase36(base)
}
