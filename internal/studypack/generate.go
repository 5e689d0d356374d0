package studypack

import (
	"errors"
	"strings"
	"time"

	"github.com/notetoquiz/notepack/internal/flashcard"
	"github.com/notetoquiz/notepack/internal/notes"
	"github.com/notetoquiz/notepack/internal/quiz"
	"github.com/notetoquiz/notepack/internal/studyplan"
	"github.com/notetoquiz/notepack/internal/summary"
)

// ErrEmptyInput is returned when the trimmed note text is empty. It is
// the only failure the pipeline signals; every other input produces a
// full-shaped pack.
var ErrEmptyInput = errors.New("note text is empty")

// Generate runs the full pipeline and assembles an immutable pack,
// stamped with the current time.
func Generate(req Request) (*StudyPack, error) {
	return GenerateAt(req, time.Now())
}

// GenerateAt is Generate with an explicit timestamp. The timestamp only
// lands in Meta; it never influences content or the pack identifier, so
// two calls with the same request differ in Meta.Timestamp alone.
func GenerateAt(req Request, now time.Time) (*StudyPack, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyInput
	}
	if req.QuestionCount <= 0 {
		req.QuestionCount = DefaultQuestionCount
	}

	parsed := notes.Parse(req.Text)
	packID := PackID(parsed.Normalized, req.Subject, req.Difficulty, req.QuestionCount)

	keywords := parsed.Keywords
	if len(keywords) > notes.ExposedKeywords {
		keywords = keywords[:notes.ExposedKeywords]
	}

	return &StudyPack{
		PackID: packID,
		Meta: Meta{
			Subject:       req.Subject,
			Difficulty:    req.Difficulty,
			QuestionCount: req.QuestionCount,
			Timestamp:     now,
		},
		Quiz:       quiz.Generate(parsed, req.QuestionCount, packID),
		Flashcards: flashcard.Build(parsed),
		Summary:    summary.Build(parsed),
		Plan:       studyplan.Build(parsed.Keywords),
		Readiness:  Readiness(len(parsed.Tokens), len(parsed.Keywords)),
		Keywords:   keywords,
	}, nil
}
