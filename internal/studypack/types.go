package studypack

import (
	"time"

	"github.com/notetoquiz/notepack/internal/flashcard"
	"github.com/notetoquiz/notepack/internal/quiz"
	"github.com/notetoquiz/notepack/internal/studyplan"
	"github.com/notetoquiz/notepack/internal/summary"
)

// Difficulty is the requested difficulty label. It feeds the pack
// identifier but does not change the generation heuristics.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DefaultQuestionCount is used when a request leaves the count unset.
const DefaultQuestionCount = 10

// Request carries everything a generation call needs. The core keeps no
// ambient state; all settings arrive here.
type Request struct {
	Text          string
	Subject       string
	Difficulty    Difficulty
	QuestionCount int
}

// Meta records the settings a pack was generated with. Timestamp is
// informational only and is excluded from the pack identifier.
type Meta struct {
	Subject       string     `json:"subject"`
	Difficulty    Difficulty `json:"difficulty"`
	QuestionCount int        `json:"questionCount"`
	Timestamp     time.Time  `json:"timestamp"`
}

// StudyPack is the complete generated artifact for one request. It is
// immutable once assembled: callers replace a pack wholesale, never
// mutate one.
type StudyPack struct {
	PackID     string           `json:"packId"`
	Meta       Meta             `json:"meta"`
	Quiz       quiz.Quiz        `json:"quiz"`
	Flashcards []flashcard.Card `json:"flashcards"`
	Summary    summary.Summary  `json:"summary"`
	Plan       studyplan.Plan   `json:"plan"`
	Readiness  int              `json:"readiness"`
	Keywords   []string         `json:"keywords"`
}
