package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt records one graded quiz run for a pack.
type Attempt struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"takenAt"`
	Correct int       `json:"correct"`
	Total   int       `json:"total"`
}

// attemptsKey derives the storage key for a pack's attempt history.
func attemptsKey(packID string) string {
	return "quiz-attempts-" + packID
}

// Attempts returns the attempt history for packID, oldest first. Absent
// or malformed values yield an empty history.
func (s *Store) Attempts(ctx context.Context, packID string) ([]Attempt, error) {
	raw, ok, err := s.Get(ctx, attemptsKey(packID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var attempts []Attempt
	if err := json.Unmarshal([]byte(raw), &attempts); err != nil {
		return nil, nil
	}
	return attempts, nil
}

// AppendAttempt adds a graded result to the pack's history and returns
// the stored record.
func (s *Store) AppendAttempt(ctx context.Context, packID string, correct, total int) (Attempt, error) {
	attempts, err := s.Attempts(ctx, packID)
	if err != nil {
		return Attempt{}, err
	}

	attempt := Attempt{
		ID:      uuid.NewString(),
		TakenAt: time.Now().UTC(),
		Correct: correct,
		Total:   total,
	}
	attempts = append(attempts, attempt)

	raw, err := json.Marshal(attempts)
	if err != nil {
		return Attempt{}, fmt.Errorf("marshal attempts: %w", err)
	}
	if err := s.Set(ctx, attemptsKey(packID), string(raw)); err != nil {
		return Attempt{}, err
	}
	return attempt, nil
}
