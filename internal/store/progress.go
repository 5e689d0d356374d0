package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// PlanProgress maps composite task identifiers ("{day}-{taskId}") to
// completion flags for one pack's study plan.
type PlanProgress map[string]bool

// TaskKey builds the composite identifier for a plan task.
func TaskKey(day int, taskID string) string {
	return fmt.Sprintf("%d-%s", day, taskID)
}

// progressKey derives the storage key for a pack's plan progress.
// Distinct packs never collide because the pack identifier is part of
// the key.
func progressKey(packID string) string {
	return "plan-progress-" + packID
}

// PlanProgress returns the stored completion map for packID. Absent or
// malformed values yield an empty map.
func (s *Store) PlanProgress(ctx context.Context, packID string) (PlanProgress, error) {
	raw, ok, err := s.Get(ctx, progressKey(packID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return PlanProgress{}, nil
	}

	var progress PlanProgress
	if err := json.Unmarshal([]byte(raw), &progress); err != nil || progress == nil {
		return PlanProgress{}, nil
	}
	return progress, nil
}

// SetTaskDone records one task's completion flag. The update is
// read-modify-write with no locking: two concurrent writers to the same
// pack resolve last-write-wins.
func (s *Store) SetTaskDone(ctx context.Context, packID, taskKey string, done bool) error {
	progress, err := s.PlanProgress(ctx, packID)
	if err != nil {
		return err
	}
	progress[taskKey] = done

	raw, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal plan progress: %w", err)
	}
	return s.Set(ctx, progressKey(packID), string(raw))
}
