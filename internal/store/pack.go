package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/notetoquiz/notepack/internal/studypack"
)

// lastPackKey holds the most recent generated pack, overwritten
// wholesale on each generation.
const lastPackKey = "lastPack"

// SaveLastPack stores pack as the most recent snapshot.
func (s *Store) SaveLastPack(ctx context.Context, pack *studypack.StudyPack) error {
	raw, err := json.Marshal(pack)
	if err != nil {
		return fmt.Errorf("marshal pack: %w", err)
	}
	return s.Set(ctx, lastPackKey, string(raw))
}

// LastPack returns the stored pack, or nil when none exists. A stored
// value that fails schema validation or unmarshaling is treated as
// absent, never as an error.
func (s *Store) LastPack(ctx context.Context) (*studypack.StudyPack, error) {
	raw, ok, err := s.Get(ctx, lastPackKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if err := studypack.ValidateStored([]byte(raw)); err != nil {
		return nil, nil
	}
	var pack studypack.StudyPack
	if err := json.Unmarshal([]byte(raw), &pack); err != nil {
		return nil, nil
	}
	return &pack, nil
}
