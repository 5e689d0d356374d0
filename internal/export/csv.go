package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/notetoquiz/notepack/internal/flashcard"
)

// FlashcardsCSV renders the deck as CSV with a Front,Back header and
// one row per card.
func FlashcardsCSV(cards []flashcard.Card) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"Front", "Back"}); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, card := range cards {
		if err := w.Write([]string{card.Front, card.Back}); err != nil {
			return "", fmt.Errorf("write card %s: %w", card.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush: %w", err)
	}
	return b.String(), nil
}

// ParseFlashcardsCSV reads a Front,Back CSV back into cards. Used to
// verify exports round-trip; IDs are regenerated positionally.
func ParseFlashcardsCSV(data string) ([]flashcard.Card, error) {
	r := csv.NewReader(strings.NewReader(data))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cards := make([]flashcard.Card, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != 2 {
			return nil, fmt.Errorf("row %d: expected 2 fields, got %d", i+1, len(record))
		}
		cards = append(cards, flashcard.Card{
			ID:    fmt.Sprintf("card-%d", i+1),
			Front: record[0],
			Back:  record[1],
		})
	}
	return cards, nil
}
