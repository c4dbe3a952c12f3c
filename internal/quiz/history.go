package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/kvstore"
)

const historyKey = "quiz_history"

// History is the append-only log of completed quiz sessions.
type History struct {
	kv kvstore.Store
}

// NewHistory creates a History over the given key-value store.
func NewHistory(kv kvstore.Store) *History {
	return &History{kv: kv}
}

// List returns all completed sessions, oldest first. An absent or unparsable
// stored value yields an empty list.
func (h *History) List(ctx context.Context) ([]entities.QuizHistoryEntry, error) {
	raw, found, err := h.kv.Get(ctx, historyKey)
	if err != nil {
		return nil, fmt.Errorf("load quiz history: %w", err)
	}
	if !found {
		return nil, nil
	}

	var entries []entities.QuizHistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, nil
	}

	return entries, nil
}

// Append adds one completed session to the log.
func (h *History) Append(ctx context.Context, entry entities.QuizHistoryEntry) error {
	entries, err := h.List(ctx)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal quiz history: %w", err)
	}

	if err := h.kv.Set(ctx, historyKey, raw); err != nil {
		return fmt.Errorf("save quiz history: %w", err)
	}

	return nil
}

// Clear truncates the log.
func (h *History) Clear(ctx context.Context) error {
	if err := h.kv.Delete(ctx, historyKey); err != nil {
		return fmt.Errorf("clear quiz history: %w", err)
	}
	return nil
}
