// Package review persists the article review records behind the key-value
// store as one serialized mapping.
package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/kvstore"
)

const recordsKey = "review_records"

// Store reads and writes the full key -> ReviewRecord mapping. Callers
// read-modify-write the whole mapping; Save replaces the durable value, it
// never merges.
type Store struct {
	kv kvstore.Store
}

// NewStore creates a Store over the given key-value store.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Load returns the stored mapping. An absent entry yields an empty mapping.
// A stored value that fails to parse is treated as absent as well: starting
// over from "never rated" is always safe, losing the process on a corrupt
// blob is not.
func (s *Store) Load(ctx context.Context) (map[string]entities.ReviewRecord, error) {
	raw, found, err := s.kv.Get(ctx, recordsKey)
	if err != nil {
		return nil, fmt.Errorf("load review records: %w", err)
	}
	if !found {
		return map[string]entities.ReviewRecord{}, nil
	}

	var records map[string]entities.ReviewRecord
	if err := json.Unmarshal(raw, &records); err != nil || records == nil {
		return map[string]entities.ReviewRecord{}, nil
	}

	return records, nil
}

// Save replaces the durable mapping with the given one.
func (s *Store) Save(ctx context.Context, records map[string]entities.ReviewRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal review records: %w", err)
	}

	if err := s.kv.Set(ctx, recordsKey, raw); err != nil {
		return fmt.Errorf("save review records: %w", err)
	}

	return nil
}

// Reset clears all review records.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, recordsKey); err != nil {
		return fmt.Errorf("reset review records: %w", err)
	}
	return nil
}
