package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/kvstore"
)

func TestLoadAbsentIsEmpty(t *testing.T) {
	s := NewStore(kvstore.NewMemoryStore())

	records, err := s.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kvstore.NewMemoryStore())

	records := map[string]entities.ReviewRecord{
		"III-21": {Key: "III-21", EaseFactor: 2.6, IntervalDays: 1, Repetitions: 1, NextReviewAt: 1234},
		"I-1":    entities.NewReviewRecord("I-1"),
	}
	require.NoError(t, s.Save(ctx, records))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestSaveReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kvstore.NewMemoryStore())

	require.NoError(t, s.Save(ctx, map[string]entities.ReviewRecord{
		"I-1": entities.NewReviewRecord("I-1"),
		"I-2": entities.NewReviewRecord("I-2"),
	}))
	require.NoError(t, s.Save(ctx, map[string]entities.ReviewRecord{
		"I-3": entities.NewReviewRecord("I-3"),
	}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "I-3")
}

func TestLoadMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, recordsKey, []byte("corrupt")))

	got, err := NewStore(kv).Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kvstore.NewMemoryStore())

	require.NoError(t, s.Save(ctx, map[string]entities.ReviewRecord{
		"I-1": entities.NewReviewRecord("I-1"),
	}))
	require.NoError(t, s.Reset(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
