package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/kvstore"
)

var bank = []entities.Question{
	{Text: "q0", Options: []string{"a", "b", "c"}, CorrectIndex: 1},
	{Text: "q1", Options: []string{"a", "b", "c"}, CorrectIndex: 0},
	{Text: "q2", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
}

func newTestMachine() (*Machine, kvstore.Store) {
	kv := kvstore.NewMemoryStore()
	return NewMachine(kv, NewHistory(kv), bank), kv
}

func TestMachineAnswerPersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine()

	s, err := m.Resume(ctx)
	require.NoError(t, err)

	s, err = m.Answer(ctx, s, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, s.Score)

	// A fresh resume sees exactly the state the answer produced.
	resumed, err := m.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, resumed)
}

func TestMachineResumeRoundTrip(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine()

	s, err := m.Resume(ctx)
	require.NoError(t, err)

	s, err = m.Answer(ctx, s, 0, 1)
	require.NoError(t, err)
	s, err = m.Advance(ctx, s, Next)
	require.NoError(t, err)
	s, err = m.Answer(ctx, s, 1, 2)
	require.NoError(t, err)

	resumed, err := m.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, resumed)
}

func TestMachineResumeMalformedSnapshotStartsFresh(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, snapshotKey, []byte("{not json")))

	m := NewMachine(kv, NewHistory(kv), bank)

	s, err := m.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, NewState(), s)
}

func TestMachineResumeClampsStaleIndex(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, snapshotKey, []byte(`{"current_index":99,"score":0,"answers":{}}`)))

	m := NewMachine(kv, NewHistory(kv), bank)

	s, err := m.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(bank)-1, s.CurrentIndex)
}

func TestMachineAnswerInvalidOption(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine()

	s, err := m.Resume(ctx)
	require.NoError(t, err)

	_, err = m.Answer(ctx, s, 0, 7)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestMachineCompleteAppendsHistoryAndClearsSnapshot(t *testing.T) {
	ctx := context.Background()
	m, kv := newTestMachine()
	completedAt := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	s, err := m.Resume(ctx)
	require.NoError(t, err)
	for i := range bank {
		s, err = m.Jump(ctx, s, i)
		require.NoError(t, err)
		s, err = m.Answer(ctx, s, i, bank[i].CorrectIndex)
		require.NoError(t, err)
	}

	s, err = m.Complete(ctx, s, completedAt)
	require.NoError(t, err)
	require.True(t, s.Completed)

	entries, err := NewHistory(kv).List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, len(bank), entries[0].Score)
	assert.Equal(t, len(bank), entries[0].TotalQuestions)
	assert.True(t, entries[0].CompletedAt.Equal(completedAt))

	// The snapshot is gone: the next resume is a fresh session.
	resumed, err := m.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, NewState(), resumed)
}

func TestMachineCompleteIsNoOpWithUnansweredQuestions(t *testing.T) {
	ctx := context.Background()
	m, kv := newTestMachine()

	s, err := m.Resume(ctx)
	require.NoError(t, err)
	s, err = m.Answer(ctx, s, 0, 1)
	require.NoError(t, err)
	s, err = m.Jump(ctx, s, len(bank)-1)
	require.NoError(t, err)

	got, err := m.Complete(ctx, s, time.Now())
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.False(t, got.Completed)

	entries, err := NewHistory(kv).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMachineResetKeepsHistory(t *testing.T) {
	ctx := context.Background()
	m, kv := newTestMachine()
	history := NewHistory(kv)

	require.NoError(t, history.Append(ctx, entities.QuizHistoryEntry{
		CompletedAt:    time.Now(),
		Score:          2,
		TotalQuestions: 3,
	}))

	s, err := m.Resume(ctx)
	require.NoError(t, err)
	s, err = m.Answer(ctx, s, 0, 0)
	require.NoError(t, err)

	s, err = m.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, NewState(), s)

	resumed, err := m.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, NewState(), resumed)

	entries, err := history.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// failingStore accepts reads but refuses writes.
type failingStore struct {
	kvstore.Store
}

var errWrite = errors.New("write refused")

func (f failingStore) Set(context.Context, string, []byte) error {
	return errWrite
}

func TestMachineAnswerFailedWriteLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	kv := failingStore{Store: kvstore.NewMemoryStore()}
	m := NewMachine(kv, NewHistory(kv), bank)

	s, err := m.Resume(ctx)
	require.NoError(t, err)

	got, err := m.Answer(ctx, s, 0, 1)
	require.ErrorIs(t, err, errWrite)
	assert.Equal(t, s, got)
}

func TestHistoryMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, historyKey, []byte("not json")))

	entries, err := NewHistory(kv).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(kvstore.NewMemoryStore())

	for i := 1; i <= 3; i++ {
		err := h.Append(ctx, entities.QuizHistoryEntry{
			CompletedAt:    time.Date(2026, 3, i, 0, 0, 0, 0, time.UTC),
			Score:          i,
			TotalQuestions: 3,
		})
		require.NoError(t, err)
	}

	entries, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Score)
	}

	require.NoError(t, h.Clear(ctx))
	entries, err = h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
