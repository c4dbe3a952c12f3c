package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/kvstore"
)

const snapshotKey = "quiz_session"

var ErrInvalidOption = errors.New("invalid option index")

// Machine drives one quiz session over a fixed question bank. Every answer
// and navigation event persists a fresh snapshot before the new state is
// returned, so a restart never loses more than the in-flight event. When a
// write fails the prior state is returned unchanged: a command fully applies
// or not at all.
type Machine struct {
	kv        kvstore.Store
	history   *History
	questions []entities.Question
}

// NewMachine creates a Machine over the question bank.
func NewMachine(kv kvstore.Store, history *History, questions []entities.Question) *Machine {
	return &Machine{
		kv:        kv,
		history:   history,
		questions: questions,
	}
}

// Questions returns the question bank.
func (m *Machine) Questions() []entities.Question {
	return m.questions
}

// Resume rehydrates the session from its durable snapshot. No snapshot, or
// one that fails to parse, starts a fresh session.
func (m *Machine) Resume(ctx context.Context) (State, error) {
	raw, found, err := m.kv.Get(ctx, snapshotKey)
	if err != nil {
		return State{}, fmt.Errorf("load quiz snapshot: %w", err)
	}
	if !found {
		return NewState(), nil
	}

	var snap entities.QuizSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return NewState(), nil
	}

	// An index outside the bank (e.g. the bank shrank between runs) is
	// clamped rather than trusted.
	s := FromSnapshot(snap)
	return Jump(s, s.CurrentIndex, len(m.questions)), nil
}

// Answer applies a selection for questionIndex and persists the result.
func (m *Machine) Answer(ctx context.Context, s State, questionIndex, optionIndex int) (State, error) {
	if questionIndex < 0 || questionIndex >= len(m.questions) {
		return s, nil
	}
	q := m.questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return s, ErrInvalidOption
	}

	next := Answer(s, questionIndex, optionIndex, q.CorrectIndex, len(m.questions))
	if err := m.saveSnapshot(ctx, next); err != nil {
		return s, err
	}
	return next, nil
}

// Advance moves the position and persists the result.
func (m *Machine) Advance(ctx context.Context, s State, dir Direction) (State, error) {
	next := Advance(s, dir, len(m.questions))
	if err := m.saveSnapshot(ctx, next); err != nil {
		return s, err
	}
	return next, nil
}

// Jump moves the position directly to index and persists the result.
func (m *Machine) Jump(ctx context.Context, s State, index int) (State, error) {
	next := Jump(s, index, len(m.questions))
	if err := m.saveSnapshot(ctx, next); err != nil {
		return s, err
	}
	return next, nil
}

// Complete finishes the session: it records a history entry and clears the
// durable snapshot. If the session is not on the last question with every
// question answered, the state comes back unchanged.
func (m *Machine) Complete(ctx context.Context, s State, now time.Time) (State, error) {
	next := Complete(s, len(m.questions))
	if !next.Completed || s.Completed {
		return s, nil
	}

	entry := entities.QuizHistoryEntry{
		CompletedAt:    now,
		Score:          next.Score,
		TotalQuestions: len(m.questions),
	}
	if err := m.history.Append(ctx, entry); err != nil {
		return s, err
	}

	if err := m.kv.Delete(ctx, snapshotKey); err != nil {
		return s, fmt.Errorf("clear quiz snapshot: %w", err)
	}

	return next, nil
}

// Reset discards the session snapshot and returns a fresh state. The history
// log is not touched.
func (m *Machine) Reset(ctx context.Context) (State, error) {
	if err := m.kv.Delete(ctx, snapshotKey); err != nil {
		return State{}, fmt.Errorf("reset quiz session: %w", err)
	}
	return NewState(), nil
}

func (m *Machine) saveSnapshot(ctx context.Context, s State) error {
	raw, err := json.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal quiz snapshot: %w", err)
	}

	if err := m.kv.Set(ctx, snapshotKey, raw); err != nil {
		return fmt.Errorf("save quiz snapshot: %w", err)
	}

	return nil
}
