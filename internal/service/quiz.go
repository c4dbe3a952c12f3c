package service

import (
	"context"
	"time"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
	"github.com/samvidhan/constitution-bot/internal/kvstore"
	"github.com/samvidhan/constitution-bot/internal/quiz"
)

// QuizService runs the multiple-choice quiz over the fixed question bank,
// one resumable session per chat.
type QuizService struct {
	kv        kvstore.Store
	questions []entities.Question
}

func NewQuizService(kv kvstore.Store, questions []entities.Question) *QuizService {
	return &QuizService{
		kv:        kv,
		questions: questions,
	}
}

func (s *QuizService) machineFor(chatID int64) *quiz.Machine {
	store := chatStore(s.kv, chatID)
	return quiz.NewMachine(store, quiz.NewHistory(store), s.questions)
}

// Questions returns the question bank.
func (s *QuizService) Questions() []entities.Question {
	return s.questions
}

// Resume loads the chat's in-progress session, or starts a fresh one.
func (s *QuizService) Resume(ctx context.Context, chatID int64) (quiz.State, error) {
	return s.machineFor(chatID).Resume(ctx)
}

// Answer records a selection for the question at questionIndex.
func (s *QuizService) Answer(
	ctx context.Context, chatID int64, state quiz.State, questionIndex, optionIndex int,
) (quiz.State, error) {
	return s.machineFor(chatID).Answer(ctx, state, questionIndex, optionIndex)
}

// Advance moves one question forward or back.
func (s *QuizService) Advance(
	ctx context.Context, chatID int64, state quiz.State, dir quiz.Direction,
) (quiz.State, error) {
	return s.machineFor(chatID).Advance(ctx, state, dir)
}

// Jump moves directly to the question at index.
func (s *QuizService) Jump(
	ctx context.Context, chatID int64, state quiz.State, index int,
) (quiz.State, error) {
	return s.machineFor(chatID).Jump(ctx, state, index)
}

// Complete finishes the session if every question is answered and the learner
// is on the last one; otherwise the state comes back unchanged.
func (s *QuizService) Complete(
	ctx context.Context, chatID int64, state quiz.State, now time.Time,
) (quiz.State, error) {
	return s.machineFor(chatID).Complete(ctx, state, now)
}

// CanComplete reports whether the session may finish.
func (s *QuizService) CanComplete(state quiz.State) bool {
	return quiz.CanComplete(state, len(s.questions))
}

// Reset discards the chat's session snapshot. History is kept.
func (s *QuizService) Reset(ctx context.Context, chatID int64) (quiz.State, error) {
	return s.machineFor(chatID).Reset(ctx)
}

// History returns the chat's completed quiz runs, oldest first.
func (s *QuizService) History(ctx context.Context, chatID int64) ([]entities.QuizHistoryEntry, error) {
	store := chatStore(s.kv, chatID)
	return quiz.NewHistory(store).List(ctx)
}

// ClearHistory truncates the chat's quiz history.
func (s *QuizService) ClearHistory(ctx context.Context, chatID int64) error {
	store := chatStore(s.kv, chatID)
	return quiz.NewHistory(store).Clear(ctx)
}
