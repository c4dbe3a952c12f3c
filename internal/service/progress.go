package service

import (
	"context"
	"time"

	"github.com/samvidhan/constitution-bot/internal/srs"
)

// ProgressSummary aggregates a chat's learning state for the progress view.
type ProgressSummary struct {
	TotalArticles int
	Learned       int // repetitions >= 3: surviving multi-day intervals
	InProgress    int // rated at least once, not yet learned
	NotStarted    int
	DueNow        int
	Percentage    float64
	QuizRuns      int
	QuizAccuracy  float64 // across all completed quiz runs, percent
	LastQuizAt    time.Time
}

// ProgressService reports learning progress derived from the review records
// and the quiz history.
type ProgressService struct {
	reviews *ReviewService
	quizzes *QuizService
}

func NewProgressService(reviews *ReviewService, quizzes *QuizService) *ProgressService {
	return &ProgressService{
		reviews: reviews,
		quizzes: quizzes,
	}
}

// Summary computes the chat's progress as of now.
func (s *ProgressService) Summary(ctx context.Context, chatID int64, now time.Time) (*ProgressSummary, error) {
	records, err := s.reviews.Records(ctx, chatID)
	if err != nil {
		return nil, err
	}

	articles := s.reviews.catalog.Articles()

	summary := &ProgressSummary{
		TotalArticles: len(articles),
		DueNow:        srs.CountDue(articles, records, now, ""),
	}

	for _, a := range articles {
		r, ok := records[a.Key]
		switch {
		case !ok:
			summary.NotStarted++
		case r.Repetitions >= 3:
			summary.Learned++
		default:
			summary.InProgress++
		}
	}

	if summary.TotalArticles > 0 {
		summary.Percentage = float64(summary.Learned) / float64(summary.TotalArticles) * 100
	}

	entries, err := s.quizzes.History(ctx, chatID)
	if err != nil {
		return nil, err
	}

	summary.QuizRuns = len(entries)
	var score, total int
	for _, e := range entries {
		score += e.Score
		total += e.TotalQuestions
		if e.CompletedAt.After(summary.LastQuizAt) {
			summary.LastQuizAt = e.CompletedAt
		}
	}
	if total > 0 {
		summary.QuizAccuracy = float64(score) / float64(total) * 100
	}

	return summary, nil
}
