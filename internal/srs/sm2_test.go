package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
)

var reviewTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestReviewFirstGood(t *testing.T) {
	prior := entities.NewReviewRecord("III-21")

	next := Review(prior, entities.RatingGood, reviewTime)

	assert.Equal(t, 1, next.Repetitions)
	assert.Equal(t, 1, next.IntervalDays)
	// Quality 4 is the neutral point: the ease delta is exactly zero.
	assert.InDelta(t, 2.5, next.EaseFactor, 1e-9)
	assert.Equal(t, reviewTime.UnixMilli()+dayMillis, next.NextReviewAt)
}

func TestReviewLapseResets(t *testing.T) {
	prior := entities.ReviewRecord{
		Key:          "I-1",
		EaseFactor:   2.5,
		IntervalDays: 30,
		Repetitions:  5,
		NextReviewAt: reviewTime.UnixMilli(),
	}

	next := Review(prior, entities.RatingAgain, reviewTime)

	assert.Equal(t, 0, next.Repetitions)
	assert.Equal(t, 0, next.IntervalDays)
	// Quality 0: ease drops by 0.8.
	assert.InDelta(t, 1.7, next.EaseFactor, 1e-9)
	// Interval 0 means due immediately.
	assert.Equal(t, reviewTime.UnixMilli(), next.NextReviewAt)
}

func TestReviewGoodLadder(t *testing.T) {
	r := entities.NewReviewRecord("IV-44")

	r = Review(r, entities.RatingGood, reviewTime)
	require.Equal(t, 1, r.IntervalDays)

	r = Review(r, entities.RatingGood, reviewTime)
	require.Equal(t, 3, r.IntervalDays)
	require.InDelta(t, 2.5, r.EaseFactor, 1e-9)

	// Third recall: round(3 * 2.5) = 8.
	r = Review(r, entities.RatingGood, reviewTime)
	require.Equal(t, 8, r.IntervalDays)
	require.Equal(t, 3, r.Repetitions)

	// Intervals keep growing from here.
	prev := r.IntervalDays
	for i := 0; i < 10; i++ {
		r = Review(r, entities.RatingGood, reviewTime)
		require.GreaterOrEqual(t, r.IntervalDays, prev)
		prev = r.IntervalDays
	}
}

func TestReviewEaseNeverBelowFloor(t *testing.T) {
	r := entities.NewReviewRecord("V-52")

	for i := 0; i < 20; i++ {
		r = Review(r, entities.RatingAgain, reviewTime)
		require.GreaterOrEqual(t, r.EaseFactor, 1.3)
	}
	assert.InDelta(t, 1.3, r.EaseFactor, 1e-9)
}

func TestReviewHardShrinksEase(t *testing.T) {
	prior := entities.NewReviewRecord("XI-245")

	next := Review(prior, entities.RatingHard, reviewTime)

	// Quality 3: 0.1 - 2*(0.08 + 2*0.02) = -0.14.
	assert.InDelta(t, 2.36, next.EaseFactor, 1e-9)
	assert.Equal(t, 1, next.Repetitions)
}

func TestReviewEasyGrowsEase(t *testing.T) {
	prior := entities.NewReviewRecord("XVIII-352")

	next := Review(prior, entities.RatingEasy, reviewTime)

	// Quality 5: full +0.1 bonus.
	assert.InDelta(t, 2.6, next.EaseFactor, 1e-9)
}

func TestReviewDoesNotMutatePrior(t *testing.T) {
	prior := entities.ReviewRecord{
		Key:          "III-32",
		EaseFactor:   2.1,
		IntervalDays: 6,
		Repetitions:  3,
		NextReviewAt: 12345,
	}
	saved := prior

	_ = Review(prior, entities.RatingGood, reviewTime)

	assert.Equal(t, saved, prior)
}

func TestReviewInvariantsOverRandomSequences(t *testing.T) {
	ratings := []entities.Rating{
		entities.RatingGood, entities.RatingAgain, entities.RatingEasy,
		entities.RatingHard, entities.RatingAgain, entities.RatingGood,
		entities.RatingGood, entities.RatingEasy, entities.RatingAgain,
	}

	r := entities.NewReviewRecord("VI-168")
	now := reviewTime
	for _, rating := range ratings {
		r = Review(r, rating, now)

		require.GreaterOrEqual(t, r.EaseFactor, 1.3)
		if r.Repetitions == 0 {
			require.Equal(t, 0, r.IntervalDays)
		}
		require.Equal(t, now.UnixMilli()+int64(r.IntervalDays)*dayMillis, r.NextReviewAt)

		now = now.Add(time.Duration(r.IntervalDays) * 24 * time.Hour)
	}
}
