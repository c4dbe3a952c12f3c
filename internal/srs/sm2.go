// Package srs implements the spaced-repetition scheduling for article review.
// All functions are pure: they take the prior state and return a new value,
// persistence is the caller's concern.
package srs

import (
	"math"
	"time"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
)

const (
	minEaseFactor = 1.3
	dayMillis     = 24 * 60 * 60 * 1000
)

// Review applies one rating to the prior scheduling record and returns the
// next one (SM-2 variant). The prior record is not modified.
//
// A quality below 3 lapses the article: repetitions and interval reset to
// zero and it is immediately due again. Successful recalls walk the
// 1 day / 3 days / interval*ease ladder. The ease factor is adjusted on every
// rating, including failures, and never drops below 1.3.
func Review(prior entities.ReviewRecord, rating entities.Rating, now time.Time) entities.ReviewRecord {
	next := prior
	quality := rating.Quality()

	if quality < 3 {
		next.Repetitions = 0
		next.IntervalDays = 0
	} else {
		next.Repetitions = prior.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 3
		default:
			next.IntervalDays = int(math.Round(float64(prior.IntervalDays) * prior.EaseFactor))
		}
	}

	q := float64(quality)
	ease := prior.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < minEaseFactor {
		ease = minEaseFactor
	}
	next.EaseFactor = ease

	next.NextReviewAt = now.UnixMilli() + int64(next.IntervalDays)*dayMillis

	return next
}
