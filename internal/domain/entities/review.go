package entities

// Rating is the learner's self-assessed recall quality for one review event.
type Rating int

const (
	RatingAgain Rating = iota // forgot, start over
	RatingHard                // recalled with difficulty
	RatingGood                // recalled
	RatingEasy                // recalled instantly
)

// Quality returns the SM-2 quality value for the rating.
// Values below 3 mean the item was forgotten.
func (r Rating) Quality() int {
	switch r {
	case RatingAgain:
		return 0
	case RatingHard:
		return 3
	case RatingGood:
		return 4
	default:
		return 5
	}
}

func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "again"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	default:
		return "unknown"
	}
}

// ReviewRecord is the scheduling state of one article. A missing record means
// the article has never been rated.
//
// Invariants: EaseFactor >= 1.3 always; Repetitions == 0 implies
// IntervalDays == 0; NextReviewAt is the review time plus the interval.
type ReviewRecord struct {
	Key          string  `json:"key"`
	EaseFactor   float64 `json:"ease_factor"`
	IntervalDays int     `json:"interval_days"`
	Repetitions  int     `json:"repetitions"`
	NextReviewAt int64   `json:"next_review_at"` // unix milliseconds, 0 = due immediately
}

// NewReviewRecord returns the default record for a never-rated article:
// permanently due with the standard starting ease.
func NewReviewRecord(key string) ReviewRecord {
	return ReviewRecord{
		Key:          key,
		EaseFactor:   2.5,
		IntervalDays: 0,
		Repetitions:  0,
		NextReviewAt: 0,
	}
}
