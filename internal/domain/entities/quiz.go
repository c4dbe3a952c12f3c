package entities

import "time"

// QuizAnswer records the learner's latest selection for one question.
// Re-answering a question replaces the record, it is never appended twice.
type QuizAnswer struct {
	QuestionIndex int  `json:"question"`
	SelectedIndex int  `json:"selected"`
	IsCorrect     bool `json:"correct"`
}

// QuizSnapshot is the durable representation of an in-progress quiz session.
// Answers is sparse: only answered question indexes are present.
type QuizSnapshot struct {
	CurrentIndex int                `json:"current_index"`
	Score        int                `json:"score"`
	Answers      map[int]QuizAnswer `json:"answers"`
}

// QuizHistoryEntry is one completed quiz run, appended to the history log
// exactly once at completion.
type QuizHistoryEntry struct {
	CompletedAt    time.Time `json:"completed_at"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
}
