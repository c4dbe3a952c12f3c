// Package quiz holds the quiz session state machine. State transitions are
// pure functions over State values; Machine wraps them with snapshot
// persistence and the history log.
package quiz

import "github.com/samvidhan/constitution-bot/internal/domain/entities"

// Direction of quiz navigation.
type Direction int

const (
	Next Direction = iota
	Previous
)

// State is an in-memory quiz session. Answers is sparse: only answered
// question indexes are present. Score always equals the number of answer
// records with IsCorrect == true.
type State struct {
	CurrentIndex int
	Score        int
	Answers      map[int]entities.QuizAnswer
	Completed    bool
}

// NewState returns a fresh session positioned at the first question.
func NewState() State {
	return State{
		CurrentIndex: 0,
		Score:        0,
		Answers:      map[int]entities.QuizAnswer{},
	}
}

// Answer records a selection for questionIndex and returns the new state.
//
// Re-answering an already answered question replaces the old record and
// reconciles the score: the old record's point (if any) is taken back before
// the new one is counted, so the final score is always what answering with
// the latest selection alone would have produced.
//
// An out-of-range question index or a completed session returns the state
// unchanged.
func Answer(s State, questionIndex, optionIndex, correctIndex, totalQuestions int) State {
	if s.Completed || questionIndex < 0 || questionIndex >= totalQuestions {
		return s
	}

	isCorrect := optionIndex == correctIndex

	score := s.Score
	if old, ok := s.Answers[questionIndex]; ok && old.IsCorrect {
		score--
	}
	if isCorrect {
		score++
	}

	answers := cloneAnswers(s.Answers)
	answers[questionIndex] = entities.QuizAnswer{
		QuestionIndex: questionIndex,
		SelectedIndex: optionIndex,
		IsCorrect:     isCorrect,
	}

	next := s
	next.Score = score
	next.Answers = answers
	return next
}

// Advance moves the current position one question forward or back, clamped to
// the question range. Answers and score are untouched. Advancing past the
// last question never completes the session; Complete is the only way out.
func Advance(s State, dir Direction, totalQuestions int) State {
	if s.Completed || totalQuestions == 0 {
		return s
	}

	index := s.CurrentIndex
	switch dir {
	case Next:
		index++
	case Previous:
		index--
	}

	return Jump(s, index, totalQuestions)
}

// Jump moves the current position directly to index, clamped to the question
// range. Used by the question navigator.
func Jump(s State, index, totalQuestions int) State {
	if s.Completed || totalQuestions == 0 {
		return s
	}

	if index < 0 {
		index = 0
	}
	if index > totalQuestions-1 {
		index = totalQuestions - 1
	}

	next := s
	next.CurrentIndex = index
	return next
}

// CanComplete reports whether the session may finish: the learner is on the
// last question and every question has an answer record. A quiz cannot be
// finished with questions skipped.
func CanComplete(s State, totalQuestions int) bool {
	return !s.Completed &&
		totalQuestions > 0 &&
		s.CurrentIndex == totalQuestions-1 &&
		len(s.Answers) == totalQuestions
}

// Complete marks the session finished if CanComplete holds, otherwise it
// returns the state unchanged.
func Complete(s State, totalQuestions int) State {
	if !CanComplete(s, totalQuestions) {
		return s
	}

	next := s
	next.Completed = true
	return next
}

// Snapshot converts the state to its durable form.
func (s State) Snapshot() entities.QuizSnapshot {
	return entities.QuizSnapshot{
		CurrentIndex: s.CurrentIndex,
		Score:        s.Score,
		Answers:      cloneAnswers(s.Answers),
	}
}

// FromSnapshot rehydrates an active session from its durable form.
func FromSnapshot(snap entities.QuizSnapshot) State {
	answers := snap.Answers
	if answers == nil {
		answers = map[int]entities.QuizAnswer{}
	}
	return State{
		CurrentIndex: snap.CurrentIndex,
		Score:        snap.Score,
		Answers:      cloneAnswers(answers),
	}
}

func cloneAnswers(in map[int]entities.QuizAnswer) map[int]entities.QuizAnswer {
	out := make(map[int]entities.QuizAnswer, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
