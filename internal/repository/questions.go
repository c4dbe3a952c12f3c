package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samvidhan/constitution-bot/internal/domain/entities"
)

// QuestionRepository provides the fixed multiple-choice question bank.
type QuestionRepository struct {
	questions []entities.Question
}

// NewQuestionRepository loads the question bank from the JSON file at path.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var questions []entities.Question
	if err = json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank %s is empty", path)
	}

	for i, q := range questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct index %d out of range", i, q.CorrectIndex)
		}
	}

	return &QuestionRepository{questions: questions}, nil
}

// Questions returns the full question bank in file order.
func (r *QuestionRepository) Questions() []entities.Question {
	return r.questions
}
