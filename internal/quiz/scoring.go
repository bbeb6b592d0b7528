package quiz

import (
	"errors"
	"fmt"

	"github.com/mrlokans/library/internal/entities"
)

var (
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
	ErrAnswerOutOfRange    = errors.New("answer out of range")
)

// ScoreAnswers scores 1-based choices, one per question, without any console IO.
func ScoreAnswers(student entities.Student, questions []entities.Question, choices []int) (*entities.TestResult, error) {
	if len(choices) != len(questions) {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCountMismatch, len(choices), len(questions))
	}

	result := entities.NewTestResult(student)
	for i, question := range questions {
		choice := choices[i]
		if choice < 1 || choice > len(question.Answers) {
			return nil, fmt.Errorf("%w: question %d expects 1..%d, got %d", ErrAnswerOutOfRange, i+1, len(question.Answers), choice)
		}
		result.ApplyAnswer(question, question.Answers[choice-1].IsCorrect)
	}
	return result, nil
}
