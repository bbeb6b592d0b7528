// Package quiz runs the student test: who is taking it, asking the
// questions, showing and recording the result.
package quiz

import (
	"fmt"

	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entities"
)

// QuestionSource supplies the questions of a test.
type QuestionSource interface {
	FindAll() ([]entities.Question, error)
}

type TestService struct {
	io        console.LocalizedIO
	questions QuestionSource
}

func NewTestService(io console.LocalizedIO, questions QuestionSource) *TestService {
	return &TestService{io: io, questions: questions}
}

// ExecuteTestFor asks every question once and counts the right answers.
// Errors from the question source are returned unchanged.
func (s *TestService) ExecuteTestFor(student entities.Student) (*entities.TestResult, error) {
	s.io.PrintLine("")
	s.io.PrintLineLocalized(console.MsgAnswerTheQuestions)

	questions, err := s.questions.FindAll()
	if err != nil {
		return nil, err
	}

	result := entities.NewTestResult(student)
	for i, question := range questions {
		if len(question.Answers) == 0 {
			return nil, fmt.Errorf("question %q has no answers", question.Text)
		}

		s.io.PrintFormattedLine("%d. %s", i+1, question.Text)
		for j, answer := range question.Answers {
			s.io.PrintFormattedLine("  %d) %s", j+1, answer.Text)
		}

		choice, err := s.io.ReadIntForRangeWithPromptLocalized(1, len(question.Answers),
			console.MsgAnswerTheQuestions, console.MsgInvalidAnswer)
		if err != nil {
			return nil, fmt.Errorf("failed to read answer for question %d: %w", i+1, err)
		}

		result.ApplyAnswer(question, question.Answers[choice-1].IsCorrect)
	}

	return result, nil
}
