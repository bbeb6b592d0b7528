package quiz

import (
	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entities"
)

type ResultService struct {
	io                      console.LocalizedIO
	rightAnswersCountToPass int
}

func NewResultService(io console.LocalizedIO, rightAnswersCountToPass int) *ResultService {
	return &ResultService{io: io, rightAnswersCountToPass: rightAnswersCountToPass}
}

func (s *ResultService) ShowResult(result *entities.TestResult) {
	s.io.PrintLine("")
	s.io.PrintLineLocalized(console.MsgTestResults)
	s.io.PrintFormattedLineLocalized(console.MsgStudent, result.Student.FullName())
	s.io.PrintFormattedLineLocalized(console.MsgAnsweredQuestions, len(result.AnsweredQuestions))
	s.io.PrintFormattedLineLocalized(console.MsgRightAnswers, result.RightAnswersCount)

	if result.Passed(s.rightAnswersCountToPass) {
		s.io.PrintLineLocalized(console.MsgPassedTest)
		return
	}
	s.io.PrintLineLocalized(console.MsgFailTest)
}
